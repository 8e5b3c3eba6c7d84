// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/colinear/line"
)

// readPoints decodes points from r in the given format ("text" or "json").
func readPoints(r io.Reader, format string) ([]line.Point, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return readText(r)
	case "json":
		return readJSON(r)
	default:
		return nil, fmt.Errorf("%w: unknown -format %q", errUsage, format)
	}
}

// readText parses one "x y" or "x,y" point per line.
func readText(r io.Reader) ([]line.Point, error) {
	var points []line.Point
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want two coordinates, got %q", errUsage, n, text)
		}
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", errUsage, n, err)
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", errUsage, n, err)
		}
		points = append(points, line.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

// readJSON parses a single [[x,y],...] array.
func readJSON(r io.Reader) ([]line.Point, error) {
	var raw [][]int
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: json: %v", errUsage, err)
	}
	points := make([]line.Point, len(raw))
	for i, xy := range raw {
		if len(xy) != 2 {
			return nil, fmt.Errorf("%w: json element %d: want [x,y], got %v", errUsage, i, xy)
		}
		points[i] = line.Point{X: xy[0], Y: xy[1]}
	}

	return points, nil
}
