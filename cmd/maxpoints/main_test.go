// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/colinear/colinear"
	"github.com/katalvlaran/colinear/line"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

//----------------------------------------------------------------------------//
// Input parsing
//----------------------------------------------------------------------------//

func TestReadPoints_Text(t *testing.T) {
	in := "# six points\n1 1\n3,2\n 5 , 3 \n\n4 1\n2\t3\n1 4\n"
	points, err := readPoints(strings.NewReader(in), "text")
	require.NoError(t, err)
	assert.Equal(t, []line.Point{{X: 1, Y: 1}, {X: 3, Y: 2}, {X: 5, Y: 3}, {X: 4, Y: 1}, {X: 2, Y: 3}, {X: 1, Y: 4}}, points)
}

func TestReadPoints_JSON(t *testing.T) {
	points, err := readPoints(strings.NewReader(`[[0,0],[-15,3]]`), "JSON")
	require.NoError(t, err)
	assert.Equal(t, []line.Point{{X: 0, Y: 0}, {X: -15, Y: 3}}, points)
}

func TestReadPoints_Errors(t *testing.T) {
	cases := []struct {
		name, format, in string
	}{
		{"OneField", "text", "1\n"},
		{"ThreeFields", "text", "1 2 3\n"},
		{"NotANumber", "text", "1 x\n"},
		{"BadJSON", "json", "[[1,2]"},
		{"ShortPair", "json", "[[1]]"},
		{"UnknownFormat", "yaml", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := readPoints(strings.NewReader(tc.in), tc.format)
			assert.ErrorIs(t, err, errUsage)
		})
	}
}

//----------------------------------------------------------------------------//
// Flags
//----------------------------------------------------------------------------//

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-format", "json", "-dup", "count", "-strategy", "anchor", "-workers", "3", "-line"}, io.Discard)
	require.NoError(t, err)
	opts, err := cfg.options()
	require.NoError(t, err)
	assert.Equal(t, colinear.Options{Duplicates: colinear.CountDuplicates, Strategy: colinear.AnchorSlopes, Workers: 3}, opts)
	assert.True(t, cfg.showLine)
	assert.Equal(t, "json", cfg.format)

	_, err = parseFlags([]string{"-nope"}, io.Discard)
	assert.ErrorIs(t, err, errUsage)
	_, err = parseFlags([]string{"extra"}, io.Discard)
	assert.ErrorIs(t, err, errUsage)

	for _, bad := range []config{
		{dup: "maybe", strategy: "pairs", workers: 1},
		{dup: "collapse", strategy: "fastest", workers: 1},
		{dup: "collapse", strategy: "pairs", workers: -4},
	} {
		_, err := bad.options()
		assert.ErrorIs(t, err, errUsage, "%+v", bad)
	}
}

//----------------------------------------------------------------------------//
// run
//----------------------------------------------------------------------------//

func TestRun_Count(t *testing.T) {
	cfg, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	in := "0 0\n4 5\n7 8\n8 9\n5 6\n3 4\n1 1\n"
	require.NoError(t, run(cfg, strings.NewReader(in), &out))
	assert.Equal(t, "5\n", out.String())
}

func TestRun_LineFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[10,2],[-15,3],[-15,-7],[0,2],[-15,10],[-15,-15]]`), 0o600))

	cfg, err := parseFlags([]string{"-in", path, "-format", "json", "-line", "-workers", "2"}, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, strings.NewReader(""), &out))
	assert.Equal(t, "4\nx=-15\n-15 3\n-15 -7\n-15 10\n-15 -15\n", out.String())
}

func TestRun_SinglePointLine(t *testing.T) {
	cfg, err := parseFlags([]string{"-line"}, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, strings.NewReader("0 0\n"), &out))
	assert.Equal(t, "1\n", out.String(), "no line is printed without two distinct points")
}

func TestRun_Errors(t *testing.T) {
	cfg, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)

	err = run(cfg, strings.NewReader("0 0\n2000000000 0\n"), io.Discard)
	assert.ErrorIs(t, err, errUsage)
	assert.ErrorIs(t, err, line.ErrCoordinateRange)

	cfg.in = filepath.Join(t.TempDir(), "missing.txt")
	err = run(cfg, strings.NewReader(""), io.Discard)
	assert.ErrorIs(t, err, errUsage)
}
