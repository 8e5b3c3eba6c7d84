// SPDX-License-Identifier: MIT

// Command maxpoints reads integer points and prints the largest number of
// them lying on one straight line.
//
// Input on stdin (or -in FILE) is one point per line, "x y" or "x,y", with
// blank lines and #-comments ignored; or, with -format json, a single array
// [[x,y],...].
//
//	maxpoints -in points.txt
//	echo '[[1,1],[2,2],[3,3]]' | maxpoints -format json -line
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/colinear/colinear"
	"github.com/katalvlaran/colinear/line"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// errUsage marks errors caused by flags or input rather than by the computation.
var errUsage = errors.New("usage")

// config holds the parsed command line.
type config struct {
	in       string
	format   string
	dup      string
	strategy string
	workers  int
	showLine bool
	verbose  bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fatal(err)
	}
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	log.WithError(err).Error("maxpoints failed")
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	os.Exit(1)
}

func parseFlags(args []string, out io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("maxpoints", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.in, "in", "", "Input file (default stdin).")
	fs.StringVar(&cfg.format, "format", "text", "text|json.")
	fs.StringVar(&cfg.dup, "dup", "collapse", "collapse|count: how repeated points are counted.")
	fs.StringVar(&cfg.strategy, "strategy", "pairs", "pairs|anchor.")
	fs.IntVar(&cfg.workers, "workers", 1, "Number of goroutines.")
	fs.BoolVar(&cfg.showLine, "line", false, "Also print the best line and its points.")
	fs.BoolVar(&cfg.verbose, "v", false, "Debug logging.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	return cfg, nil
}

// options maps the flag strings onto colinear.Options.
func (c config) options() (colinear.Options, error) {
	opts := colinear.DefaultOptions()
	opts.Workers = c.workers

	switch strings.ToLower(c.dup) {
	case "collapse":
		opts.Duplicates = colinear.CollapseDuplicates
	case "count":
		opts.Duplicates = colinear.CountDuplicates
	default:
		return opts, fmt.Errorf("%w: unknown -dup %q", errUsage, c.dup)
	}

	switch strings.ToLower(c.strategy) {
	case "pairs":
		opts.Strategy = colinear.PairRegistry
	case "anchor":
		opts.Strategy = colinear.AnchorSlopes
	default:
		return opts, fmt.Errorf("%w: unknown -strategy %q", errUsage, c.strategy)
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("%w: %v", errUsage, err)
	}

	return opts, nil
}

func run(cfg config, stdin io.Reader, stdout io.Writer) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}

	src := stdin
	if cfg.in != "" && cfg.in != "-" {
		f, err := os.Open(cfg.in)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		defer f.Close()
		src = f
	}

	points, err := readPoints(src, cfg.format)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"points":   len(points),
		"strategy": cfg.strategy,
		"workers":  opts.Workers,
		"dup":      cfg.dup,
	}).Debug("Computing maximum colinear points")
	start := time.Now()

	if !cfg.showLine {
		n, err := colinear.MaxPoints(points, &opts)
		if err != nil {
			return mapInputError(err)
		}
		log.WithFields(logrus.Fields{"count": n, "elapsed": time.Since(start)}).Debug("Done")
		_, err = fmt.Fprintln(stdout, n)
		return err
	}

	res, err := colinear.BestLine(points, &opts)
	if err != nil {
		return mapInputError(err)
	}
	log.WithFields(logrus.Fields{
		"count":   res.Count,
		"line":    res.Line.String(),
		"elapsed": time.Since(start),
	}).Debug("Done")

	return writeResult(stdout, res)
}

// mapInputError flags coordinate range errors as bad input.
func mapInputError(err error) error {
	if errors.Is(err, line.ErrCoordinateRange) {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	return err
}

func writeResult(w io.Writer, res colinear.Result) error {
	if _, err := fmt.Fprintln(w, res.Count); err != nil {
		return err
	}
	if res.Line.Kind == line.Degenerate {
		return nil
	}
	if _, err := fmt.Fprintln(w, res.Line); err != nil {
		return err
	}
	for _, p := range res.Points {
		if _, err := fmt.Fprintf(w, "%d %d\n", p.X, p.Y); err != nil {
			return err
		}
	}

	return nil
}
