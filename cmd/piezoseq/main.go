// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// piezoseq prints the control words of one firing cycle of the piezo print
// head, and optionally draws its timing diagram.
//
// Example:
//
//	piezoseq -size medium -quality economy -black 1,61 -plot cycle.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/GermanBionicSystems/inkjet/plot"
	"github.com/GermanBionicSystems/inkjet/quality"
	"github.com/GermanBionicSystems/inkjet/scope"
	"github.com/GermanBionicSystems/inkjet/sequence"
	"github.com/mattn/go-colorable"
)

type config struct {
	opts     sequence.Opts
	req      sequence.Request
	format   string
	plotPath string
	scope    bool
	start    int
	count    int
}

// Package-level flag variables
var (
	flagStrategy string
	flagSize     = sequence.Medium
	flagQuality  = quality.VSD2
	flagBlack    string
	flagCyan     string
	flagMagenta  string
	flagYellow   string
	flagPinout   string
	flagRate     = sequence.DefaultSampleRate
	flagFormat   string
	flagPlot     string
	flagScope    bool
	flagStart    int
	flagCount    int
)

func init() {
	flag.StringVar(&flagStrategy, "strategy", "simple", "Sequence strategy: simple or detailed")
	flag.Var(&flagSize, "size", "Droplet size: small, medium or large")
	flag.Var(&flagQuality, "quality", "Quality profile: economy, jeff, all, VSD1, VSD2 or VSD3")
	flag.StringVar(&flagBlack, "black", "", "Comma separated black nozzles (bit positions 0-63 for -strategy detailed)")
	flag.StringVar(&flagCyan, "cyan", "", "Comma separated cyan nozzles")
	flag.StringVar(&flagMagenta, "magenta", "", "Comma separated magenta nozzles")
	flag.StringVar(&flagYellow, "yellow", "", "Comma separated yellow nozzles")
	flag.StringVar(&flagPinout, "pinout", "", "Word bit of NCHG,CH,LAT,CK,SIBL,SICL (default 0,1,2,3,4,5)")
	flag.Var(&flagRate, "rate", "Word output rate")
	flag.StringVar(&flagFormat, "format", "hex", "Word output: hex, bin or none")
	flag.StringVar(&flagPlot, "plot", "", "Write a timing diagram to this .png or .jpg file")
	flag.BoolVar(&flagScope, "scope", false, "Show the lines in the terminal")
	flag.IntVar(&flagStart, "start", 0, "First sample shown by -plot and -scope")
	flag.IntVar(&flagCount, "count", 0, "Samples shown by -plot and -scope (0 for all)")
}

// parseList parses a comma separated list of integers.
func parseList(s string) ([]int, error) {
	var r []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		r = append(r, n)
	}
	return r, nil
}

func parsePinout(s string) (sequence.Pinout, error) {
	if s == "" {
		return sequence.DefaultPinout, nil
	}
	l, err := parseList(s)
	if err != nil {
		return sequence.Pinout{}, err
	}
	var p sequence.Pinout
	if len(l) != len(p) {
		return p, fmt.Errorf("pinout needs %d offsets, got %d", len(p), len(l))
	}
	for i, v := range l {
		if v < 0 {
			return p, fmt.Errorf("negative offset %d", v)
		}
		p[i] = uint(v)
	}
	return p, p.Validate()
}

func parseConfig() (*config, error) {
	strategy, err := sequence.StrategyByName(flagStrategy)
	if err != nil {
		return nil, err
	}
	pinout, err := parsePinout(flagPinout)
	if err != nil {
		return nil, fmt.Errorf("-pinout: %w", err)
	}
	cfg := &config{
		opts:     sequence.Opts{Strategy: strategy, Pinout: pinout, SampleRate: flagRate},
		req:      sequence.Request{Size: flagSize, Quality: flagQuality},
		format:   flagFormat,
		plotPath: flagPlot,
		scope:    flagScope,
		start:    flagStart,
		count:    flagCount,
	}
	for _, f := range []struct {
		name string
		val  string
		dst  *[]int
	}{
		{"black", flagBlack, &cfg.req.Selection.Black},
		{"cyan", flagCyan, &cfg.req.Selection.Cyan},
		{"magenta", flagMagenta, &cfg.req.Selection.Magenta},
		{"yellow", flagYellow, &cfg.req.Selection.Yellow},
	} {
		if *f.dst, err = parseList(f.val); err != nil {
			return nil, fmt.Errorf("-%s: %w", f.name, err)
		}
	}
	return cfg, nil
}

func writeWords(w io.Writer, words []sequence.Word, format string) error {
	switch format {
	case "none":
		return nil
	case "hex":
		for i, v := range words {
			sep := " "
			if i%16 == 15 || i == len(words)-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%04x%s", uint16(v), sep); err != nil {
				return err
			}
		}
		return nil
	case "bin":
		for _, v := range words {
			if _, err := fmt.Fprintf(w, "%016b\n", uint16(v)); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writePlot(path string, l *sequence.Lines, cfg *config) error {
	format, err := plot.ImageFormatFromString(filepath.Ext(path))
	if err != nil {
		return err
	}
	opts := plot.DefaultOpts
	opts.Start = cfg.start
	opts.Count = cfg.count
	opts.SampleRate = cfg.opts.SampleRate
	img, err := plot.Render(l, &opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := plot.Encode(f, img, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func run(cfg *config, w io.Writer) error {
	g, err := sequence.New(&cfg.opts)
	if err != nil {
		return err
	}
	c, err := g.Generate(cfg.req)
	if err != nil {
		return fmt.Errorf("failed to generate cycle: %w", err)
	}
	if _, err := fmt.Fprintf(w, "# strategy=%s size=%s quality=%s samples=%d duration=%s crc8=0x%02x control=%t\n",
		cfg.opts.Strategy.Name(), cfg.req.Size, cfg.req.Quality, len(c.Words), c.Duration(), c.CRC8(), c.Lines.ControlModeled); err != nil {
		return err
	}
	if err := writeWords(w, c.Words, cfg.format); err != nil {
		return err
	}
	if !cfg.scope && cfg.plotPath == "" {
		return nil
	}
	// The views decode the packed words so they show what is clocked out.
	view, err := sequence.Unpack(c.Words, g.Opts().Pinout)
	if err != nil {
		return err
	}
	view.ControlModeled = c.Lines.ControlModeled
	if cfg.scope {
		sc := scope.NewWriter(w, &scope.Opts{Start: cfg.start, Count: cfg.count, Width: 160})
		if _, err := sc.Show(view); err != nil {
			return err
		}
		if err := sc.Halt(); err != nil {
			return err
		}
	}
	if cfg.plotPath != "" {
		if err := writePlot(cfg.plotPath, view, cfg); err != nil {
			return fmt.Errorf("failed to write plot: %w", err)
		}
		log.Printf("wrote %s", cfg.plotPath)
	}
	return nil
}

func main() {
	flag.Parse()
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, colorable.NewColorableStdout()); err != nil {
		log.Fatal(err)
	}
}
