// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package scope prints the control lines of a firing cycle to a terminal
// using ANSI color codes, one row of blocks per line.
//
// Useful when no logic analyzer is at hand.
package scope

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/inkjet/sequence"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for this view.
type Opts struct {
	// Start is the first sample shown.
	Start int
	// Count is the number of samples shown; 0 shows up to the end.
	Count int
	// Width is the number of columns. When fewer than Count, each column
	// covers several samples and is high if any of them is.
	Width   int
	Palette *ansi256.Palette
	// High and Low are the colors of the two levels.
	High, Low color.NRGBA

	_ struct{}
}

// DefaultOpts shows the first 120 samples, one column each.
var DefaultOpts = Opts{
	Width: 120,
	High:  color.NRGBA{0x20, 0xe0, 0x20, 0xff},
	Low:   color.NRGBA{0x10, 0x10, 0x30, 0xff},
}

// Dev is a terminal logic analyzer view.
type Dev struct {
	w       io.Writer
	opts    Opts
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that writes the ANSI stream to w.
func NewWriter(w io.Writer, opts *Opts) *Dev {
	if opts == nil {
		opts = &DefaultOpts
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	d := &Dev{w: w, opts: *opts, palette: *p}
	if d.opts.High == (color.NRGBA{}) && d.opts.Low == (color.NRGBA{}) {
		d.opts.High, d.opts.Low = DefaultOpts.High, DefaultOpts.Low
	}
	if d.opts.Width <= 0 {
		d.opts.Width = DefaultOpts.Width
	}
	return d
}

func (d *Dev) String() string {
	return "Scope"
}

// Halt resets the terminal attributes.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// columns returns, for every column, the half-open sample range it covers.
func (d *Dev) columns(n int) ([][2]int, error) {
	start, end := d.opts.Start, n
	if d.opts.Count > 0 {
		end = start + d.opts.Count
	}
	if start < 0 || start >= n || end > n || d.opts.Count < 0 {
		return nil, fmt.Errorf("scope: window [%d, %d) outside of %d samples", start, end, n)
	}
	count := end - start
	step := (count + d.opts.Width - 1) / d.opts.Width
	cols := make([][2]int, 0, d.opts.Width)
	for s := start; s < end; s += step {
		e := s + step
		if e > end {
			e = end
		}
		cols = append(cols, [2]int{s, e})
	}
	return cols, nil
}

// Show writes one row per control line. It returns the number of columns
// per row.
func (d *Dev) Show(l *sequence.Lines) (int, error) {
	n := l.Len()
	if n < 0 {
		return 0, errors.New("scope: lines have unequal lengths")
	}
	if n == 0 {
		return 0, errors.New("scope: empty cycle")
	}
	cols, err := d.columns(n)
	if err != nil {
		return 0, err
	}
	high := d.palette.Block(d.opts.High)
	low := d.palette.Block(d.opts.Low)

	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	for _, line := range sequence.AllLines {
		s := l.Signal(line)
		_, _ = fmt.Fprintf(&d.buf, "\033[0m%-5s", line)
		for _, c := range cols {
			b := low
			for i := c[0]; i < c[1]; i++ {
				if s[i] {
					b = high
					break
				}
			}
			_, _ = io.WriteString(&d.buf, b)
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err = d.buf.WriteTo(d.w)
	return len(cols), err
}

var _ fmt.Stringer = &Dev{}
