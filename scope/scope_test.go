// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package scope

import (
	"bytes"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/inkjet/nozzle"
	"github.com/GermanBionicSystems/inkjet/sequence"
	"github.com/maruel/ansi256"
)

func lines(t *testing.T) *sequence.Lines {
	l, err := sequence.Detailed{}.Build(sequence.Request{Selection: nozzle.Selection{Black: []int{0}}})
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestShow(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOpts
	opts.Start = 1
	opts.Count = 48
	opts.Width = 48
	d := NewWriter(&buf, &opts)
	n, err := d.Show(lines(t))
	if err != nil {
		t.Fatal(err)
	}
	if n != 48 {
		t.Errorf("%d columns, expected 48", n)
	}
	rows := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(rows) != sequence.NumLines {
		t.Fatalf("%d rows, expected %d", len(rows), sequence.NumLines)
	}
	high := ansi256.Default.Block(opts.High)
	low := ansi256.Default.Block(opts.Low)
	if high == low {
		t.Fatal("the two levels render the same")
	}
	// Samples 1..48 are the first strobe: NCHG low, CH high for 12, LAT high
	// for 12.
	for i, want := range []int{0, 12, 12, 0, 0, 0} {
		line := sequence.AllLines[i]
		if !strings.HasPrefix(rows[i], "\033[0m"+line.String()) {
			t.Errorf("row %d does not start with %s: %q", i, line, rows[i])
		}
		if got := strings.Count(rows[i], high); got != want {
			t.Errorf("%s: %d high columns, expected %d", line, got, want)
		}
	}
}

func TestShowDecimated(t *testing.T) {
	var buf bytes.Buffer
	d := NewWriter(&buf, &Opts{Width: 100})
	n, err := d.Show(lines(t))
	if err != nil {
		t.Fatal(err)
	}
	// 1395 samples in columns of 14.
	if n != 100 {
		t.Errorf("%d columns, expected 100", n)
	}
	if d.String() != "Scope" {
		t.Error("unexpected name")
	}
	if err := d.Halt(); err != nil {
		t.Error(err)
	}
	if !strings.HasSuffix(buf.String(), "\n\033[0m") {
		t.Error("Halt did not reset the terminal")
	}
}

func TestShowErrors(t *testing.T) {
	var buf bytes.Buffer
	for _, opts := range []Opts{{Start: -1}, {Start: 5000}, {Start: 1390, Count: 10}, {Count: -1}} {
		if _, err := NewWriter(&buf, &opts).Show(lines(t)); err == nil {
			t.Errorf("Show(%+v) succeeded", opts)
		}
	}
	if _, err := NewWriter(&buf, nil).Show(&sequence.Lines{}); err == nil {
		t.Error("empty lines accepted")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on error")
	}
}
