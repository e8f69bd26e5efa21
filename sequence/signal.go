// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sequence

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Signal is the sampled level of one control line, one entry per sample
// period.
type Signal []gpio.Level

// repeat appends n samples of level l.
func (s Signal) repeat(l gpio.Level, n int) Signal {
	for range n {
		s = append(s, l)
	}
	return s
}

// clockBurst appends n periods of the low-high-high-low clock pattern.
func (s Signal) clockBurst(n int) Signal {
	for range n {
		s = append(s, gpio.Low, gpio.High, gpio.High, gpio.Low)
	}
	return s
}

// Ones returns the indexes of the high samples.
func (s Signal) Ones() []int {
	var r []int
	for i, l := range s {
		if l {
			r = append(r, i)
		}
	}
	return r
}

// Line identifies one of the six control lines of the head controller.
type Line int

const (
	// NotChange (NCHG) is low while the head fires and high while it idles.
	NotChange Line = iota
	// ChipSelect (CH) strobes the drive waveform.
	ChipSelect
	// Latch (LAT) latches the shift register contents.
	Latch
	// Clock (CK) shifts the serial data lines.
	Clock
	// SerialBlack (SIBL) is the serial data of the black row.
	SerialBlack
	// SerialColor (SICL) is the serial data of the colour rows.
	SerialColor

	// NumLines is the number of control lines.
	NumLines = 6
)

var lineNames = [NumLines]string{"NCHG", "CH", "LAT", "CK", "SIBL", "SICL"}

func (l Line) String() string {
	if l >= 0 && l < NumLines {
		return lineNames[l]
	}
	return fmt.Sprintf("Line(%d)", int(l))
}

// AllLines lists the lines in word bit order of DefaultPinout.
var AllLines = [NumLines]Line{NotChange, ChipSelect, Latch, Clock, SerialBlack, SerialColor}

// Lines is one firing cycle: the six control lines sampled on a common time
// base.
type Lines struct {
	Signals [NumLines]Signal

	// ControlModeled is true when NCHG, CH and LAT carry real timing. It is
	// false for the Simple strategy, which drives them low for the whole
	// cycle; it is unknown whether every head ignores them in that mode.
	ControlModeled bool
}

// Signal returns the samples of line l.
func (l *Lines) Signal(line Line) Signal {
	return l.Signals[line]
}

// Len returns the common length of the lines, or -1 if they differ.
func (l *Lines) Len() int {
	n := len(l.Signals[0])
	for _, s := range l.Signals[1:] {
		if len(s) != n {
			return -1
		}
	}
	return n
}

// checkLen returns a description of the first line whose length differs
// from the first one, or "" if all are equal.
func (l *Lines) checkLen() string {
	n := len(l.Signals[0])
	for i, s := range l.Signals {
		if len(s) != n {
			return fmt.Sprintf("line %s has %d samples, %s has %d", Line(i), len(s), Line(0), n)
		}
	}
	return ""
}
