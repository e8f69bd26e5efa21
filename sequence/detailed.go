// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sequence

import (
	"github.com/GermanBionicSystems/inkjet/common"
	"github.com/GermanBionicSystems/inkjet/nozzle"
	"periph.io/x/conn/v3/gpio"
)

const (
	// DetailedBits is the number of black bit positions shifted per data
	// block by Detailed.
	DetailedBits = 64
	// DetailedLen is the number of samples of a cycle built by Detailed.
	DetailedLen = 1 + 48 + 440 + 48 + 56 + 4*32 + 151 + 48 + 56 + 4*32 + 151 + 48 + 27 + 4*16 + 1

	pulseSamples = 48
)

// Detailed models the head interface sample by sample for the black row
// only:
//
//   - four CH strobes of 12 samples, NCHG low around each; LAT is high
//     for the first 12 samples of the first one
//   - two data blocks of 32 clock periods, shifting bit positions 0..63
//     into SIBL, each after a strobe
//   - a 16 period quality block with both data lines high
//
// Selection.Black holds raw 0-based bit positions 0..63, not nozzle
// numbers. Colour selections are rejected. Size and Quality are ignored.
// Lines.ControlModeled is true.
//
// Every cycle is DetailedLen samples long.
type Detailed struct{}

// Name implements Strategy.
func (Detailed) Name() string {
	return "detailed"
}

// builder appends samples to all six lines of a cycle.
type builder struct {
	l   Lines
	err string
}

func (b *builder) add(line Line, levels ...gpio.Level) {
	b.l.Signals[line] = append(b.l.Signals[line], levels...)
}

func (b *builder) fill(line Line, l gpio.Level, n int) {
	b.l.Signals[line] = b.l.Signals[line].repeat(l, n)
}

// check records the first phase after which the lines are not aligned.
func (b *builder) check(phase string) {
	if b.err != "" {
		return
	}
	if msg := b.l.checkLen(); msg != "" {
		b.err = "after " + phase + ": " + msg
	}
}

// idle holds NCHG high and everything else low for n samples.
func (b *builder) idle(n int) {
	b.fill(NotChange, gpio.High, n)
	for _, line := range AllLines[1:] {
		b.fill(line, gpio.Low, n)
	}
	b.check("idle")
}

// pulse emits one CH strobe with NCHG low. latch also raises LAT at the
// start of the strobe window.
func (b *builder) pulse(latch bool) {
	b.fill(NotChange, gpio.Low, pulseSamples)
	b.fill(ChipSelect, gpio.Low, 24)
	b.fill(ChipSelect, gpio.High, 12)
	b.fill(ChipSelect, gpio.Low, 12)
	if latch {
		b.fill(Latch, gpio.High, 12)
		b.fill(Latch, gpio.Low, 36)
	} else {
		b.fill(Latch, gpio.Low, pulseSamples)
	}
	b.fill(Clock, gpio.Low, pulseSamples)
	b.fill(SerialBlack, gpio.Low, pulseSamples)
	b.fill(SerialColor, gpio.Low, pulseSamples)
	b.check("pulse")
}

// shift places bit v on SIBL so that it is stable around the next rising
// clock edge: it overwrites the previous trailing sample and leaves a new
// low sample for the next bit to overwrite.
func (b *builder) shift(v gpio.Level) {
	s := b.l.Signals[SerialBlack]
	b.l.Signals[SerialBlack] = append(s[:len(s)-1], v, v, gpio.Low)
}

// data shifts the 64 bit positions, two per clock period.
func (b *builder) data(bits *[DetailedBits]gpio.Level) {
	for i := range DetailedBits / 2 {
		b.fill(NotChange, gpio.High, 4)
		b.fill(ChipSelect, gpio.Low, 4)
		b.fill(Latch, gpio.Low, 4)
		b.add(Clock, gpio.High, gpio.High, gpio.Low, gpio.Low)
		b.shift(bits[2*i])
		b.shift(bits[2*i+1])
		b.fill(SerialColor, gpio.Low, 4)
	}
	b.check("data")
}

func (b *builder) quality() {
	for range 16 {
		b.fill(NotChange, gpio.High, 4)
		b.fill(ChipSelect, gpio.Low, 4)
		b.fill(Latch, gpio.Low, 4)
		b.add(Clock, gpio.High, gpio.High, gpio.Low, gpio.Low)
		b.fill(SerialBlack, gpio.High, 4)
		b.fill(SerialColor, gpio.High, 4)
	}
	b.check("quality")
}

// Build implements Strategy.
func (Detailed) Build(req Request) (*Lines, error) {
	sel := &req.Selection
	for _, c := range []nozzle.Channel{nozzle.Cyan, nozzle.Magenta, nozzle.Yellow} {
		if len(sel.Nozzles(c)) != 0 {
			return nil, common.Configf("sequence.Detailed", "%s selection given, only black is supported", c)
		}
	}
	var bits [DetailedBits]gpio.Level
	for _, p := range sel.Black {
		if p < 0 || p >= DetailedBits {
			return nil, &common.ValidationError{Op: "sequence.Detailed", Channel: "black bit", Value: p, Min: 0, Max: DetailedBits - 1}
		}
		bits[p] = gpio.High
	}

	b := &builder{}
	for i := range b.l.Signals {
		b.l.Signals[i] = make(Signal, 0, DetailedLen)
	}
	b.add(NotChange, gpio.High)
	for _, line := range AllLines[1:] {
		b.add(line, gpio.Low)
	}
	b.pulse(true)
	b.idle(440)
	b.pulse(false)
	b.idle(56)
	b.data(&bits)
	b.idle(151)
	b.pulse(false)
	b.idle(56)
	b.data(&bits)
	b.idle(151)
	b.pulse(false)
	b.idle(27)
	b.quality()
	b.idle(1)

	if b.err != "" {
		return nil, common.Configf("sequence.Detailed", "%s", b.err)
	}
	b.l.ControlModeled = true
	return &b.l, nil
}
