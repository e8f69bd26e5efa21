// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package nozzle maps physical nozzle numbers of the piezo print head onto
// positions in the serial selection buffers that are shifted into the head
// controller.
//
// The head has one black row of 90 nozzles and three colour rows of 30
// nozzles each. The black row is shifted through its own 256 bit buffer.
// The three colour rows share a second 256 bit buffer and occupy disjoint
// ranges of it. Nozzles are laid out zig-zag on the head, so every channel
// counts down through its buffer, and every nozzle owns two adjacent bits:
// the driver needs a double pulse to fire a nozzle.
package nozzle

import (
	"fmt"

	"github.com/GermanBionicSystems/inkjet/common"
	"periph.io/x/conn/v3/gpio"
)

// BlockLen is the number of samples of a selection buffer.
const BlockLen = 256

// Block is one selection buffer, in shift order.
type Block [BlockLen]gpio.Level

// Channel is an ink channel of the print head.
type Channel int

const (
	Black Channel = iota
	Cyan
	Magenta
	Yellow
)

// Channels lists every channel in declaration order.
var Channels = []Channel{Black, Cyan, Magenta, Yellow}

func (c Channel) String() string {
	switch c {
	case Black:
		return "black"
	case Cyan:
		return "cyan"
	case Magenta:
		return "magenta"
	case Yellow:
		return "yellow"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// Range returns the first and last valid nozzle number of the channel.
func (c Channel) Range() (first, last int) {
	if c == Black {
		return 1, 90
	}
	return 1, 30
}

// Slot returns the 0-based position in the channel's selection buffer of
// the first of the two bits owned by nozzle n. The returned slot is always
// odd; the second bit is slot+1.
func Slot(c Channel, n int) (int, error) {
	first, last := c.Range()
	if n < first || n > last {
		return 0, &common.ValidationError{Op: "nozzle.Slot", Channel: c.String(), Value: n, Min: first, Max: last}
	}
	switch c {
	case Black:
		// The black row is wired as three groups of 30 that reuse the colour
		// positions of the shared layout.
		switch {
		case n >= 61:
			return (30-(n-60))*2 + 1, nil
		case n <= 30:
			return (116-n)*2 + 1, nil
		default:
			return (73-(n-30))*2 + 1, nil
		}
	case Cyan:
		return (116-n)*2 + 1, nil
	case Magenta:
		return (73-n)*2 + 1, nil
	case Yellow:
		return (30-n)*2 + 1, nil
	}
	return 0, common.Configf("nozzle.Slot", "unknown channel %s", c)
}

// slotSpan returns the lowest and highest buffer index touched by the
// channel, both bits of every nozzle included.
func slotSpan(c Channel) (lo, hi int) {
	first, last := c.Range()
	lo, hi = BlockLen, -1
	for n := first; n <= last; n++ {
		s, _ := Slot(c, n)
		if s < lo {
			lo = s
		}
		if s+1 > hi {
			hi = s + 1
		}
	}
	return lo, hi
}

// checkDisjoint verifies that the colour channels, which share a single
// buffer, never write the same position and stay inside the buffer.
func checkDisjoint() error {
	var owner [BlockLen]Channel
	var used [BlockLen]bool
	for _, c := range []Channel{Cyan, Magenta, Yellow} {
		lo, hi := slotSpan(c)
		if lo < 0 || hi >= BlockLen {
			return fmt.Errorf("nozzle: %s spans [%d, %d] outside of the buffer", c, lo, hi)
		}
		for i := lo; i <= hi; i++ {
			if used[i] {
				return fmt.Errorf("nozzle: %s and %s overlap at slot %d", owner[i], c, i)
			}
			used[i] = true
			owner[i] = c
		}
	}
	return nil
}

func init() {
	if err := checkDisjoint(); err != nil {
		panic(err)
	}
}
