// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sequence

import (
	"github.com/GermanBionicSystems/inkjet/common"
	"periph.io/x/conn/v3/gpio"
)

// WordBits is the width of a control word.
const WordBits = 16

// Word is one sample of all control lines, as written to the GPIO port.
type Word uint16

// Pinout is the bit offset of each line in a Word, indexed by Line.
type Pinout [NumLines]uint

// DefaultPinout packs the lines into bits 0 to 5 in Line order.
var DefaultPinout = Pinout{
	NotChange:   0,
	ChipSelect:  1,
	Latch:       2,
	Clock:       3,
	SerialBlack: 4,
	SerialColor: 5,
}

// Validate returns a *common.ConfigurationError unless every offset fits in
// a Word and no two lines share a bit.
func (p Pinout) Validate() error {
	var used Word
	for i, off := range p {
		if off >= WordBits {
			return common.Configf("sequence.Pinout", "line %s at bit %d, words are %d bits", Line(i), off, WordBits)
		}
		if used&(1<<off) != 0 {
			return common.Configf("sequence.Pinout", "line %s reuses bit %d", Line(i), off)
		}
		used |= 1 << off
	}
	return nil
}

// Mask returns the word bits used by the pinout.
func (p Pinout) Mask() Word {
	var m Word
	for _, off := range p {
		m |= 1 << off
	}
	return m
}

// Pack interleaves the lines into one word per sample: bit p[line] of word
// i is sample i of line.
//
// Lines of unequal length are a configuration error; no words are returned
// in that case.
func Pack(l *Lines, p Pinout) ([]Word, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if msg := l.checkLen(); msg != "" {
		return nil, common.Configf("sequence.Pack", "%s", msg)
	}
	words := make([]Word, len(l.Signals[0]))
	for line, s := range l.Signals {
		bit := Word(1) << p[line]
		for i, v := range s {
			if v {
				words[i] |= bit
			}
		}
	}
	return words, nil
}

// Unpack splits words back into lines. ControlModeled is left false.
func Unpack(words []Word, p Pinout) (*Lines, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	l := &Lines{}
	for line := range l.Signals {
		s := make(Signal, len(words))
		bit := Word(1) << p[line]
		for i, w := range words {
			s[i] = gpio.Level(w&bit != 0)
		}
		l.Signals[line] = s
	}
	return l, nil
}
