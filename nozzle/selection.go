// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package nozzle

import "periph.io/x/conn/v3/gpio"

// Selection is the set of nozzles that fire during one cycle, per channel.
// Numbers are 1-based physical nozzle numbers. Duplicates are harmless.
//
// The zero value selects nothing.
type Selection struct {
	Black   []int
	Cyan    []int
	Magenta []int
	Yellow  []int
}

// Nozzles returns the selected nozzles of a channel.
func (s *Selection) Nozzles(c Channel) []int {
	switch c {
	case Black:
		return s.Black
	case Cyan:
		return s.Cyan
	case Magenta:
		return s.Magenta
	case Yellow:
		return s.Yellow
	}
	return nil
}

// Empty reports whether no nozzle is selected on any channel.
func (s *Selection) Empty() bool {
	return len(s.Black)+len(s.Cyan)+len(s.Magenta)+len(s.Yellow) == 0
}

// Validate returns a *common.ValidationError for the first nozzle number
// that is out of range for its channel.
func (s *Selection) Validate() error {
	for _, c := range Channels {
		for _, n := range s.Nozzles(c) {
			if _, err := Slot(c, n); err != nil {
				return err
			}
		}
	}
	return nil
}

// BuildBlocks returns the black and the shared colour selection buffers for
// sel. Both bits of every selected nozzle are set.
//
// Nothing is returned if any nozzle number is invalid.
func BuildBlocks(sel Selection) (black, color Block, err error) {
	if err = sel.Validate(); err != nil {
		return Block{}, Block{}, err
	}
	for _, c := range Channels {
		dst := &color
		if c == Black {
			dst = &black
		}
		for _, n := range sel.Nozzles(c) {
			s, _ := Slot(c, n)
			dst[s] = gpio.High
			dst[s+1] = gpio.High
		}
	}
	return black, color, nil
}
