// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package quality holds the print quality presets of the piezo head.
//
// Every preset is a hand tuned list of timing slots out of 64 that are
// shifted to the head after the two nozzle selection phases. Like nozzle
// selection, every listed slot i also sets slot i+1.
package quality

import (
	"fmt"

	"github.com/GermanBionicSystems/inkjet/common"
	"periph.io/x/conn/v3/gpio"
)

// BlockLen is the number of samples of a quality buffer.
const BlockLen = 64

// Block is one quality buffer, in shift order.
type Block [BlockLen]gpio.Level

// Profile is a named quality preset.
type Profile int

const (
	Economy Profile = iota
	Jeff
	All
	VSD1
	VSD2
	VSD3
)

var names = [...]string{
	Economy: "economy",
	Jeff:    "jeff",
	All:     "all",
	VSD1:    "VSD1",
	VSD2:    "VSD2",
	VSD3:    "VSD3",
}

// slots is indexed by Profile. The lists are measured values, do not
// derive them.
var slots = [...][]int{
	Economy: {40, 50, 52, 54, 56},
	Jeff: {
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
		17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28,
		33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44,
		49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60,
	},
	All:  span(1, 62),
	VSD1: {24, 26, 32, 36, 40, 42, 48, 62},
	VSD2: {28, 32, 40, 48, 50, 62},
	VSD3: {36, 40, 48, 50, 62},
}

// blocks is computed once from slots and never mutated; Sequence returns
// copies.
var blocks [len(slots)]Block

func span(first, last int) []int {
	r := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		r = append(r, i)
	}
	return r
}

func init() {
	for p, list := range slots {
		for _, i := range list {
			blocks[p][i] = gpio.High
			blocks[p][i+1] = gpio.High
		}
	}
}

// Profiles returns every profile in declaration order.
func Profiles() []Profile {
	return []Profile{Economy, Jeff, All, VSD1, VSD2, VSD3}
}

func (p Profile) String() string {
	if p.valid() {
		return names[p]
	}
	return fmt.Sprintf("Profile(%d)", int(p))
}

func (p Profile) valid() bool {
	return p >= 0 && int(p) < len(names)
}

// Slots returns a copy of the slot list of the profile.
func (p Profile) Slots() []int {
	if !p.valid() {
		return nil
	}
	return append([]int(nil), slots[p]...)
}

// ParseProfile returns the profile with the given name. Names are case
// sensitive: economy, jeff, all, VSD1, VSD2 and VSD3.
func ParseProfile(name string) (Profile, error) {
	for p, n := range names {
		if n == name {
			return Profile(p), nil
		}
	}
	return 0, common.Configf("quality.ParseProfile", "unknown quality profile %q", name)
}

// Set implements flag.Value.
func (p *Profile) Set(name string) error {
	v, err := ParseProfile(name)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Sequence returns the quality buffer of the profile.
func Sequence(p Profile) (Block, error) {
	if !p.valid() {
		return Block{}, common.Configf("quality.Sequence", "unknown quality profile %s", p)
	}
	return blocks[p], nil
}
