// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sequence

import (
	"fmt"
	"strings"

	"github.com/GermanBionicSystems/inkjet/common"
	"github.com/GermanBionicSystems/inkjet/nozzle"
	"github.com/GermanBionicSystems/inkjet/quality"
)

// Size is the droplet size. It selects which of the two selection phases
// of a cycle carry nozzle data.
type Size int

const (
	// Small fires in the second selection phase only.
	Small Size = iota
	// Medium fires in the first selection phase only.
	Medium
	// Large fires in both selection phases.
	Large
)

var sizeNames = [...]string{Small: "small", Medium: "medium", Large: "large"}

func (s Size) String() string {
	if s.valid() {
		return sizeNames[s]
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

func (s Size) valid() bool {
	return s >= 0 && int(s) < len(sizeNames)
}

func (s Size) firstPhase() bool {
	return s == Large || s == Medium
}

func (s Size) secondPhase() bool {
	return s == Large || s == Small
}

// ParseSize returns the size with the given name: small, medium or large.
func ParseSize(name string) (Size, error) {
	for i, n := range sizeNames {
		if strings.EqualFold(n, name) {
			return Size(i), nil
		}
	}
	return 0, common.Configf("sequence.ParseSize", "unknown droplet size %q", name)
}

// Set implements flag.Value.
func (s *Size) Set(name string) error {
	v, err := ParseSize(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Request describes one firing cycle.
//
// The zero value asks for small drops with the economy profile, which is
// rarely what is wanted. Use NewRequest for the usual medium drops with the
// VSD2 profile.
type Request struct {
	Selection nozzle.Selection
	Size      Size
	Quality   quality.Profile
}

// NewRequest returns a request for sel with the medium droplet size and the
// VSD2 quality profile.
func NewRequest(sel nozzle.Selection) Request {
	return Request{Selection: sel, Size: Medium, Quality: quality.VSD2}
}

// Strategy turns a request into the six control lines of one cycle.
//
// The strategies do not produce equivalent output and are not
// interchangeable; see Simple and Detailed.
type Strategy interface {
	Name() string
	Build(req Request) (*Lines, error)
}

// StrategyByName returns the strategy named simple or detailed.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "simple", "":
		return Simple{}, nil
	case "detailed":
		return Detailed{}, nil
	}
	return nil, common.Configf("sequence.StrategyByName", "unknown strategy %q", name)
}
