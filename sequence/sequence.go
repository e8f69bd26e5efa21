// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package sequence generates the control words of one firing cycle of a
// shift-register driven piezo print head.
//
// A cycle is six sampled lines (NCHG, CH, LAT, CK, SIBL, SICL) built by a
// Strategy from the nozzle selection, droplet size and quality profile,
// then packed into one Word per sample according to a Pinout. The words are
// meant to be written to a GPIO port at a fixed sample rate; nothing in
// this package performs I/O.
//
// All functions are pure and allocate their own buffers, so they are safe
// for concurrent use.
package sequence

import (
	"time"

	"github.com/GermanBionicSystems/inkjet/common"
	"periph.io/x/conn/v3/physic"
)

// DefaultSampleRate is the rate at which words are clocked out.
const DefaultSampleRate = physic.MegaHertz

// Opts holds the configuration of a Generator.
type Opts struct {
	// Strategy builds the lines. Defaults to Simple.
	Strategy Strategy
	// Pinout maps lines to word bits.
	Pinout Pinout
	// SampleRate is the word rate; only used for timing information.
	SampleRate physic.Frequency
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Strategy:   Simple{},
	Pinout:     DefaultPinout,
	SampleRate: DefaultSampleRate,
}

// Generator builds cycles with a fixed configuration.
type Generator struct {
	opts Opts
}

// Cycle is a generated firing cycle.
type Cycle struct {
	Lines      *Lines
	Words      []Word
	SampleRate physic.Frequency
}

// New returns a Generator. A nil opts uses DefaultOpts.
func New(opts *Opts) (*Generator, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.Strategy == nil {
		o.Strategy = Simple{}
	}
	if o.SampleRate == 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.SampleRate < 0 {
		return nil, common.Configf("sequence.New", "invalid sample rate %s", o.SampleRate)
	}
	if err := o.Pinout.Validate(); err != nil {
		return nil, err
	}
	return &Generator{opts: o}, nil
}

func (g *Generator) String() string {
	return "sequence.Generator{" + g.opts.Strategy.Name() + "}"
}

// Opts returns the configuration in use.
func (g *Generator) Opts() Opts {
	return g.opts
}

// Generate builds and packs one cycle. Either the full cycle or an error
// is returned.
func (g *Generator) Generate(req Request) (*Cycle, error) {
	l, err := g.opts.Strategy.Build(req)
	if err != nil {
		return nil, err
	}
	words, err := Pack(l, g.opts.Pinout)
	if err != nil {
		return nil, err
	}
	return &Cycle{Lines: l, Words: words, SampleRate: g.opts.SampleRate}, nil
}

// Duration returns the time it takes to clock the cycle out.
func (c *Cycle) Duration() time.Duration {
	return c.SampleRate.Period() * time.Duration(len(c.Words))
}

// CRC8 fingerprints the word stream.
func (c *Cycle) CRC8() byte {
	w := make([]uint16, len(c.Words))
	for i, v := range c.Words {
		w[i] = uint16(v)
	}
	return common.WordsCRC8(w)
}
