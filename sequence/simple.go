// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sequence

import (
	"github.com/GermanBionicSystems/inkjet/common"
	"github.com/GermanBionicSystems/inkjet/nozzle"
	"github.com/GermanBionicSystems/inkjet/quality"
	"periph.io/x/conn/v3/gpio"
)

const (
	// selectClocks is the number of clock periods of a selection phase. Each
	// period is 4 samples; the 256 sample selection buffer is shifted
	// against it.
	selectClocks = nozzle.BlockLen / 4
	// qualityClocks is the number of clock periods of the quality phase.
	qualityClocks = quality.BlockLen / 4
	// waitSamples is the pause after each selection phase.
	waitSamples = 230
)

// SimpleLen is the number of samples of a cycle built by Simple.
const SimpleLen = 2 + 4*selectClocks + waitSamples + 4*selectClocks + waitSamples + 4*qualityClocks + 1

// Simple drives only the clock and the two serial data lines:
//
//   - a 64 period clock burst while the first selection is shifted in
//     (nozzle data for medium and large drops, zeros otherwise)
//   - 230 idle samples
//   - a second 64 period burst with the second selection (small and large)
//   - 230 idle samples
//   - a 16 period burst with the quality buffer on both data lines
//
// The data lines lead the clock by one sample. NCHG, CH and LAT stay low
// and Lines.ControlModeled is false.
//
// Every cycle is SimpleLen samples long whatever the size, selection and
// profile.
type Simple struct {
	// LegacySmallClockPad adds the stray clock sample the first generation
	// firmware emitted after a zero-filled first selection phase. The clock
	// line is then one sample longer than the data lines for small drops and
	// the cycle cannot be packed. Only useful to compare against captures.
	LegacySmallClockPad bool
}

// Name implements Strategy.
func (Simple) Name() string {
	return "simple"
}

// Build implements Strategy.
func (s Simple) Build(req Request) (*Lines, error) {
	if !req.Size.valid() {
		return nil, common.Configf("sequence.Simple", "unknown droplet size %s", req.Size)
	}
	black, color, err := nozzle.BuildBlocks(req.Selection)
	if err != nil {
		return nil, err
	}
	q, err := quality.Sequence(req.Quality)
	if err != nil {
		return nil, err
	}

	ck := make(Signal, 0, SimpleLen+1)
	bl := make(Signal, 0, SimpleLen)
	cl := make(Signal, 0, SimpleLen)
	ck = append(ck, gpio.Low, gpio.Low)
	bl = append(bl, gpio.Low)
	cl = append(cl, gpio.Low)

	// First selection.
	ck = ck.clockBurst(selectClocks)
	if req.Size.firstPhase() {
		bl = append(bl, black[:]...)
		cl = append(cl, color[:]...)
	} else {
		if s.LegacySmallClockPad {
			ck = append(ck, gpio.Low)
		}
		bl = bl.repeat(gpio.Low, nozzle.BlockLen)
		cl = cl.repeat(gpio.Low, nozzle.BlockLen)
	}
	ck = ck.repeat(gpio.Low, waitSamples)
	bl = bl.repeat(gpio.Low, waitSamples)
	cl = cl.repeat(gpio.Low, waitSamples)

	// Second selection.
	ck = ck.clockBurst(selectClocks)
	if req.Size.secondPhase() {
		bl = append(bl, black[:]...)
		cl = append(cl, color[:]...)
	} else {
		bl = bl.repeat(gpio.Low, nozzle.BlockLen)
		cl = cl.repeat(gpio.Low, nozzle.BlockLen)
	}
	ck = ck.repeat(gpio.Low, waitSamples)
	bl = bl.repeat(gpio.Low, waitSamples)
	cl = cl.repeat(gpio.Low, waitSamples)

	// Quality.
	ck = ck.clockBurst(qualityClocks)
	bl = append(bl, q[:]...)
	cl = append(cl, q[:]...)

	// Tail; realigns the data lines with the clock.
	ck = append(ck, gpio.Low)
	bl = append(bl, gpio.Low, gpio.Low)
	cl = append(cl, gpio.Low, gpio.Low)

	l := &Lines{}
	l.Signals[NotChange] = make(Signal, len(ck))
	l.Signals[ChipSelect] = make(Signal, len(ck))
	l.Signals[Latch] = make(Signal, len(ck))
	l.Signals[Clock] = ck
	l.Signals[SerialBlack] = bl
	l.Signals[SerialColor] = cl
	if msg := l.checkLen(); msg != "" && !s.LegacySmallClockPad {
		return nil, common.Configf("sequence.Simple", "%s", msg)
	}
	return l, nil
}
