// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sequence

import (
	"errors"
	"testing"

	"github.com/GermanBionicSystems/inkjet/common"
	"github.com/GermanBionicSystems/inkjet/nozzle"
	"github.com/GermanBionicSystems/inkjet/quality"
)

func span(first, last int) []int {
	var r []int
	for i := first; i <= last; i++ {
		r = append(r, i)
	}
	return r
}

func join(lists ...[]int) []int {
	var r []int
	for _, l := range lists {
		r = append(r, l...)
	}
	return r
}

func sameInts(t *testing.T, what string, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: got %d ones %v, expected %d ones %v", what, len(got), got, len(want), want)
		return
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s: index %d got %d expected %d", what, i, got[i], want[i])
			return
		}
	}
}

func fullSelection() nozzle.Selection {
	return nozzle.Selection{
		Black:   span(1, 90),
		Cyan:    span(1, 30),
		Magenta: span(1, 30),
		Yellow:  span(1, 30),
	}
}

func TestCycleLengths(t *testing.T) {
	if SimpleLen != 1039 {
		t.Errorf("SimpleLen is %d, expected 1039", SimpleLen)
	}
	if DetailedLen != 1395 {
		t.Errorf("DetailedLen is %d, expected 1395", DetailedLen)
	}
}

// Economy quality, medium drops, black nozzles 1 and 61.
func TestSimpleGolden(t *testing.T) {
	req := Request{
		Selection: nozzle.Selection{Black: []int{1, 61}},
		Size:      Medium,
		Quality:   quality.Economy,
	}
	l, err := Simple{}.Build(req)
	if err != nil {
		t.Fatal(err)
	}
	if n := l.Len(); n != SimpleLen {
		t.Fatalf("length %d, expected %d", n, SimpleLen)
	}
	economy := []int{1013, 1014, 1023, 1024, 1025, 1026, 1027, 1028, 1029, 1030}
	sameInts(t, "SIBL", l.Signal(SerialBlack).Ones(), join([]int{60, 61, 232, 233}, economy))
	sameInts(t, "SICL", l.Signal(SerialColor).Ones(), economy)

	var clock []int
	for _, start := range []int{2, 488} {
		for k := range 64 {
			clock = append(clock, start+4*k+1, start+4*k+2)
		}
	}
	for k := range 16 {
		clock = append(clock, 974+4*k+1, 974+4*k+2)
	}
	sameInts(t, "CK", l.Signal(Clock).Ones(), clock)
	for _, line := range []Line{NotChange, ChipSelect, Latch} {
		if ones := l.Signal(line).Ones(); len(ones) != 0 {
			t.Errorf("%s should stay low, found %v", line, ones)
		}
	}
	if l.ControlModeled {
		t.Error("Simple does not model NCHG, CH and LAT")
	}

	words, err := Pack(l, DefaultPinout)
	if err != nil {
		t.Fatal(err)
	}
	if crc := crcOf(words); crc != 0x6f {
		t.Errorf("word stream CRC8 0x%02x, expected 0x6f", crc)
	}
}

func TestSimpleSizes(t *testing.T) {
	var tests = []struct {
		size  Size
		black []int
		crc   byte
	}{
		{Small, []int{546, 547, 718, 719}, 0xdb},
		{Medium, []int{60, 61, 232, 233}, 0x6f},
		{Large, []int{60, 61, 232, 233, 546, 547, 718, 719}, 0x1b},
	}
	for _, test := range tests {
		req := Request{Selection: nozzle.Selection{Black: []int{1, 61}}, Size: test.size, Quality: quality.Economy}
		l, err := Simple{}.Build(req)
		if err != nil {
			t.Fatalf("%s: %v", test.size, err)
		}
		ones := l.Signal(SerialBlack).Ones()
		sameInts(t, test.size.String(), ones[:len(ones)-10], test.black)
		words, err := Pack(l, DefaultPinout)
		if err != nil {
			t.Fatal(err)
		}
		if crc := crcOf(words); crc != test.crc {
			t.Errorf("%s: CRC8 0x%02x, expected 0x%02x", test.size, crc, test.crc)
		}
	}
}

func TestSimpleLengthIndependentOfContent(t *testing.T) {
	sels := []nozzle.Selection{{}, {Black: []int{45}}, fullSelection()}
	for _, size := range []Size{Small, Medium, Large} {
		for _, q := range quality.Profiles() {
			for _, sel := range sels {
				l, err := Simple{}.Build(Request{Selection: sel, Size: size, Quality: q})
				if err != nil {
					t.Fatal(err)
				}
				for line, s := range l.Signals {
					if len(s) != SimpleLen {
						t.Errorf("%s/%s: line %s has %d samples, expected %d", size, q, Line(line), len(s), SimpleLen)
					}
				}
			}
		}
	}
}

func TestSimpleProfiles(t *testing.T) {
	sel := nozzle.Selection{
		Black:   span(1, 90),
		Cyan:    span(1, 30),
		Magenta: []int{5},
		Yellow:  []int{30, 1},
	}
	var tests = []struct {
		size Size
		q    quality.Profile
		crc  byte
	}{
		{Large, quality.Economy, 0x6a},
		{Large, quality.Jeff, 0x50},
		{Large, quality.All, 0x78},
		{Large, quality.VSD1, 0x77},
		{Large, quality.VSD2, 0xcc},
		{Large, quality.VSD3, 0x82},
		{Medium, quality.Economy, 0xac},
		{Medium, quality.Jeff, 0x96},
		{Medium, quality.All, 0xbe},
		{Medium, quality.VSD1, 0xb1},
		{Medium, quality.VSD2, 0x0a},
		{Medium, quality.VSD3, 0x44},
	}
	for _, test := range tests {
		l, err := Simple{}.Build(Request{Selection: sel, Size: test.size, Quality: test.q})
		if err != nil {
			t.Fatal(err)
		}
		words, err := Pack(l, DefaultPinout)
		if err != nil {
			t.Fatal(err)
		}
		if crc := crcOf(words); crc != test.crc {
			t.Errorf("%s/%s: CRC8 0x%02x, expected 0x%02x", test.size, test.q, crc, test.crc)
		}
	}
}

func TestSimpleLegacySmallClockPad(t *testing.T) {
	s := Simple{LegacySmallClockPad: true}
	l, err := s.Build(Request{Size: Small, Quality: quality.VSD2})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(l.Signal(Clock)); got != SimpleLen+1 {
		t.Errorf("clock has %d samples, expected %d", got, SimpleLen+1)
	}
	if got := len(l.Signal(SerialBlack)); got != SimpleLen {
		t.Errorf("SIBL has %d samples, expected %d", got, SimpleLen)
	}
	if l.Len() != -1 {
		t.Error("Len should report unequal lines")
	}
	if _, err := Pack(l, DefaultPinout); !errors.Is(err, common.ErrConfiguration) {
		t.Errorf("Pack expected configuration error, got %v", err)
	}

	// Only small drops take the zero-filled branch.
	l, err = s.Build(Request{Size: Medium, Quality: quality.VSD2})
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != SimpleLen {
		t.Errorf("medium drops unaffected, got length %d", l.Len())
	}
}

func TestSimpleErrors(t *testing.T) {
	var tests = []struct {
		req  Request
		want error
	}{
		{Request{Selection: nozzle.Selection{Black: []int{91}}, Size: Medium}, common.ErrValidation},
		{Request{Selection: nozzle.Selection{Cyan: []int{0}}, Size: Large}, common.ErrValidation},
		{Request{Size: Medium, Quality: quality.Profile(17)}, common.ErrConfiguration},
		{Request{Size: Size(5)}, common.ErrConfiguration},
	}
	for i, test := range tests {
		l, err := Simple{}.Build(test.req)
		if !errors.Is(err, test.want) {
			t.Errorf("#%d: expected %v, got %v", i, test.want, err)
		}
		if l != nil {
			t.Errorf("#%d: no lines expected on error", i)
		}
	}
}
