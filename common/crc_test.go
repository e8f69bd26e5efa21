// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestCRC8(t *testing.T) {
	var tests = []struct {
		bytes  []byte
		result byte
	}{
		{bytes: []byte{0xbe, 0xef}, result: 0x92},
		{bytes: []byte{0x01, 0xa4}, result: 0x4d},
		{bytes: []byte{0xab, 0xcd}, result: 0x6f},
		{bytes: nil, result: 0xff},
	}
	for _, test := range tests {
		res := CRC8(test.bytes)
		if res != test.result {
			t.Errorf("CRC8(%#v)!=0x%x received 0x%x", test.bytes, test.result, res)
		}
	}
}

func TestWordsCRC8(t *testing.T) {
	var tests = []struct {
		words []uint16
		bytes []byte
	}{
		{words: []uint16{0xefbe}, bytes: []byte{0xbe, 0xef}},
		{words: []uint16{0xa401, 0xcdab}, bytes: []byte{0x01, 0xa4, 0xab, 0xcd}},
		{words: nil, bytes: nil},
	}
	for _, test := range tests {
		if got, want := WordsCRC8(test.words), CRC8(test.bytes); got != want {
			t.Errorf("WordsCRC8(%#v) = 0x%x, want 0x%x", test.words, got, want)
		}
	}
}
