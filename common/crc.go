// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains the error types and checksum helpers shared by
// the nozzle, quality and sequence packages.
package common

import "encoding/binary"

// CRC8 calculates the 8-bit CRC (polynomial 0x31, init 0xff) of the byte
// slice parameter and returns the calculated value.
func CRC8(bytes []byte) byte {
	var crc byte = 0xff
	for _, val := range bytes {
		crc = crc8Update(crc, val)
	}
	return crc
}

// WordsCRC8 returns the CRC8 of a control word stream, each word encoded as
// two bytes, low byte first. It fingerprints a generated cycle.
func WordsCRC8(words []uint16) byte {
	b := make([]byte, 0, 2*len(words))
	for _, w := range words {
		b = binary.LittleEndian.AppendUint16(b, w)
	}
	return CRC8(b)
}

func crc8Update(crc, val byte) byte {
	crc ^= val
	for range 8 {
		if (crc & 0x80) == 0 {
			crc <<= 1
		} else {
			crc = (crc << 1) ^ 0x31
		}
	}
	return crc
}
