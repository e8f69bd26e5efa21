// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"sync"
)

type ImageFormat int

const (
	PNG ImageFormat = iota
	JPEG

	// DefaultFormat is the format used when not set explicitly.
	DefaultFormat = PNG
)

func (f ImageFormat) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	default:
		return fmt.Sprint(int(f))
	}
}

// ImageFormatFromString returns the ImageFormat value for the given format
// abbreviation or file extension.
func ImageFormatFromString(value string) (ImageFormat, error) {
	switch strings.TrimPrefix(strings.ToLower(value), ".") {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	}

	return DefaultFormat, fmt.Errorf("plot: unrecognized image format %q", value)
}

type pngEncoderBufferPool sync.Pool

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	buf, _ := (*sync.Pool)(p).Get().(*png.EncoderBuffer)
	return buf
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	(*sync.Pool)(p).Put(buf)
}

// Diagrams are mostly flat colour, best compression costs little.
var pngEncoder = png.Encoder{
	CompressionLevel: png.BestCompression,
	BufferPool:       &pngPool,
}

var pngPool pngEncoderBufferPool

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f ImageFormat) error {
	switch f {
	case PNG:
		return pngEncoder.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	}
	return fmt.Errorf("plot: unsupported image format %s", f)
}
