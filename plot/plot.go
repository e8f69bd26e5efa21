// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package plot draws a timing diagram of a firing cycle: one step trace per
// control line on a shared time axis.
//
// It is meant for checking a cycle against a logic analyzer capture on a
// host machine.
package plot

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/GermanBionicSystems/inkjet/sequence"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/physic"
)

// Opts represents the options available for a plot.
type Opts struct {
	// Width of the image in pixels.
	Width int
	// RowHeight is the height of one line's trace in pixels.
	RowHeight int
	// Start is the first sample drawn.
	Start int
	// Count is the number of samples drawn; 0 draws up to the end.
	Count int
	// SampleRate labels the time axis; 0 labels it in samples.
	SampleRate physic.Frequency
	// FontSize of the labels, in points.
	FontSize float64
}

// DefaultOpts draws the whole cycle.
var DefaultOpts = Opts{
	Width:     1600,
	RowHeight: 48,
	FontSize:  12,
}

const (
	labelWidth = 56
	margin     = 12
	axisHeight = 28
)

var (
	faceOnce sync.Once
	faceFont *truetype.Font
	faceErr  error
)

func loadFace(size float64) (font.Face, error) {
	faceOnce.Do(func() {
		faceFont, faceErr = truetype.Parse(goregular.TTF)
	})
	if faceErr != nil {
		return nil, faceErr
	}
	return truetype.NewFace(faceFont, &truetype.Options{Size: size}), nil
}

// window returns the sample range to draw.
func (o *Opts) window(n int) (start, end int, err error) {
	if n <= 0 {
		return 0, 0, errors.New("plot: empty cycle")
	}
	start, end = o.Start, n
	if o.Count > 0 {
		end = o.Start + o.Count
	}
	if start < 0 || start >= n || end > n || o.Count < 0 {
		return 0, 0, fmt.Errorf("plot: window [%d, %d) outside of %d samples", start, end, n)
	}
	return start, end, nil
}

// Render draws the lines. The lines must have equal length.
func Render(l *sequence.Lines, opts *Opts) (image.Image, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	n := l.Len()
	if n < 0 {
		return nil, errors.New("plot: lines have unequal lengths")
	}
	start, end, err := opts.window(n)
	if err != nil {
		return nil, err
	}
	if opts.Width <= labelWidth+2*margin || opts.RowHeight < 8 {
		return nil, fmt.Errorf("plot: image %dx%d too small", opts.Width, opts.RowHeight)
	}
	size := opts.FontSize
	if size <= 0 {
		size = DefaultOpts.FontSize
	}
	face, err := loadFace(size)
	if err != nil {
		return nil, fmt.Errorf("plot: %v", err)
	}

	h := margin + sequence.NumLines*opts.RowHeight + axisHeight
	dc := gg.NewContext(opts.Width, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)

	left := float64(labelWidth + margin)
	right := float64(opts.Width - margin)
	dx := (right - left) / float64(end-start)
	amp := float64(opts.RowHeight) * 0.6

	for i, line := range sequence.AllLines {
		base := float64(margin + (i+1)*opts.RowHeight - opts.RowHeight/4)
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(line.String(), margin, base-amp/2, 0, 0.5)

		// Baseline grid.
		dc.SetRGB(0.85, 0.85, 0.85)
		dc.SetLineWidth(1)
		dc.DrawLine(left, base, right, base)
		dc.Stroke()

		s := l.Signal(line)
		r, g, b := traceColor(i)
		dc.SetRGB(r, g, b)
		dc.SetLineWidth(1.5)
		y := func(k int) float64 {
			if s[k] {
				return base - amp
			}
			return base
		}
		dc.MoveTo(left, y(start))
		for k := start; k < end; k++ {
			x := left + float64(k-start)*dx
			// Steps take the new level at the start of the sample.
			dc.LineTo(x, y(k))
			dc.LineTo(x+dx, y(k))
		}
		dc.Stroke()
	}

	dc.SetRGB(0, 0, 0)
	axisY := float64(h - axisHeight/2)
	dc.DrawStringAnchored(axisLabel(start, opts.SampleRate), left, axisY, 0, 0.5)
	dc.DrawStringAnchored(axisLabel(end, opts.SampleRate), right, axisY, 1, 0.5)
	return dc.Image(), nil
}

// axisLabel formats a sample index as a time when the rate is known.
func axisLabel(sample int, rate physic.Frequency) string {
	if rate <= 0 {
		return fmt.Sprintf("%d", sample)
	}
	return (rate.Period() * time.Duration(sample)).String()
}

func traceColor(i int) (r, g, b float64) {
	switch sequence.Line(i) {
	case sequence.Clock:
		return 0.1, 0.3, 0.8
	case sequence.SerialBlack:
		return 0, 0, 0
	case sequence.SerialColor:
		return 0.8, 0.1, 0.5
	default:
		return 0.2, 0.55, 0.2
	}
}
