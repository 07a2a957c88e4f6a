// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package symbol encodes binary data as QR codes and writes them as
images or terminal text.

Data is encoded as a single byte mode segment in the smallest QR
version that holds it.
*/
package symbol // import "github.com/unixdj/qrhex/symbol"

import (
	"errors"
	"image/color"

	"rsc.io/qr/coding"
)

var (
	ErrArgs    = errors.New("symbol: invalid arguments")
	ErrTooLong = errors.New("symbol: data too long to encode as QR")
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return "?"
}

// Defaults for Code.Scale and Code.Border.
const (
	DefaultScale  = 8
	DefaultBorder = 4
)

const (
	minVersion coding.Version = 1
	maxVersion coding.Version = 40
)

// Capacity returns the number of bytes a code of the given version
// and level can hold.
func Capacity(version int, level Level) int {
	v := coding.Version(version)
	if v < minVersion || v > maxVersion || level < L || level > H {
		return 0
	}
	l := coding.Level(level)
	// Byte mode header: 4 bit mode indicator and the count.
	n := coding.String("").Bits(v)
	return (v.DataBytes(l)*8 - n) / 8
}

// Encode returns a QR code holding data at the given error correction
// level, in the smallest version that fits.
func Encode(data []byte, level Level) (*Code, error) {
	if level < L || level > H {
		return nil, ErrArgs
	}
	l := coding.Level(level)
	enc := coding.String(data)
	fits := func(v coding.Version) bool {
		return enc.Bits(v) <= v.DataBytes(l)*8
	}
	if !fits(maxVersion) {
		return nil, ErrTooLong
	}
	v := minVersion
	for max := maxVersion; v < max; {
		if mid := (v + max) / 2; fits(mid) {
			max = mid
		} else {
			v = mid + 1
		}
	}
	p, err := coding.NewPlan(v, l, 0)
	if err != nil {
		return nil, err
	}
	cc, err := p.Encode(enc)
	if err != nil {
		return nil, err
	}
	return &Code{
		Bitmap:  cc.Bitmap,
		Size:    cc.Size,
		Stride:  cc.Stride,
		Version: int(v),
		Level:   level,
		Scale:   DefaultScale,
		Border:  DefaultBorder,
	}, nil
}

// A Code is a square pixel grid.
type Code struct {
	Bitmap  []byte // 1 is black, 0 is white
	Size    int    // number of pixels on a side
	Stride  int    // number of bytes per row
	Version int    // QR version
	Level   Level  // error correction level

	// Output parameters.
	Scale   int             // number of image pixels per QR pixel
	Border  int             // quiet zone width in QR pixels
	Reverse bool            // swap black and white
	Palette *[2]color.Color // background and foreground, nil for white and black
}

// Black returns true if the pixel at (x,y) is black.  Pixels outside
// the grid are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// dark reports whether the pixel at (x,y) is drawn in the foreground
// colour, taking c.Reverse into account.
func (c *Code) dark(x, y int) bool {
	return c.Black(x, y) != c.Reverse
}

func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Stride*8 >= c.Size &&
		len(c.Bitmap) >= c.Size*c.Stride && c.Scale > 0 && c.Border >= 0
}

// pixels returns the side of the image in QR pixels, border included.
func (c *Code) pixels() int {
	return c.Size + 2*c.Border
}
