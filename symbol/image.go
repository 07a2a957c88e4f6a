// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"

	"rsc.io/qr"
)

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

// Image returns an Image displaying the code.
func (c *Code) Image() image.Image {
	p := [2]color.Color{whiteColor, blackColor}
	if c.Palette != nil {
		p = *c.Palette
	}
	return &codeImage{c, p}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
	palette [2]color.Color
}

func (c *codeImage) Bounds() image.Rectangle {
	d := c.pixels() * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if c.dark(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return c.palette[1]
	}
	return c.palette[0]
}

func (c *codeImage) ColorModel() color.Model {
	if c.Palette != nil {
		return color.RGBAModel
	}
	return color.GrayModel
}

// fast reports whether the rsc.io/qr PNG encoder can draw c.  It only
// draws black on white with a four pixel quiet zone.
func (c *Code) fast() bool {
	return c.Border == 4 && !c.Reverse && c.Palette == nil
}

// PNG returns a PNG image displaying the code, or nil if c is invalid.
func (c *Code) PNG() []byte {
	if !c.isValid() {
		return nil
	}
	if c.fast() {
		q := &qr.Code{
			Bitmap: c.Bitmap,
			Size:   c.Size,
			Stride: c.Stride,
			Scale:  c.Scale,
		}
		return q.PNG()
	}
	var b bytes.Buffer
	if err := png.Encode(&b, c.Image()); err != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w using the
// standard library encoder.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	return png.Encode(w, c.Image())
}

// WritePNG writes c.PNG() to w.
func (c *Code) WritePNG(w io.Writer) error {
	b := c.PNG()
	if w == nil || b == nil {
		return ErrArgs
	}
	_, err := w.Write(b)
	return err
}
