// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"io"
	"strings"
)

// String returns the code drawn with UTF-8 block elements, two rows of
// QR pixels per line.  White pixels are drawn as blocks and black as
// blanks, so that the code reads on a dark terminal; set c.Reverse for
// a light one.  c.Scale and c.Palette are ignored.
func (c *Code) String() string {
	if !c.isValid() {
		return ""
	}
	pix := c.pixels()
	var b strings.Builder
	b.Grow((pix*len("█") + 1) * (pix + 1) / 2)
	for y := -c.Border; y < c.Size+c.Border; y += 2 {
		for x := -c.Border; x < c.Size+c.Border; x++ {
			top := !c.dark(x, y)
			bottom := y+1 < c.Size+c.Border && !c.dark(x, y+1)
			switch {
			case top && bottom:
				b.WriteString("█")
			case top:
				b.WriteString("▀")
			case bottom:
				b.WriteString("▄")
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeASCII writes the code to w as ASCII art, each QR pixel drawn
// as two characters, "##" for black and spaces for white.
func (c *Code) EncodeASCII(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	pix := c.pixels()
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -c.Border; y < c.Size+c.Border; y++ {
		for x := -c.Border; x < c.Size+c.Border; x++ {
			var p byte = ' '
			if c.dark(x, y) {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
