// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/unixdj/qrhex"
	"github.com/unixdj/qrhex/internal/logger"
	"github.com/unixdj/qrhex/symbol"
)

// Text formats come first; image formats follow in pairs, normal and
// inverted.
var formats = []string{
	"hex", "edit", "raw",
	"png", "pngi", "PNG", "PNGi", "pbm", "pbmi",
	"utf8", "utf8i", "ascii", "asciii",
}

var styles = [...]qrhex.Style{qrhex.Display, qrhex.Edit, qrhex.Raw}

var encoders = [...]func(*symbol.Code, io.Writer) error{
	(*symbol.Code).WritePNG,
	(*symbol.Code).EncodePNG,
	(*symbol.Code).EncodePBM,
	func(c *symbol.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	(*symbol.Code).EncodeASCII,
}

func isText(format int) bool { return format < len(styles) }

// output writes session data in one of the formats.
type output struct {
	s       *qrhex.Session
	level   symbol.Level
	scale   int
	border  int
	palette *[2]color.Color
	warn    func(string)       // advisory messages
	copy    func(string) error // clipboard, nil to not copy
}

func (o *output) write(format int, w io.Writer) error {
	if isText(format) {
		return o.text(styles[format], w)
	}
	format -= len(styles)
	c, err := o.code()
	if err != nil {
		return err
	}
	c.Reverse = format&1 != 0
	return encoders[format>>1](c, w)
}

// text writes the displayed buffer as hex text, and copies it to the
// clipboard if enabled.
func (o *output) text(style qrhex.Style, w io.Writer) error {
	s := qrhex.FormatHex(o.s.Displayed(), style)
	if o.copy != nil {
		if err := o.copy(strings.ToUpper(s)); err != nil {
			return fmt.Errorf("clipboard: %w", err)
		}
		logger.Debug("copied", "style", style.String(), "length", len(s))
	}
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}

// code encodes the displayed buffer as a QR code.
func (o *output) code() (*symbol.Code, error) {
	b, adv, err := o.s.EncodeRequest()
	if err != nil {
		return nil, err
	}
	if w := adv.Warning(len(b)); w != "" && o.warn != nil {
		o.warn(w)
	}
	c, err := symbol.Encode(b, o.level)
	if err != nil {
		return nil, fmt.Errorf("%w (%d bytes at level %v)", err, len(b),
			o.level)
	}
	logger.Debug("encoded", "bytes", len(b), "version", c.Version,
		"level", o.level.String())
	c.Scale = o.scale
	c.Border = o.border
	c.Palette = o.palette
	return c, nil
}
