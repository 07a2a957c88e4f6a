// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package scan reads QR codes from images.

Decode returns the raw bytes stored in the code and the code's version.
Byte mode segments are returned as stored.  Codes without byte mode
segments hold text, which is returned as ISO 8859-1.
*/
package scan // import "github.com/unixdj/qrhex/scan"

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/makiuchi-d/gozxing/qrcode/detector"
	"golang.org/x/text/encoding/charmap"
)

// ErrNotFound is returned when an image holds no readable QR code.
var ErrNotFound = errors.New("scan: no QR code found")

// A Result is a decoded QR code.
type Result struct {
	Bytes   []byte // data
	Version int    // QR version, 0 if unknown
}

var hints = map[gozxing.DecodeHintType]interface{}{
	gozxing.DecodeHintType_CHARACTER_SET: "ISO-8859-1",
	gozxing.DecodeHintType_TRY_HARDER:    true,
}

// Decode reads a QR code from img.
func Decode(img image.Image) (*Result, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, err
	}
	res, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return nil, notFound(err)
	}
	b, err := payload(res)
	if err != nil {
		return nil, err
	}
	return &Result{Bytes: b, Version: version(bmp)}, nil
}

// DecodeReader decodes an image in any registered format from r and
// reads a QR code from it.
func DecodeReader(r io.Reader) (*Result, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return Decode(img)
}

// DecodeFile reads a QR code from the named image file.
func DecodeFile(name string) (*Result, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeReader(f)
}

// notFound maps gozxing's failures to locate or read a code to
// ErrNotFound.
func notFound(err error) error {
	var (
		nf gozxing.NotFoundException
		fe gozxing.FormatException
		ce gozxing.ChecksumException
	)
	if errors.As(err, &nf) || errors.As(err, &fe) || errors.As(err, &ce) {
		return ErrNotFound
	}
	return err
}

// payload returns the bytes stored in res.
func payload(res *gozxing.Result) ([]byte, error) {
	md := res.GetResultMetadata()
	if segs, ok := md[gozxing.ResultMetadataType_BYTE_SEGMENTS].([][]byte); ok &&
		len(segs) != 0 {
		n := 0
		for _, s := range segs {
			n += len(s)
		}
		b := make([]byte, 0, n)
		for _, s := range segs {
			b = append(b, s...)
		}
		return b, nil
	}
	s, err := charmap.ISO8859_1.NewEncoder().String(res.GetText())
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// version returns the version of the code in bmp, 0 if it can't be
// located.  A version v code is 4v+17 pixels on a side.
func version(bmp *gozxing.BinaryBitmap) int {
	m, err := bmp.GetBlackMatrix()
	if err != nil {
		return 0
	}
	dr, err := detector.NewDetector(m).Detect(hints)
	if err != nil {
		return 0
	}
	v := (dr.GetBits().GetHeight() - 17) / 4
	if v < 1 || v > 40 {
		return 0
	}
	return v
}
