// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"bytes"
	"image/color"
	"image/png"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacity(t *testing.T) {
	assert.Equal(t, 17, Capacity(1, L))
	assert.Equal(t, 32, Capacity(2, L))
	assert.Equal(t, 7, Capacity(1, H))
	assert.Equal(t, 2953, Capacity(40, L))
	assert.Equal(t, 0, Capacity(0, L))
	assert.Equal(t, 0, Capacity(41, L))
	assert.Equal(t, 0, Capacity(1, Level(4)))
}

func TestEncodeVersion(t *testing.T) {
	for _, tc := range []struct {
		n       int
		level   Level
		version int
	}{
		{0, L, 1},
		{17, L, 1},
		{18, L, 2},
		{32, L, 2},
		{33, L, 3},
		{300, L, 11},
		{2953, L, 40},
		{7, H, 1},
		{8, H, 2},
	} {
		c, err := Encode(bytes.Repeat([]byte{0xa5}, tc.n), tc.level)
		require.NoError(t, err, "%d bytes at %v", tc.n, tc.level)
		assert.Equal(t, tc.version, c.Version, "%d bytes at %v",
			tc.n, tc.level)
		assert.Equal(t, 4*tc.version+17, c.Size)
		assert.Equal(t, tc.level, c.Level)
		assert.Equal(t, DefaultScale, c.Scale)
		assert.Equal(t, DefaultBorder, c.Border)
	}
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(make([]byte, 2954), L)
	assert.ErrorIs(t, err, ErrTooLong)
	_, err = Encode(make([]byte, 1300), H)
	assert.ErrorIs(t, err, ErrTooLong)
	_, err = Encode([]byte("x"), Level(-1))
	assert.ErrorIs(t, err, ErrArgs)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "L", L.String())
	assert.Equal(t, "H", H.String())
	assert.Equal(t, "?", Level(9).String())
}

func encode(t *testing.T, s string) *Code {
	t.Helper()
	c, err := Encode([]byte(s), L)
	require.NoError(t, err)
	return c
}

func TestImage(t *testing.T) {
	c := encode(t, "hello")
	c.Scale = 2
	img := c.Image()
	d := (c.Size + 2*c.Border) * 2
	assert.Equal(t, d, img.Bounds().Dx())
	assert.Equal(t, d, img.Bounds().Dy())
	// Border is white, the top left finder pattern corner black.
	assert.Equal(t, whiteColor, img.At(0, 0))
	assert.Equal(t, blackColor, img.At(c.Border*2, c.Border*2))

	c.Reverse = true
	assert.Equal(t, blackColor, c.Image().At(0, 0))

	red := color.RGBA{0xff, 0, 0, 0xff}
	c.Reverse = false
	c.Palette = &[2]color.Color{red, blackColor}
	assert.Equal(t, red, c.Image().At(0, 0))
	assert.Equal(t, color.RGBAModel, c.Image().ColorModel())
}

func TestPNG(t *testing.T) {
	c := encode(t, "hello")
	for _, border := range []int{4, 1} {
		c.Border = border
		b := c.PNG()
		require.NotNil(t, b)
		img, err := png.Decode(bytes.NewReader(b))
		require.NoError(t, err, "border %d", border)
		d := (c.Size + 2*border) * c.Scale
		assert.Equal(t, d, img.Bounds().Dx(), "border %d", border)
	}

	var w bytes.Buffer
	require.NoError(t, c.EncodePNG(&w))
	_, err := png.Decode(&w)
	require.NoError(t, err)

	w.Reset()
	require.NoError(t, c.WritePNG(&w))
	assert.True(t, bytes.HasPrefix(w.Bytes(), []byte("\x89PNG")))

	assert.Nil(t, (&Code{}).PNG())
	assert.ErrorIs(t, (&Code{}).EncodePNG(&w), ErrArgs)
}

func TestEncodePBM(t *testing.T) {
	c := encode(t, "hello")
	c.Scale = 3
	var w bytes.Buffer
	require.NoError(t, c.EncodePBM(&w))
	d := (c.Size + 2*c.Border) * 3
	header := "P4\n" + strconv.Itoa(d) + " " + strconv.Itoa(d) + "\n"
	require.True(t, strings.HasPrefix(w.String(), header))
	body := w.Bytes()[len(header):]
	stride := (d + 7) / 8
	require.Len(t, body, stride*d)

	// Quiet zone rows are white.  The first finder pattern row is
	// white across the border, black for 7 QR pixels, then white for
	// the separator; the rest of the row follows the bitmap.
	assert.Equal(t, make([]byte, stride), body[:stride])
	row := body[stride*c.Border*3:][:stride]
	for x := 0; x < d; x++ {
		black := row[x>>3]&(0x80>>(x&7)) != 0
		mx := x/3 - c.Border
		want := c.Black(mx, 0)
		if mx < 8 {
			want = 0 <= mx && mx < 7
		}
		if black != want {
			t.Fatalf("pixel %d: black = %v, want %v", x, black, want)
		}
	}

	assert.ErrorIs(t, c.EncodePBM(nil), ErrArgs)
}

func TestText(t *testing.T) {
	c := encode(t, "hello")
	c.Border = 1
	pix := c.Size + 2
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	assert.Len(t, lines, (pix+1)/2)
	assert.Equal(t, strings.Repeat("▀", pix), lines[len(lines)-1])
	assert.Equal(t, pix, len([]rune(lines[0])))

	var w bytes.Buffer
	require.NoError(t, c.EncodeASCII(&w))
	lines = strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n")
	require.Len(t, lines, pix)
	assert.Equal(t, strings.Repeat(" ", 2*pix), lines[0])
	assert.Equal(t, "  "+strings.Repeat("##", 7)+"  ", lines[1][:18])
}
