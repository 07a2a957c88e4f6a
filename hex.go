// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrhex

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Hex text line layout.
const (
	LineBytes  = 16        // bytes per line
	BlockBytes = FrameSize // bytes per block of lines
)

// A Style selects the separators used by FormatHex.
type Style int

const (
	// Display separates bytes with spaces, ends a line every 16 bytes
	// and leaves a blank line every 128 bytes.
	Display Style = iota

	// Edit is Display without the spaces.
	Edit

	// Raw has no separators.
	Raw
)

func (s Style) String() string {
	switch s {
	case Display:
		return "display"
	case Edit:
		return "edit"
	case Raw:
		return "raw"
	}
	return "Style(" + strconv.Itoa(int(s)) + ")"
}

const hexDigits = "0123456789ABCDEF"

// FormatHex returns b as uppercase hex in the given style.  There is
// no separator after the last byte.
func FormatHex(b []byte, style Style) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b)*3 + len(b)/BlockBytes)
	for i, v := range b {
		sb.WriteByte(hexDigits[v>>4])
		sb.WriteByte(hexDigits[v&15])
		n := i + 1
		if n == len(b) || style == Raw {
			continue
		}
		switch {
		case n%BlockBytes == 0:
			sb.WriteString("\n\n")
		case n%LineBytes == 0:
			sb.WriteByte('\n')
		case style == Display:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// DisplayHex returns FormatHex(b, Display).
func DisplayHex(b []byte) string { return FormatHex(b, Display) }

// EditHex returns FormatHex(b, Edit).
func EditHex(b []byte) string { return FormatHex(b, Edit) }

// RawHex returns FormatHex(b, Raw).
func RawHex(b []byte) string { return FormatHex(b, Raw) }

// isSpace reports whether r is white space in hex text: Unicode
// White_Space except NEL, plus the byte order mark.
func isSpace(r rune) bool {
	return r == '\uFEFF' || unicode.IsSpace(r) && r != '\u0085'
}

// StripSpace returns s with all white space removed.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isHexDigit(r rune) bool {
	return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' ||
		'A' <= r && r <= 'F'
}

// ParseHex decodes hex text in any Style, ignoring all white space.
// Text with no hex digits decodes to an empty, non-nil buffer.
// An odd number of characters or a character other than a hex digit
// results in a *HexError naming the last or the first offending
// character respectively.
func ParseHex(s string) ([]byte, error) {
	s = StripSpace(s)
	if utf8.RuneCountInString(s)%2 != 0 {
		_, n := utf8.DecodeLastRuneInString(s)
		return nil, &HexError{
			Offset: len(s) - n,
			Text:   s[len(s)-n:],
			Reason: "odd length",
		}
	}
	for i, r := range s {
		if !isHexDigit(r) {
			_, n := utf8.DecodeRuneInString(s[i:])
			return nil, &HexError{
				Offset: i,
				Text:   s[i : i+n],
				Reason: "invalid character",
			}
		}
	}
	b := make([]byte, len(s)/2)
	if _, err := hex.Decode(b, []byte(s)); err != nil {
		return nil, &HexError{Reason: err.Error()}
	}
	return b, nil
}
