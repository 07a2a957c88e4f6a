// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrhex

import (
	"errors"
	"strconv"
)

var (
	// ErrMalformedHex is matched by every *HexError.
	ErrMalformedHex = errors.New("qrhex: malformed hex")

	// ErrEmptyPayload is returned when there is no data to encode.
	ErrEmptyPayload = errors.New("qrhex: no data")
)

// A HexError describes hex text that ParseHex could not decode.
// Offset and Text locate the offending character in the text with all
// white space removed.
type HexError struct {
	Offset int    // byte offset of Text in the stripped input
	Text   string // offending character
	Reason string // what is wrong with them
}

func (e *HexError) Error() string {
	s := "qrhex: malformed hex: " + e.Reason
	if e.Text != "" {
		s += " " + strconv.Quote(e.Text) + " at offset " +
			strconv.Itoa(e.Offset)
	}
	return s
}

// Is reports whether target is ErrMalformedHex.
func (e *HexError) Is(target error) bool { return target == ErrMalformedHex }
