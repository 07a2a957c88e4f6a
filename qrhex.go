// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrhex implements the byte buffer transform applied to data
decoded from QR codes, and the hex text codec used to view and edit it.

A buffer of L bytes is treated as a sequence of 128-byte frames.
Transform writes the buffer length into the last one or two bytes of
the first frame and replaces every following frame with a copy of the
first.  Whether the length takes one or two bytes is the buffer's size
class, chosen by Classify from the length, the version of the QR code
the data was read from and a user override flag for the ambiguous band
of 128 to 255 bytes.

Session ties the pieces together: it owns the original buffer, the
derived buffer and the override state, and recomputes the derived
buffer whenever either changes.
*/
package qrhex // import "github.com/unixdj/qrhex"

// Frame layout.
const (
	FrameSize = 128 // bytes per frame
	lenHigh   = 126 // high byte of a two byte length field
	lenLow    = 127 // low byte, or the whole one byte length field

	// Length band in which the size class follows the override flag.
	minOverride = FrameSize
	maxOverride = 2*FrameSize - 1

	// Lowest QR version whose data always uses a two byte length.
	largeVersion = 10
)

// A SizeClass determines the width of the length field written by
// Transform.
type SizeClass bool

const (
	Normal SizeClass = false // one byte length field at index 127
	Large  SizeClass = true  // big endian two byte length field at 126-127
)

func (c SizeClass) String() string {
	if c == Large {
		return "large"
	}
	return "normal"
}

// Classify returns the size class of a buffer of the given length read
// from a QR code of the given version.  Version 0 means unknown.
//
// Buffers of 256 bytes or more, and buffers read from version 10 or
// higher, are Large.  Buffers shorter than 128 bytes are otherwise
// Normal.  In between override decides.
func Classify(length, version int, override bool) SizeClass {
	switch {
	case length > maxOverride || version >= largeVersion:
		return Large
	case length >= minOverride:
		return SizeClass(override)
	}
	return Normal
}

// A SizeDecision records the inputs and result of Classify.
type SizeDecision struct {
	Length   int       // buffer length
	Version  int       // QR version hint, 0 if unknown
	Override bool      // user override flag
	Class    SizeClass // resulting size class
}

// Decide classifies a buffer of the given length.
func Decide(length, version int, override bool) SizeDecision {
	return SizeDecision{
		Length:   length,
		Version:  version,
		Override: override,
		Class:    Classify(length, version, override),
	}
}

// Override is the state of the user's large size flag.  Locked means
// the flag is determined by the buffer length and can't be changed.
//
// The zero value is unchecked and unlocked; use Reset for the initial
// locked state.
type Override struct {
	Checked bool
	Locked  bool
}

// Reset clears and locks the flag, as when there is no data.
func (o *Override) Reset() {
	*o = Override{Locked: true}
}

// Update adjusts o to a buffer of the given length.  Buffers of 256
// bytes or more force the flag on, buffers under 128 bytes force it
// off, both locked.  In between the flag is unlocked; fresh (a new
// decode rather than an edit) clears it, otherwise it is kept.
func (o *Override) Update(length int, fresh bool) {
	switch {
	case length > maxOverride:
		*o = Override{Checked: true, Locked: true}
	case length >= minOverride:
		o.Locked = false
		if fresh {
			o.Checked = false
		}
	default:
		*o = Override{Locked: true}
	}
}

// Set sets the flag if it is not locked and reports whether it changed.
func (o *Override) Set(v bool) bool {
	if o.Locked || o.Checked == v {
		return false
	}
	o.Checked = v
	return true
}
