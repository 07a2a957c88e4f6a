// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrhex

import "bytes"

// A Session holds the data being edited: the original buffer, the
// buffer derived from it by Transform and the state they depend on.
// Every change to the original buffer or the override flag recomputes
// the derived buffer.
//
// A Session is not safe for concurrent use.
type Session struct {
	Original    []byte   // source data, from a decode or an edit
	Derived     []byte   // Transform of Original, nil if empty
	Version     int      // QR version Original was read from, 0 if unknown
	Override    Override // large size flag
	ShowDerived bool     // display Derived rather than Original
	Err         error    // last edit error
}

// NewSession returns a reset Session.
func NewSession() *Session {
	s := new(Session)
	s.Reset()
	return s
}

// Reset discards all data.
func (s *Session) Reset() {
	*s = Session{ShowDerived: true}
	s.Override.Reset()
}

// Load sets the original buffer to a copy of b, freshly decoded from a
// QR code of the given version.  The override flag is cleared if the
// length leaves it to the user.
func (s *Session) Load(b []byte, version int) {
	s.Original = bytes.Clone(b)
	s.Version = version
	s.Err = nil
	s.Override.Update(len(b), true)
	s.update()
}

// Edit replaces the original buffer with hex text parsed by ParseHex.
// The version hint is dropped, as edited data no longer describes the
// code it was read from, and the override flag is kept if the length
// leaves it to the user.  On error the data is discarded and the error
// returned.
func (s *Session) Edit(text string) error {
	b, err := ParseHex(text)
	if err != nil {
		s.Original, s.Derived, s.Version, s.Err = nil, nil, 0, err
		s.Override.Reset()
		return err
	}
	s.Original = b
	s.Version = 0
	s.Err = nil
	s.Override.Update(len(b), false)
	s.update()
	return nil
}

// SetOverride sets the large size flag unless it is locked, and
// reports whether the derived buffer changed as a result.
func (s *Session) SetOverride(v bool) bool {
	if !s.Override.Set(v) || s.Original == nil {
		return false
	}
	old := s.Derived
	s.update()
	return !bytes.Equal(old, s.Derived)
}

// SetShowDerived selects the displayed buffer.
func (s *Session) SetShowDerived(v bool) { s.ShowDerived = v }

func (s *Session) update() {
	s.Derived = TransformDecision(s.Original, s.Decision())
}

// Decision returns the size decision for the original buffer.
func (s *Session) Decision() SizeDecision {
	return Decide(len(s.Original), s.Version, s.Override.Checked)
}

// Displayed returns the displayed buffer.
func (s *Session) Displayed() []byte {
	if s.ShowDerived {
		return s.Derived
	}
	return s.Original
}

// DisplayText returns the displayed buffer in Display style.
func (s *Session) DisplayText() string { return DisplayHex(s.Displayed()) }

// RawText returns the displayed buffer in Raw style.
func (s *Session) RawText() string { return RawHex(s.Displayed()) }

// EditText returns the original buffer in Edit style.
func (s *Session) EditText() string { return EditHex(s.Original) }

// EncodeRequest returns the bytes to encode in a new QR code, parsed
// back from the display text, and advice on their size.  It returns
// ErrEmptyPayload if there is nothing to encode.
func (s *Session) EncodeRequest() ([]byte, Capacity, error) {
	b, err := ParseHex(s.DisplayText())
	if err != nil {
		return nil, CapacityOK, err
	}
	if len(b) == 0 {
		return nil, CapacityOK, ErrEmptyPayload
	}
	return b, CheckCapacity(len(b)), nil
}
