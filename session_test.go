// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrhex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession()
	assert.Nil(t, s.Original)
	assert.Nil(t, s.Derived)
	assert.True(t, s.ShowDerived)
	assert.Equal(t, Override{Locked: true}, s.Override)
	assert.Equal(t, "", s.DisplayText())
	_, _, err := s.EncodeRequest()
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestSessionLoad(t *testing.T) {
	s := NewSession()
	b := pattern(200)
	s.Load(b, 5)
	b[0] = 0 // Load copies
	assert.Equal(t, pattern(200), s.Original)
	assert.Equal(t, Override{}, s.Override, "fresh decode clears override")
	assert.Equal(t, Decide(200, 5, false), s.Decision())
	assert.Equal(t, Transform(pattern(200), Normal), s.Derived)
	assert.Equal(t, EditHex(pattern(200)), s.EditText())
	assert.Equal(t, DisplayHex(s.Derived), s.DisplayText())

	// Version 10 or higher forces Large without touching the flag.
	s.Load(pattern(200), 12)
	assert.Equal(t, Override{}, s.Override)
	assert.Equal(t, Large, s.Decision().Class)
	assert.Equal(t, Transform(pattern(200), Large), s.Derived)

	s.Load(pattern(300), 9)
	assert.Equal(t, Override{Checked: true, Locked: true}, s.Override)
	assert.Equal(t, byte(1), s.Derived[126])
}

func TestSessionOverride(t *testing.T) {
	s := NewSession()
	assert.False(t, s.SetOverride(true), "no data")

	s.Load(pattern(200), 0)
	assert.True(t, s.SetOverride(true))
	assert.Equal(t, Transform(pattern(200), Large), s.Derived)
	assert.False(t, s.SetOverride(true))

	// An edit keeps the user's choice.
	require.NoError(t, s.Edit(EditHex(pattern(210))))
	assert.True(t, s.Override.Checked)
	assert.Equal(t, Transform(pattern(210), Large), s.Derived)

	// A fresh decode clears it.
	s.Load(pattern(210), 0)
	assert.False(t, s.Override.Checked)

	s.Load(pattern(100), 0)
	assert.False(t, s.SetOverride(true), "locked")
	assert.Equal(t, Transform(pattern(100), Normal), s.Derived)
}

func TestSessionEdit(t *testing.T) {
	s := NewSession()
	s.Load(pattern(127), 10)
	assert.Equal(t, byte(0), s.Derived[126])

	// Edits drop the version hint.
	require.NoError(t, s.Edit(EditHex(pattern(127))))
	assert.Equal(t, 0, s.Version)
	assert.Equal(t, pattern(127), s.Derived)

	err := s.Edit("ab c")
	assert.True(t, errors.Is(err, ErrMalformedHex))
	assert.Equal(t, err, s.Err)
	assert.Nil(t, s.Original)
	assert.Nil(t, s.Derived)
	assert.Equal(t, Override{Locked: true}, s.Override)
	assert.Equal(t, "", s.DisplayText())

	require.NoError(t, s.Edit("01 02"))
	assert.NoError(t, s.Err)
	assert.Equal(t, []byte{1, 2}, s.Original)

	require.NoError(t, s.Edit(""))
	assert.Empty(t, s.Original)
	assert.Nil(t, s.Derived)
}

func TestSessionDisplayed(t *testing.T) {
	s := NewSession()
	s.Load(pattern(300), 0)
	assert.Equal(t, s.Derived, s.Displayed())
	s.SetShowDerived(false)
	assert.Equal(t, s.Original, s.Displayed())
	assert.Equal(t, RawHex(s.Original), s.RawText())
	assert.Equal(t, DisplayHex(s.Original), s.DisplayText())
}

func TestSessionEncodeRequest(t *testing.T) {
	s := NewSession()
	s.Load(pattern(300), 0)
	b, c, err := s.EncodeRequest()
	require.NoError(t, err)
	assert.Equal(t, s.Derived, b)
	assert.Equal(t, CapacityOK, c)

	s.Load(pattern(1500), 0)
	_, c, err = s.EncodeRequest()
	require.NoError(t, err)
	assert.Equal(t, CapacityLarge, c)

	s.Load(pattern(3000), 0)
	b, c, err = s.EncodeRequest()
	require.NoError(t, err, "capacity is advisory")
	assert.Len(t, b, 3000)
	assert.Equal(t, CapacityExceeded, c)

	require.Error(t, s.Edit("zz"))
	_, _, err = s.EncodeRequest()
	assert.ErrorIs(t, err, ErrEmptyPayload)
}
