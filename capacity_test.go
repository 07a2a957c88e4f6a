// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrhex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCapacity(t *testing.T) {
	for n, want := range map[int]Capacity{
		0:    CapacityOK,
		1000: CapacityOK,
		1001: CapacityLarge,
		2953: CapacityLarge,
		2954: CapacityExceeded,
	} {
		assert.Equal(t, want, CheckCapacity(n), "%d bytes", n)
	}
}

func TestCapacityWarning(t *testing.T) {
	assert.Equal(t, "", CapacityOK.Warning(10))
	assert.True(t, strings.Contains(CapacityLarge.Warning(1500), "1500 bytes"))
	w := CapacityExceeded.Warning(3000)
	assert.True(t, strings.Contains(w, "3000 bytes"))
	assert.True(t, strings.Contains(w, "2953"))
	assert.Equal(t, "Capacity(9)", Capacity(9).String())
}
