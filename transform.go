// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrhex

/*
Transform returns a copy of b with the buffer length embedded in the
first frame and every later frame replaced by the first.

The length field, for L = len(b):

	L >= 128, Large   b[126] = L>>8, b[127] = L&0xff
	L >= 128, Normal  b[127] = L&0xff
	L == 127, Large   b[126] = 0 (127>>8); there is no b[127]
	L < 127           no length field

Then for each i from 128 to L-1, b[i] = b[i%128], so later frames copy
the length field as well.

Transform never modifies b.  It returns nil if b is empty.
*/
func Transform(b []byte, class SizeClass) []byte {
	n := len(b)
	if n == 0 {
		return nil
	}
	w := make([]byte, n)
	copy(w, b)
	switch {
	case n > lenLow:
		if class == Large {
			w[lenHigh] = byte(n >> 8)
		}
		w[lenLow] = byte(n)
	case n == lenLow && class == Large:
		w[lenHigh] = byte(n >> 8)
	}
	// The last frame may be partial.
	for i := FrameSize; i < n; i += FrameSize {
		copy(w[i:], w[:FrameSize])
	}
	return w
}

// TransformDecision is Transform with the size class taken from d.
func TransformDecision(b []byte, d SizeDecision) []byte {
	return Transform(b, d.Class)
}
