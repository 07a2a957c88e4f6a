// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrhex

import "fmt"

// Capacity limits in bytes.
const (
	LargePayload = 1000 // slow to generate, hard to scan on phones
	MaxPayload   = 2953 // byte mode capacity of QR version 40-L
)

// A Capacity is advice on how well a payload fits in a QR code.
type Capacity int

const (
	CapacityOK       Capacity = iota // fits comfortably
	CapacityLarge                    // over LargePayload bytes
	CapacityExceeded                 // over MaxPayload bytes
)

// CheckCapacity returns the Capacity for a payload of n bytes.
func CheckCapacity(n int) Capacity {
	switch {
	case n > MaxPayload:
		return CapacityExceeded
	case n > LargePayload:
		return CapacityLarge
	}
	return CapacityOK
}

func (c Capacity) String() string {
	switch c {
	case CapacityOK:
		return "ok"
	case CapacityLarge:
		return "large"
	case CapacityExceeded:
		return "exceeded"
	}
	return fmt.Sprintf("Capacity(%d)", int(c))
}

// Warning returns advisory text for a payload of n bytes, or "" if
// there is nothing to report.
func (c Capacity) Warning(n int) string {
	switch c {
	case CapacityLarge:
		return fmt.Sprintf("data is large (%d bytes); generating may "+
			"be slow and the code hard to read on mobile devices", n)
	case CapacityExceeded:
		return fmt.Sprintf("data is too large (%d bytes); the maximum "+
			"QR code capacity is about %d bytes", n, MaxPayload)
	}
	return ""
}
