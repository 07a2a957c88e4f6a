// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrhex_test

import (
	"fmt"

	"github.com/unixdj/qrhex"
)

func ExampleTransform() {
	b := make([]byte, 300)
	class := qrhex.Classify(len(b), 0, false)
	w := qrhex.Transform(b, class)
	fmt.Println(class, len(w), w[126], w[127], w[126+128], w[127+128])
	// Output: large 300 1 44 1 44
}

func ExampleParseHex() {
	b, err := qrhex.ParseHex("01 02 0A\n0b")
	fmt.Printf("% x %v\n", b, err)
	_, err = qrhex.ParseHex("ab c")
	fmt.Println(err)
	// Output:
	// 01 02 0a 0b <nil>
	// qrhex: malformed hex: odd length "c" at offset 2
}

func ExampleSession() {
	s := qrhex.NewSession()
	s.Load([]byte{0xca, 0xfe, 0xba, 0xbe}, 1)
	fmt.Println(s.DisplayText())
	if err := s.Edit("CAFE BABE 00"); err != nil {
		fmt.Println(err)
	}
	fmt.Println(s.EditText())
	// Output:
	// CA FE BA BE
	// CAFEBABE00
}
