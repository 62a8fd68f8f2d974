/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

package vars

import "fmt"

// repeatSequence builds the "repeat sequence n times" form of multiplication.
// seq is the sequence operand; count must be numeric.
func repeatSequence(seq, count operand) (Var, error) {
	if !count.numeric() {
		return Var{}, unsupportedOperands("*", seq, count)
	}
	s, err := Create(seq.raw)
	if err != nil {
		return Var{}, fmt.Errorf("sequence operand: %w", err)
	}
	c := count.numericVar()
	js := fmt.Sprintf("Array.from({ length: %s }).flatMap(() => %s)", c, s)
	return operation(js, TypeSequence, s.data, c.data), nil
}
