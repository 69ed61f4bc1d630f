// © 2024 Ledgerlang LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

// parseFixedDigits interprets nchars consecutive ASCII decimal digit
// characters of text as a non-negative integer. It is used for the
// fixed-width subfields of dates, not for amount literals, which are
// handed to the builder untouched for arbitrary-precision conversion.
// The result is undefined for non-digit input; callers must have matched
// the characters as digits already.
func parseFixedDigits(text string, nchars int) int {
	v := 0
	for x := 0; x < nchars; x = x + 1 {
		v = v*10 + int(text[x]-'0')
	}
	return v
}
