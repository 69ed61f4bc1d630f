// © 2024 Ledgerlang LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFixedDigits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		text     string
		nchars   int
		expected int
	}{
		{"2023", 4, 2023},
		{"0001", 4, 1},
		{"007", 3, 7},
		{"05-03", 2, 5},
		{"9999", 4, 9999},
		{"0", 1, 0},
		{"31xyz", 2, 31},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.text, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, parseFixedDigits(testCase.text, testCase.nchars))
		})
	}
}
