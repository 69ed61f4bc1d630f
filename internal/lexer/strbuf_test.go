// © 2024 Ledgerlang LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrbuf(t *testing.T) {
	t.Parallel()

	b := newStrbuf(0)
	require.Equal(t, 0, b.len())
	require.Equal(t, strbufInitialSize, b.capacity())

	b.appendByte('a')
	b.appendRune('é')
	b.appendString("bc")
	require.Equal(t, "aébc", b.finalize())

	b.reset()
	require.Equal(t, 0, b.len())
	require.Equal(t, "", b.finalize())
}

func TestStrbufGrowth(t *testing.T) {
	t.Parallel()

	b := newStrbuf(4)
	payload := strings.Repeat("0123456789", 1000)
	for x := 0; x < len(payload); x = x + 1 {
		b.appendByte(payload[x])
	}
	require.Equal(t, payload, b.finalize())
	require.GreaterOrEqual(t, b.capacity(), len(payload))

	grown := b.capacity()
	b.reset()
	require.Equal(t, grown, b.capacity())
}

func TestStrbufFinalizeIsolation(t *testing.T) {
	t.Parallel()

	b := newStrbuf(16)
	b.appendString("first")
	first := b.finalize()
	b.reset()
	b.appendString("second")
	require.Equal(t, "first", first)
	require.Equal(t, "second", b.finalize())
}
