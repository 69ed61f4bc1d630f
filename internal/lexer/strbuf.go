// © 2024 Ledgerlang LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import "unicode/utf8"

const strbufInitialSize = 128

// strbuf assembles the contents of one quoted string literal at a time. It
// is reset at the opening delimiter, appended to as the literal is scanned,
// and finalized when the closing delimiter is matched. The same buffer is
// reused for every literal so growth is amortized across a whole scan; the
// capacity never shrinks. Escape decoding is the caller's job, the buffer
// stores whatever bytes it is handed.
type strbuf struct {
	data []byte
}

func newStrbuf(size int) *strbuf {
	if size <= 0 {
		size = strbufInitialSize
	}
	return &strbuf{data: make([]byte, 0, size)}
}

func (b *strbuf) reset() {
	b.data = b.data[:0]
}

// grow reallocates to at least double the current capacity, or enough to
// fit n more bytes, whichever is larger. Already written bytes are
// preserved.
func (b *strbuf) grow(n int) {
	if len(b.data)+n <= cap(b.data) {
		return
	}
	newCap := 2 * cap(b.data)
	if newCap < len(b.data)+n {
		newCap = len(b.data) + n
	}
	next := make([]byte, len(b.data), newCap)
	copy(next, b.data)
	b.data = next
}

func (b *strbuf) appendByte(c byte) {
	b.grow(1)
	b.data = append(b.data, c)
}

func (b *strbuf) appendRune(r rune) {
	b.grow(utf8.UTFMax)
	b.data = utf8.AppendRune(b.data, r)
}

func (b *strbuf) appendString(s string) {
	b.grow(len(s))
	b.data = append(b.data, s...)
}

// finalize returns the accumulated literal and leaves the buffer ready for
// the next reset. The returned string is an independent copy.
func (b *strbuf) finalize() string {
	return string(b.data)
}

func (b *strbuf) len() int {
	return len(b.data)
}

func (b *strbuf) capacity() int {
	return cap(b.data)
}
