// © 2024 Ledgerlang LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"context"

	"gopkg.ledgerlang.org/lexer.go/internal/exc"
	"gopkg.ledgerlang.org/lexer.go/internal/iter"
	"gopkg.ledgerlang.org/lexer.go/internal/lang"
)

// frame is one entry in the scanner's buffer stack. Each frame owns its
// own read cursor and line/column counters, so suspending a frame for an
// included file and reactivating it later restores its position exactly.
// Frames are strictly LIFO; the active frame is the top of the stack.
type frame struct {
	path       string
	in         lang.Lookahead[lang.CodePoint]
	line       int32
	col        int32
	offset     int64
	lineTokens int32
}

func (self *Scanner) top() *frame {
	if len(self.stack) == 0 {
		return nil
	}
	return self.stack[len(self.stack)-1]
}

// pushFile suspends the active frame and makes the given file the active
// input. The push is all-or-nothing: the stack is only modified once the
// file body has been opened successfully.
func (self *Scanner) pushFile(ctx context.Context, f lang.File) error {
	body, err := f.Body(ctx)
	if err != nil {
		return err
	}
	self.stack = append(self.stack, &frame{
		path: f.Path(ctx),
		in:   iter.NewLookahead(iter.NewUnicodeFileBodyCtx(ctx, body), lexerLedgerLookahead),
		line: 1,
		col:  1,
	})
	return nil
}

// pushURI resolves an include target through the configured file system
// and pushes it. Failure to open is reported as a recoverable lexer error
// at the directive's location and leaves the stack untouched.
func (self *Scanner) pushURI(ctx context.Context, uri string, at lang.Location) {
	if self.fsys == nil {
		_ = self.reporter.Report(exc.New(self.locAt(at), exc.CodeFileNotFound, "no file system configured for includes"))
		return
	}
	files, err := self.fsys.Open(ctx, uri)
	if err != nil {
		_ = self.reporter.Report(exc.Wrap(self.locAt(at), exc.CodeFileNotFound, err))
		return
	}
	if err := self.pushFile(ctx, files[0]); err != nil {
		_ = self.reporter.Report(exc.Wrap(self.locAt(at), exc.CodeFileNotFound, err))
	}
}

// popBuffer discards the exhausted active frame and reactivates the one
// below it. The end-of-file counter advances once per exhaustion event so
// callers can distinguish a buffer switch from the true end of input.
// Returns true while frames remain to scan.
func (self *Scanner) popBuffer(ctx context.Context) bool {
	self.eofTimes = self.eofTimes + 1
	fr := self.top()
	_ = fr.in.Close(ctx)
	self.stack = self.stack[:len(self.stack)-1]
	return len(self.stack) > 0
}

// AtEndOfInput reports whether the buffer stack has been exhausted at the
// root. Once true every subsequent Next call yields the EOF token.
func (self *Scanner) AtEndOfInput() bool {
	return self.done
}

// EOFTimes returns the number of buffer exhaustion events observed so far,
// including the final one at the root.
func (self *Scanner) EOFTimes() int {
	return self.eofTimes
}
