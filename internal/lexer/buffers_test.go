// © 2024 Ledgerlang LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.ledgerlang.org/lexer.go/internal/exc"
	"gopkg.ledgerlang.org/lexer.go/internal/fs"
	"gopkg.ledgerlang.org/lexer.go/internal/lang"
)

// fsysMap serves static content by exact path.
type fsysMap map[string]string

func (self fsysMap) Open(ctx context.Context, uri string) ([]lang.File, error) {
	content, ok := self[uri]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", uri)
	}
	return []lang.File{fs.NewFileString(uri, content, lang.FileKindLedger)}, nil
}

func (self fsysMap) Write(ctx context.Context, uri string, content string) error {
	return fmt.Errorf("write is not supported")
}

func scanInclude(t *testing.T, fsys fsysMap, root string) ([]lang.Token, *Scanner, exc.Reporter) {
	t.Helper()
	ctx := context.Background()
	rep := exc.NewReporter(nil)
	lx := NewLexerLedger(rep, NewBuilder(), WithOptionFileSystem(fsys))
	files, err := fsys.Open(ctx, root)
	require.Nil(t, err)
	s, err := lx.Lex(ctx, files[0])
	require.Nil(t, err)
	t.Cleanup(func() {
		_ = s.Close(ctx)
	})
	out := make([]lang.Token, 0, 16)
	for {
		tok := s.Next(ctx)
		out = append(out, tok)
		if tok.Type == lang.TokenTypeEOF {
			return out, s, rep
		}
		require.Less(t, len(out), 1000)
	}
}

func TestIncludeRestoresPosition(t *testing.T) {
	t.Parallel()

	fsys := fsysMap{
		"/root.ledger": "|\ninclude \"child\" |\n",
		"child":        "|\n",
	}
	tokens, s, rep := scanInclude(t, fsys, "/root.ledger")
	require.Empty(t, rep.Reported())

	expected := []expectedToken{
		{lang.TokenTypePipe, "|", [2]int32{1, 1}, [2]int32{1, 1}},
		{lang.TokenTypeEOL, "\n", [2]int32{1, 2}, [2]int32{1, 2}},
		{lang.TokenTypePipe, "|", [2]int32{1, 1}, [2]int32{1, 1}},
		{lang.TokenTypeEOL, "\n", [2]int32{1, 2}, [2]int32{1, 2}},
		{lang.TokenTypePipe, "|", [2]int32{2, 17}, [2]int32{2, 17}},
		{lang.TokenTypeEOL, "\n", [2]int32{2, 18}, [2]int32{2, 18}},
		{lang.TokenTypeEOF, "", [2]int32{3, 1}, [2]int32{3, 1}},
	}
	actual := make([]expectedToken, 0, len(tokens))
	for _, tok := range tokens {
		actual = append(actual, expectedToken{
			typ:   tok.Type,
			text:  tok.Text,
			start: [2]int32{tok.Span.Start.Line, tok.Span.Start.Column},
			end:   [2]int32{tok.Span.End.Line, tok.Span.End.Column},
		})
	}
	require.Equal(t, expected, actual)
	require.Equal(t, 2, s.EOFTimes())
	require.True(t, s.AtEndOfInput())
}

func TestIncludeNested(t *testing.T) {
	t.Parallel()

	fsys := fsysMap{
		"/root.ledger": "include \"a\"\n",
		"a":            "include \"b\"\n",
		"b":            "txn\n",
	}
	tokens, s, rep := scanInclude(t, fsys, "/root.ledger")
	require.Empty(t, rep.Reported())

	types := make([]lang.TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	require.Equal(t, []lang.TokenType{
		lang.TokenTypeKeywordTxn,
		lang.TokenTypeEOL,
		lang.TokenTypeEOL,
		lang.TokenTypeEOL,
		lang.TokenTypeEOF,
	}, types)
	require.Equal(t, 3, s.EOFTimes())
}

func TestIncludeMissingFileIsRecoverable(t *testing.T) {
	t.Parallel()

	fsys := fsysMap{
		"/root.ledger": "include \"missing\"\ntxn\n",
	}
	tokens, s, rep := scanInclude(t, fsys, "/root.ledger")

	types := make([]lang.TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	require.Equal(t, []lang.TokenType{
		lang.TokenTypeEOL,
		lang.TokenTypeKeywordTxn,
		lang.TokenTypeEOL,
		lang.TokenTypeEOF,
	}, types)
	require.Equal(t, 1, s.EOFTimes())

	reported := rep.Reported()
	require.Len(t, reported, 1)
	require.Equal(t, exc.CodeFileNotFound, reported[0].Code())
}

func TestIncludeWithoutFileSystem(t *testing.T) {
	t.Parallel()

	tokens, rep := scanAll(t, "include \"x\"\n", NewBuilder())
	types := make([]lang.TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	require.Equal(t, []lang.TokenType{
		lang.TokenTypeEOL,
		lang.TokenTypeEOF,
	}, types)

	reported := rep.Reported()
	require.Len(t, reported, 1)
	require.Equal(t, exc.CodeFileNotFound, reported[0].Code())
}

func TestIncludeRequiresQuotedName(t *testing.T) {
	t.Parallel()

	tokens, rep := scanAll(t, "include 5\n", NewBuilder())
	require.Equal(t, lang.TokenTypeError, tokens[0].Type)
	require.Equal(t, "include directive requires a quoted file name", tokens[0].Text)

	reported := rep.Reported()
	require.Len(t, reported, 1)
	require.Equal(t, exc.CodeInvalidToken, reported[0].Code())
}
