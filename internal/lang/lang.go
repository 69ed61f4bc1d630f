// © 2024 Ledgerlang LLC
//
// SPDX-License-Identifier: Apache-2.0

package lang

import (
	"context"
	"fmt"

	"gopkg.ledgerlang.org/lexer.go/internal/optional"
)

type Closer interface {
	Close(ctx context.Context) error
}

type CodePoint uint32

type Iterator[T any] interface {
	Next(ctx context.Context) optional.Optional[T]
	Closer
}

type Lookahead[T any] interface {
	Iterator[T]
	Lookahead(ctx context.Context, n uint8) optional.Optional[T]
}

type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

type Reader interface {
	Read(ctx context.Context, size int32) ([]byte, error)
}

type FileBody interface {
	Reader
	Closer
}

type FileKind uint32

const (
	FileKindNone FileKind = iota
	FileKindLedger
	FileKindLedgerCache
)

func (k FileKind) String() string {
	switch k {
	case FileKindLedger:
		return "ledger"
	case FileKindLedgerCache:
		return "ledger-cache"
	case FileKindNone:
		return "none"
	default:
		return fmt.Sprintf("unknown-%d", k)
	}
}

type File interface {
	Path(ctx context.Context) string
	Kind(ctx context.Context) FileKind
	Body(ctx context.Context) (FileBody, error)
}

type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
	Write(ctx context.Context, uri string, content string) error
}

// Location is a 1-based line/column position within a source file. Offset
// is the 0-based byte offset of the position within the file.
type Location struct {
	Line   int32
	Column int32
	Offset int64
}

// Span covers a matched lexeme. Start and End are both inclusive: End is
// the location of the last character of the lexeme.
type Span struct {
	Start Location
	End   Location
}

// Token is one lexeme as classified by the scanner. Text is the raw
// matched text. Value carries the semantic payload constructed by the
// builder for kinds that have one, a primitive for booleans, and nil for
// punctuation, keywords, and specials.
type Token struct {
	Span  Span
	Type  TokenType
	Text  string
	Value any
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q [%d:%d - %d:%d]", t.Type, t.Text, t.Span.Start.Line, t.Span.Start.Column, t.Span.End.Line, t.Span.End.Column)
}

type TokenType uint16

const (
	TokenTypeUnknown TokenType = iota
	TokenTypeEOF
	TokenTypeError
	TokenTypeEOL
	TokenTypeIndent
	TokenTypeDate
	TokenTypeNumber
	TokenTypeString
	TokenTypeAccount
	TokenTypeCurrency
	TokenTypeTag
	TokenTypeLink
	TokenTypeKey
	TokenTypeBool
	TokenTypeNone
	TokenTypeFlag
	TokenTypeAsterisk
	TokenTypePipe
	TokenTypeAt
	TokenTypeAtAt
	TokenTypeLCurl
	TokenTypeRCurl
	TokenTypeLCurlCurl
	TokenTypeRCurlCurl
	TokenTypeComma
	TokenTypeTilde
	TokenTypePlus
	TokenTypeMinus
	TokenTypeSlash
	TokenTypeLParen
	TokenTypeRParen
	TokenTypeHash
	TokenTypeCaret
	TokenTypeColon
	TokenTypeKeywordTxn
	TokenTypeKeywordBalance
	TokenTypeKeywordOpen
	TokenTypeKeywordClose
	TokenTypeKeywordCommodity
	TokenTypeKeywordPad
	TokenTypeKeywordEvent
	TokenTypeKeywordQuery
	TokenTypeKeywordCustom
	TokenTypeKeywordPrice
	TokenTypeKeywordNote
	TokenTypeKeywordDocument
	TokenTypeKeywordPushtag
	TokenTypeKeywordPoptag
	TokenTypeKeywordPushmeta
	TokenTypeKeywordPopmeta
	TokenTypeKeywordOption
	TokenTypeKeywordPlugin
	TokenTypeKeywordInclude
)

var tokenTypeNames = map[TokenType]string{
	TokenTypeUnknown:          "Unknown",
	TokenTypeEOF:              "EOF",
	TokenTypeError:            "Error",
	TokenTypeEOL:              "EOL",
	TokenTypeIndent:           "Indent",
	TokenTypeDate:             "Date",
	TokenTypeNumber:           "Number",
	TokenTypeString:           "String",
	TokenTypeAccount:          "Account",
	TokenTypeCurrency:         "Currency",
	TokenTypeTag:              "Tag",
	TokenTypeLink:             "Link",
	TokenTypeKey:              "Key",
	TokenTypeBool:             "Bool",
	TokenTypeNone:             "None",
	TokenTypeFlag:             "Flag",
	TokenTypeAsterisk:         "Asterisk",
	TokenTypePipe:             "Pipe",
	TokenTypeAt:               "At",
	TokenTypeAtAt:             "AtAt",
	TokenTypeLCurl:            "LCurl",
	TokenTypeRCurl:            "RCurl",
	TokenTypeLCurlCurl:        "LCurlCurl",
	TokenTypeRCurlCurl:        "RCurlCurl",
	TokenTypeComma:            "Comma",
	TokenTypeTilde:            "Tilde",
	TokenTypePlus:             "Plus",
	TokenTypeMinus:            "Minus",
	TokenTypeSlash:            "Slash",
	TokenTypeLParen:           "LParen",
	TokenTypeRParen:           "RParen",
	TokenTypeHash:             "Hash",
	TokenTypeCaret:            "Caret",
	TokenTypeColon:            "Colon",
	TokenTypeKeywordTxn:       "KeywordTxn",
	TokenTypeKeywordBalance:   "KeywordBalance",
	TokenTypeKeywordOpen:      "KeywordOpen",
	TokenTypeKeywordClose:     "KeywordClose",
	TokenTypeKeywordCommodity: "KeywordCommodity",
	TokenTypeKeywordPad:       "KeywordPad",
	TokenTypeKeywordEvent:     "KeywordEvent",
	TokenTypeKeywordQuery:     "KeywordQuery",
	TokenTypeKeywordCustom:    "KeywordCustom",
	TokenTypeKeywordPrice:     "KeywordPrice",
	TokenTypeKeywordNote:      "KeywordNote",
	TokenTypeKeywordDocument:  "KeywordDocument",
	TokenTypeKeywordPushtag:   "KeywordPushtag",
	TokenTypeKeywordPoptag:    "KeywordPoptag",
	TokenTypeKeywordPushmeta:  "KeywordPushmeta",
	TokenTypeKeywordPopmeta:   "KeywordPopmeta",
	TokenTypeKeywordOption:    "KeywordOption",
	TokenTypeKeywordPlugin:    "KeywordPlugin",
	TokenTypeKeywordInclude:   "KeywordInclude",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", uint16(t))
}
