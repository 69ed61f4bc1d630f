// © 2024 Ledgerlang LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.ledgerlang.org/lexer.go/internal/exc"
	"gopkg.ledgerlang.org/lexer.go/internal/lang"
	"gopkg.ledgerlang.org/lexer.go/internal/optional"
)

const (
	lexerLedgerLookahead = 4
)

type optionalCodePoint = optional.Optional[lang.CodePoint]

// LexerLedger implements a tokenizer for the ledgerlang syntax.
type LexerLedger struct {
	reporter exc.Reporter
	builder  Builder
	fsys     lang.FileSystem
	encoding string
}

type LexerLedgerOption func(*LexerLedger)

// WithOptionFileSystem installs the file system used to resolve include
// directives. Without one every include reports a file-not-found error.
func WithOptionFileSystem(fsys lang.FileSystem) LexerLedgerOption {
	return func(lx *LexerLedger) {
		lx.fsys = fsys
	}
}

// WithOptionEncoding records the encoding tag for the scan. Bodies are
// always decoded as UTF-8; the tag is advisory for builders that need it.
func WithOptionEncoding(encoding string) LexerLedgerOption {
	return func(lx *LexerLedger) {
		lx.encoding = encoding
	}
}

func NewLexerLedger(reporter exc.Reporter, builder Builder, options ...LexerLedgerOption) *LexerLedger {
	lx := &LexerLedger{
		reporter: reporter,
		builder:  builder,
		encoding: "utf-8",
	}
	for _, option := range options {
		option(lx)
	}
	return lx
}

// Lex opens the given file and returns a Scanner positioned at its start.
func (self *LexerLedger) Lex(ctx context.Context, f lang.File) (*Scanner, error) {
	s := &Scanner{
		reporter: self.reporter,
		builder:  self.builder,
		fsys:     self.fsys,
		encoding: self.encoding,
		path:     f.Path(ctx),
		buf:      newStrbuf(0),
	}
	if err := s.pushFile(ctx, f); err != nil {
		return nil, err
	}
	return s, nil
}

// Scanner produces one token per Next call until the buffer stack is
// exhausted at the root, after which Next yields the EOF token forever.
// All scan state is owned by the Scanner; a Scanner must only be used from
// a single goroutine between Lex and Close.
type Scanner struct {
	reporter exc.Reporter
	builder  Builder
	fsys     lang.FileSystem
	encoding string
	path     string

	stack    []*frame
	eofTimes int
	done     bool
	eofLoc   lang.Location

	buf *strbuf
}

// Path returns the path of the root file being scanned.
func (self *Scanner) Path() string {
	return self.path
}

// Encoding returns the encoding tag recorded for this scan.
func (self *Scanner) Encoding() string {
	return self.encoding
}

// LineTokens returns the number of matches seen since the beginning of the
// current line. Grammars consult this to detect indentation-significant
// line starts.
func (self *Scanner) LineTokens() int32 {
	if fr := self.top(); fr != nil {
		return fr.lineTokens
	}
	return 0
}

// Close releases all buffers. Scanning after Close yields EOF tokens.
func (self *Scanner) Close(ctx context.Context) error {
	var firstErr error
	for _, fr := range self.stack {
		if err := fr.in.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	self.stack = nil
	self.done = true
	return firstErr
}

var keywords = map[string]lang.TokenType{
	"txn":       lang.TokenTypeKeywordTxn,
	"balance":   lang.TokenTypeKeywordBalance,
	"open":      lang.TokenTypeKeywordOpen,
	"close":     lang.TokenTypeKeywordClose,
	"commodity": lang.TokenTypeKeywordCommodity,
	"pad":       lang.TokenTypeKeywordPad,
	"event":     lang.TokenTypeKeywordEvent,
	"query":     lang.TokenTypeKeywordQuery,
	"custom":    lang.TokenTypeKeywordCustom,
	"price":     lang.TokenTypeKeywordPrice,
	"note":      lang.TokenTypeKeywordNote,
	"document":  lang.TokenTypeKeywordDocument,
	"pushtag":   lang.TokenTypeKeywordPushtag,
	"poptag":    lang.TokenTypeKeywordPoptag,
	"pushmeta":  lang.TokenTypeKeywordPushmeta,
	"popmeta":   lang.TokenTypeKeywordPopmeta,
	"option":    lang.TokenTypeKeywordOption,
	"plugin":    lang.TokenTypeKeywordPlugin,
	"include":   lang.TokenTypeKeywordInclude,
}

// Next scans and returns exactly one token. Errors of any kind are
// accumulated on the reporter and surfaced as a single Error token; the
// caller decides whether to keep scanning.
func (self *Scanner) Next(ctx context.Context) lang.Token {
	for {
		if self.done {
			return self.eofToken()
		}
		start := self.pos()
		p := self.read(ctx)
		if !p.IsPresent() {
			if self.popBuffer(ctx) {
				continue
			}
			self.done = true
			self.eofLoc = start
			return self.eofToken()
		}
		r := rune(p.Value())
		switch r {
		case '\uFEFF':
			if start.Offset == 0 {
				self.top().col = 1 // Leading byte order mark takes no column.
				continue
			}
			return self.invalidToken(ctx, start, r)
		case '\n':
			return self.newlineToken(start, "\n")
		case '\r':
			if n := self.la(ctx, 1); n.IsPresent() && rune(n.Value()) == '\n' {
				_ = self.read(ctx)
				return self.newlineToken(start, "\r\n")
			}
			fr := self.top()
			fr.line = fr.line + 1
			fr.col = 1
			fr.lineTokens = 0
			return self.newlineToken(start, "\r")
		case ' ', '\t':
			if tok, emit := self.scanWhitespace(ctx, start, r); emit {
				return tok
			}
			continue
		case ';':
			self.skipLine(ctx)
			self.countMatch()
			continue
		case '"':
			text, e := self.scanStringBody(ctx)
			span := self.spanFrom(start)
			if e != nil {
				return self.lexError(span, e)
			}
			v, err := self.builder.String(ctx, text)
			return self.build(ctx, span, lang.TokenTypeString, text, v, err)
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return self.scanDateOrNumber(ctx, start, r)
		case '#':
			if n := self.la(ctx, 1); n.IsPresent() && isTagChar(rune(n.Value())) {
				name := self.readWhile(ctx, isTagChar)
				span := self.spanFrom(start)
				v, err := self.builder.Tag(ctx, name)
				return self.build(ctx, span, lang.TokenTypeTag, name, v, err)
			}
			return self.punct(start, lang.TokenTypeHash, "#")
		case '^':
			if n := self.la(ctx, 1); n.IsPresent() && isTagChar(rune(n.Value())) {
				name := self.readWhile(ctx, isTagChar)
				span := self.spanFrom(start)
				v, err := self.builder.Link(ctx, name)
				return self.build(ctx, span, lang.TokenTypeLink, name, v, err)
			}
			return self.punct(start, lang.TokenTypeCaret, "^")
		case '@':
			if n := self.la(ctx, 1); n.IsPresent() && rune(n.Value()) == '@' {
				_ = self.read(ctx)
				return self.punct(start, lang.TokenTypeAtAt, "@@")
			}
			return self.punct(start, lang.TokenTypeAt, "@")
		case '{':
			if n := self.la(ctx, 1); n.IsPresent() && rune(n.Value()) == '{' {
				_ = self.read(ctx)
				return self.punct(start, lang.TokenTypeLCurlCurl, "{{")
			}
			return self.punct(start, lang.TokenTypeLCurl, "{")
		case '}':
			if n := self.la(ctx, 1); n.IsPresent() && rune(n.Value()) == '}' {
				_ = self.read(ctx)
				return self.punct(start, lang.TokenTypeRCurlCurl, "}}")
			}
			return self.punct(start, lang.TokenTypeRCurl, "}")
		case '|':
			return self.punct(start, lang.TokenTypePipe, "|")
		case ',':
			return self.punct(start, lang.TokenTypeComma, ",")
		case '~':
			return self.punct(start, lang.TokenTypeTilde, "~")
		case '+':
			return self.punct(start, lang.TokenTypePlus, "+")
		case '-':
			return self.punct(start, lang.TokenTypeMinus, "-")
		case '/':
			return self.punct(start, lang.TokenTypeSlash, "/")
		case '(':
			return self.punct(start, lang.TokenTypeLParen, "(")
		case ')':
			return self.punct(start, lang.TokenTypeRParen, ")")
		case ':':
			return self.punct(start, lang.TokenTypeColon, ":")
		case '*':
			return self.punct(start, lang.TokenTypeAsterisk, "*")
		case '!', '&', '?', '%':
			return self.punct(start, lang.TokenTypeFlag, string(r))
		default:
			if unicode.IsUpper(r) {
				return self.scanWordUpper(ctx, start, r)
			}
			if unicode.IsLower(r) {
				if tok, emit := self.scanWordLower(ctx, start, r); emit {
					return tok
				}
				continue
			}
			return self.invalidToken(ctx, start, r)
		}
	}
}

// scanWhitespace consumes a run of spaces and tabs. A run that opens a
// line with content following it is significant and becomes an Indent
// token; anything else is skipped.
func (self *Scanner) scanWhitespace(ctx context.Context, start lang.Location, first rune) (lang.Token, bool) {
	atLineStart := self.top().lineTokens == 0
	var b strings.Builder
	b.WriteRune(first)
	for {
		n := self.la(ctx, 1)
		if !n.IsPresent() || (rune(n.Value()) != ' ' && rune(n.Value()) != '\t') {
			break
		}
		_ = self.read(ctx)
		b.WriteRune(rune(n.Value()))
	}
	self.countMatch()
	n := self.la(ctx, 1)
	if atLineStart && n.IsPresent() && rune(n.Value()) != '\n' && rune(n.Value()) != '\r' {
		return lang.Token{Span: self.spanFrom(start), Type: lang.TokenTypeIndent, Text: b.String()}, true
	}
	return lang.Token{}, false
}

// scanStringBody accumulates a quoted string literal. The opening quote
// has been consumed already; the closing quote is consumed here. Escape
// sequences are decoded before the bytes reach the accumulator. Literals
// may span lines.
func (self *Scanner) scanStringBody(ctx context.Context) (string, exc.Exception) {
	self.buf.reset()
	for {
		p := self.read(ctx)
		if !p.IsPresent() {
			return "", self.exc(exc.CodeUnexpectedEOF, "end of input in quoted string literal")
		}
		r := rune(p.Value())
		switch r {
		case '"':
			return self.buf.finalize(), nil
		case '\\':
			q := self.read(ctx)
			if !q.IsPresent() {
				return "", self.exc(exc.CodeUnexpectedEOF, "end of input in quoted string literal")
			}
			switch rune(q.Value()) {
			case 'n':
				self.buf.appendByte('\n')
			case 't':
				self.buf.appendByte('\t')
			case 'r':
				self.buf.appendByte('\r')
			case 'f':
				self.buf.appendByte('\f')
			case 'b':
				self.buf.appendByte('\b')
			default:
				self.buf.appendRune(rune(q.Value()))
			}
		default:
			self.buf.appendRune(r)
		}
	}
}

// scanDateOrNumber disambiguates dates from amounts. A run of exactly four
// digits followed by a separator and another digit is a date; everything
// else is an amount literal with optional comma groups and fraction.
func (self *Scanner) scanDateOrNumber(ctx context.Context, start lang.Location, first rune) lang.Token {
	var b strings.Builder
	b.WriteRune(first)
	for {
		n := self.la(ctx, 1)
		if !n.IsPresent() || !isDigit(rune(n.Value())) {
			break
		}
		_ = self.read(ctx)
		b.WriteRune(rune(n.Value()))
	}
	n1 := self.la(ctx, 1)
	n2 := self.la(ctx, 2)
	if b.Len() == 4 &&
		n1.IsPresent() && isDateSep(rune(n1.Value())) &&
		n2.IsPresent() && isDigit(rune(n2.Value())) {
		return self.scanDate(ctx, start, &b)
	}
	for {
		n := self.la(ctx, 1)
		if !n.IsPresent() {
			break
		}
		r := rune(n.Value())
		if isDigit(r) {
			_ = self.read(ctx)
			b.WriteRune(r)
			continue
		}
		if r == ',' {
			nn := self.la(ctx, 2)
			if nn.IsPresent() && isDigit(rune(nn.Value())) {
				_ = self.read(ctx)
				b.WriteRune(r)
				continue
			}
		}
		break
	}
	if n, nn := self.la(ctx, 1), self.la(ctx, 2); n.IsPresent() && rune(n.Value()) == '.' &&
		nn.IsPresent() && isDigit(rune(nn.Value())) {
		_ = self.read(ctx)
		b.WriteRune('.')
		for {
			n := self.la(ctx, 1)
			if !n.IsPresent() || !isDigit(rune(n.Value())) {
				break
			}
			_ = self.read(ctx)
			b.WriteRune(rune(n.Value()))
		}
	}
	text := b.String()
	span := self.spanFrom(start)
	v, err := self.builder.Number(ctx, text)
	return self.build(ctx, span, lang.TokenTypeNumber, text, v, err)
}

// scanDate finishes a date once the year digits and first separator have
// been sighted. The month and day fields are fixed-width.
func (self *Scanner) scanDate(ctx context.Context, start lang.Location, b *strings.Builder) lang.Token {
	sep := rune(self.read(ctx).Value())
	b.WriteRune(sep)
	if !self.readFixedDigits(ctx, b, 2) {
		return self.invalidRun(ctx, start, b)
	}
	n := self.la(ctx, 1)
	if !n.IsPresent() || !isDateSep(rune(n.Value())) {
		return self.invalidRun(ctx, start, b)
	}
	b.WriteRune(rune(self.read(ctx).Value()))
	if !self.readFixedDigits(ctx, b, 2) {
		return self.invalidRun(ctx, start, b)
	}
	text := b.String()
	year := parseFixedDigits(text, 4)
	month := parseFixedDigits(text[5:], 2)
	day := parseFixedDigits(text[8:], 2)
	span := self.spanFrom(start)
	v, err := self.builder.Date(ctx, year, month, day)
	return self.build(ctx, span, lang.TokenTypeDate, text, v, err)
}

// scanWordUpper classifies a capitalized word: boolean and null literals,
// account names (colon separated segments), or currencies.
func (self *Scanner) scanWordUpper(ctx context.Context, start lang.Location, first rune) lang.Token {
	var b strings.Builder
	b.WriteRune(first)
	for {
		n := self.la(ctx, 1)
		if !n.IsPresent() {
			break
		}
		r := rune(n.Value())
		if isWordChar(r) {
			_ = self.read(ctx)
			b.WriteRune(r)
			continue
		}
		if r == ':' {
			nn := self.la(ctx, 2)
			if nn.IsPresent() && (unicode.IsLetter(rune(nn.Value())) || isDigit(rune(nn.Value()))) {
				_ = self.read(ctx)
				b.WriteRune(r)
				continue
			}
		}
		break
	}
	text := b.String()
	span := self.spanFrom(start)
	switch text {
	case "TRUE":
		self.countMatch()
		return lang.Token{Span: span, Type: lang.TokenTypeBool, Text: text, Value: true}
	case "FALSE":
		self.countMatch()
		return lang.Token{Span: span, Type: lang.TokenTypeBool, Text: text, Value: false}
	case "NULL":
		self.countMatch()
		return lang.Token{Span: span, Type: lang.TokenTypeNone, Text: text}
	}
	if strings.ContainsRune(text, ':') {
		v, err := self.builder.Account(ctx, text)
		return self.build(ctx, span, lang.TokenTypeAccount, text, v, err)
	}
	if isCurrencyText(text) {
		v, err := self.builder.Currency(ctx, text)
		return self.build(ctx, span, lang.TokenTypeCurrency, text, v, err)
	}
	e := self.excAt(start, exc.CodeInvalidToken, fmt.Sprintf("invalid token: '%s'", text))
	self.skipLine(ctx)
	return self.lexError(span, e)
}

// scanWordLower handles metadata keys, directive keywords, and the include
// directive. A word immediately followed by a colon is a key; the colon is
// left in the stream. The include directive is consumed entirely and emits
// no token, its file's tokens follow inline.
func (self *Scanner) scanWordLower(ctx context.Context, start lang.Location, first rune) (lang.Token, bool) {
	var b strings.Builder
	b.WriteRune(first)
	for {
		n := self.la(ctx, 1)
		if !n.IsPresent() || !isWordChar(rune(n.Value())) {
			break
		}
		_ = self.read(ctx)
		b.WriteRune(rune(n.Value()))
	}
	text := b.String()
	span := self.spanFrom(start)
	if n := self.la(ctx, 1); n.IsPresent() && rune(n.Value()) == ':' {
		v, err := self.builder.Key(ctx, text)
		return self.build(ctx, span, lang.TokenTypeKey, text, v, err), true
	}
	if typ, ok := keywords[text]; ok {
		if typ == lang.TokenTypeKeywordInclude {
			return self.includeDirective(ctx, start)
		}
		self.countMatch()
		return lang.Token{Span: span, Type: typ, Text: text}, true
	}
	e := self.excAt(start, exc.CodeInvalidToken, fmt.Sprintf("invalid token: '%s'", text))
	self.skipLine(ctx)
	return self.lexError(span, e), true
}

// includeDirective consumes `include "path"` and pushes the referenced
// file as the active buffer. An unopenable target is a recoverable error:
// it is reported and scanning resumes in the current buffer.
func (self *Scanner) includeDirective(ctx context.Context, start lang.Location) (lang.Token, bool) {
	self.countMatch()
	for {
		n := self.la(ctx, 1)
		if !n.IsPresent() || (rune(n.Value()) != ' ' && rune(n.Value()) != '\t') {
			break
		}
		_ = self.read(ctx)
	}
	n := self.la(ctx, 1)
	if !n.IsPresent() || rune(n.Value()) != '"' {
		e := self.excAt(start, exc.CodeInvalidToken, "include directive requires a quoted file name")
		self.skipLine(ctx)
		return self.lexError(self.spanFrom(start), e), true
	}
	_ = self.read(ctx)
	uri, e := self.scanStringBody(ctx)
	if e != nil {
		return self.lexError(self.spanFrom(start), e), true
	}
	self.pushURI(ctx, uri, start)
	return lang.Token{}, false
}

// build is the single call site check for every builder invocation. A
// builder error becomes one reported record and one Error token; a nil
// value without an error is a contract violation with its own fixed
// diagnostic. Successful values become the token payload.
func (self *Scanner) build(ctx context.Context, span lang.Span, typ lang.TokenType, text string, v any, err error) lang.Token {
	if err != nil {
		return self.lexError(span, exc.Wrap(self.locAt(span.Start), exc.CodeBuilderError, err))
	}
	if v == nil {
		return self.lexError(span, exc.New(self.locAt(span.Start), exc.CodeBuilderNil, "unexpected nil result from builder"))
	}
	self.countMatch()
	return lang.Token{Span: span, Type: typ, Text: text, Value: v}
}

func (self *Scanner) lexError(span lang.Span, e exc.Exception) lang.Token {
	_ = self.reporter.Report(e)
	self.countMatch()
	return lang.Token{Span: span, Type: lang.TokenTypeError, Text: e.Message()}
}

// invalidToken reports an unrecognized input sequence and resynchronizes
// at the end of the line.
func (self *Scanner) invalidToken(ctx context.Context, start lang.Location, first rune) lang.Token {
	var b strings.Builder
	b.WriteRune(first)
	return self.invalidRun(ctx, start, &b)
}

func (self *Scanner) invalidRun(ctx context.Context, start lang.Location, b *strings.Builder) lang.Token {
	for {
		n := self.la(ctx, 1)
		if !n.IsPresent() {
			break
		}
		r := rune(n.Value())
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			break
		}
		_ = self.read(ctx)
		b.WriteRune(r)
	}
	e := self.excAt(start, exc.CodeInvalidToken, fmt.Sprintf("invalid token: '%s'", b.String()))
	span := self.spanFrom(start)
	self.skipLine(ctx)
	return self.lexError(span, e)
}

// skipLine consumes input up to, but not including, the next newline so
// the grammar can resynchronize on the EOL token that follows.
func (self *Scanner) skipLine(ctx context.Context) {
	for {
		n := self.la(ctx, 1)
		if !n.IsPresent() {
			return
		}
		if r := rune(n.Value()); r == '\n' || r == '\r' {
			return
		}
		_ = self.read(ctx)
	}
}

func (self *Scanner) punct(start lang.Location, typ lang.TokenType, text string) lang.Token {
	self.countMatch()
	return lang.Token{Span: self.spanFrom(start), Type: typ, Text: text}
}

func (self *Scanner) newlineToken(start lang.Location, text string) lang.Token {
	end := start
	end.Column = start.Column + int32(len(text)) - 1
	end.Offset = start.Offset + int64(len(text)) - 1
	return lang.Token{Span: lang.Span{Start: start, End: end}, Type: lang.TokenTypeEOL, Text: text}
}

func (self *Scanner) eofToken() lang.Token {
	return lang.Token{Span: lang.Span{Start: self.eofLoc, End: self.eofLoc}, Type: lang.TokenTypeEOF}
}

// read consumes one code point from the active frame, keeping the line and
// column counters current. Columns are 1-based and count characters, not
// display width. A newline resets the tokens-since-beginning-of-line
// counter.
func (self *Scanner) read(ctx context.Context) (out optionalCodePoint) {
	fr := self.top()
	if fr == nil {
		return out
	}
	n := fr.in.Next(ctx)
	if n.IsPresent() {
		r := rune(n.Value())
		if r == '\n' {
			fr.line = fr.line + 1
			fr.col = 1
			fr.lineTokens = 0
		} else {
			fr.col = fr.col + 1
		}
		fr.offset = fr.offset + int64(utf8.RuneLen(r))
	}
	return n
}

func (self *Scanner) la(ctx context.Context, n uint8) optionalCodePoint {
	fr := self.top()
	if fr == nil {
		var none optionalCodePoint
		return none
	}
	return fr.in.Lookahead(ctx, n)
}

// readWhile consumes and returns the run of characters matching pred.
func (self *Scanner) readWhile(ctx context.Context, pred func(rune) bool) string {
	var b strings.Builder
	for {
		n := self.la(ctx, 1)
		if !n.IsPresent() || !pred(rune(n.Value())) {
			break
		}
		_ = self.read(ctx)
		b.WriteRune(rune(n.Value()))
	}
	return b.String()
}

// readFixedDigits consumes exactly n digit characters into b, or reports
// false without consuming the first non-digit it sights.
func (self *Scanner) readFixedDigits(ctx context.Context, b *strings.Builder, n int) bool {
	for x := 0; x < n; x = x + 1 {
		c := self.la(ctx, 1)
		if !c.IsPresent() || !isDigit(rune(c.Value())) {
			return false
		}
		_ = self.read(ctx)
		b.WriteRune(rune(c.Value()))
	}
	return true
}

func (self *Scanner) pos() lang.Location {
	fr := self.top()
	if fr == nil {
		return self.eofLoc
	}
	return lang.Location{Line: fr.line, Column: fr.col, Offset: fr.offset}
}

// spanFrom stamps the span of the lexeme that began at start and ends at
// the last consumed character, inclusive on both ends.
func (self *Scanner) spanFrom(start lang.Location) lang.Span {
	fr := self.top()
	if fr == nil {
		return lang.Span{Start: start, End: start}
	}
	return lang.Span{
		Start: start,
		End:   lang.Location{Line: fr.line, Column: fr.col - 1, Offset: fr.offset - 1},
	}
}

func (self *Scanner) countMatch() {
	if fr := self.top(); fr != nil {
		fr.lineTokens = fr.lineTokens + 1
	}
}

func (self *Scanner) exc(code string, message string) exc.Exception {
	return exc.New(self.locAt(self.pos()), code, message)
}

func (self *Scanner) excAt(at lang.Location, code string, message string) exc.Exception {
	return exc.New(self.locAt(at), code, message)
}

func (self *Scanner) locAt(at lang.Location) exc.Location {
	uri := self.path
	if fr := self.top(); fr != nil {
		uri = fr.path
	}
	return exc.Location{Location: at, URI: uri}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDateSep(r rune) bool {
	return r == '-' || r == '/'
}

func isTagChar(r rune) bool {
	return unicode.IsLetter(r) || isDigit(r) || r == '-' || r == '_' || r == '/' || r == '.'
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || isDigit(r) || r == '-' || r == '_' || r == '\'' || r == '.'
}

func isCurrencyText(s string) bool {
	for x, r := range s {
		if x == 0 {
			if r < 'A' || r > 'Z' {
				return false
			}
			continue
		}
		if (r < 'A' || r > 'Z') && !isDigit(r) && r != '\'' && r != '.' && r != '_' && r != '-' {
			return false
		}
	}
	return true
}
