// © 2024 Ledgerlang LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import "context"

// Builder converts matched lexemes into semantic values. The scanner calls
// the operation named for the token kind it matched and stores the result
// as the token's payload. Implementations must return a non-nil value or
// an error, never both nil: a nil value without an error is a contract
// violation that the scanner reports as a lexer error. Errors returned
// here never abort the whole scan; they produce a single Error token and
// one record in the error collection.
type Builder interface {
	Date(ctx context.Context, year int, month int, day int) (any, error)
	Account(ctx context.Context, name string) (any, error)
	Currency(ctx context.Context, name string) (any, error)
	String(ctx context.Context, text string) (any, error)
	Number(ctx context.Context, text string) (any, error)
	Tag(ctx context.Context, name string) (any, error)
	Link(ctx context.Context, name string) (any, error)
	Key(ctx context.Context, name string) (any, error)
}
