// © 2024 Ledgerlang LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Semantic value types produced by the default builder.
type (
	Account  string
	Currency string
	Tag      string
	Link     string
	Key      string
)

// NewBuilder returns the default Builder. Dates become time.Time values in
// UTC, amounts become decimal.Decimal, and the remaining kinds become the
// typed string wrappers above.
func NewBuilder() Builder {
	return &builderLedger{}
}

type builderLedger struct{}

func (self *builderLedger) Date(ctx context.Context, year int, month int, day int) (any, error) {
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("invalid date: year %04d out of range", year)
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return nil, fmt.Errorf("invalid date: %04d-%02d-%02d", year, month, day)
	}
	return d, nil
}

func (self *builderLedger) Account(ctx context.Context, name string) (any, error) {
	for _, segment := range strings.Split(name, ":") {
		if segment == "" {
			return nil, fmt.Errorf("invalid account name: %s", name)
		}
	}
	return Account(name), nil
}

func (self *builderLedger) Currency(ctx context.Context, name string) (any, error) {
	return Currency(name), nil
}

func (self *builderLedger) String(ctx context.Context, text string) (any, error) {
	return text, nil
}

func (self *builderLedger) Number(ctx context.Context, text string) (any, error) {
	v, err := decimal.NewFromString(strings.ReplaceAll(text, ",", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", text, err)
	}
	return v, nil
}

func (self *builderLedger) Tag(ctx context.Context, name string) (any, error) {
	return Tag(name), nil
}

func (self *builderLedger) Link(ctx context.Context, name string) (any, error) {
	return Link(name), nil
}

func (self *builderLedger) Key(ctx context.Context, name string) (any, error) {
	return Key(name), nil
}
