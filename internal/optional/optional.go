// © 2024 Ledgerlang LLC
//
// SPDX-License-Identifier: Apache-2.0

package optional

// Optional carries either a value of T or nothing. The zero value is the
// empty Optional.
type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

func (self Optional[T]) Value() T {
	return self.value
}

// OrElse returns the contained value when present and v otherwise.
func (self Optional[T]) OrElse(v T) T {
	if self.present {
		return self.value
	}
	return v
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}
