// Package ptr holds small generic helpers for the optional (pointer) fields
// used by the config layer.
package ptr

import "slices"

// Clone returns a fresh pointer holding *x, or nil when x is nil.
func Clone[T any](x *T) *T {
	if x == nil {
		return nil
	}

	return FromValue(*x)
}

// CloneOr clones the first non-nil of x and fallback.
func CloneOr[T any](x, fallback *T) *T {
	if x != nil {
		return Clone(x)
	}

	return Clone(fallback)
}

// CloneSlice copies x. A nil slice stays nil so "unset" survives the copy.
func CloneSlice[T any](x []T) []T {
	return slices.Clone(x)
}

// CloneSliceOr copies x, or fallback when x is nil. An empty but non-nil x
// still wins.
func CloneSliceOr[T any](x, fallback []T) []T {
	if x != nil {
		return slices.Clone(x)
	}

	return slices.Clone(fallback)
}

func FromValue[T any](v T) *T {
	return &v
}

// FromPtrOr dereferences x, or returns v when x is nil.
func FromPtrOr[T any](x *T, v T) T {
	if x != nil {
		return *x
	}

	return v
}
