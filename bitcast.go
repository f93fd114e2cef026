// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

import "fmt"
import "reflect"

import "github.com/clausecker/bitops/internal/fallback"

// BitCast returns a value of type To with the same bit pattern as src.
// No conversion takes place; the bytes of src are copied as they are.
//
// To and From must have the same size and must not contain pointers,
// strings, slices, maps, channels, functions, or interfaces.  From
// must not have padding bytes, as their contents are unspecified, and
// To must not contain bools, which only have two valid bit patterns.
// BitCast panics with a *CastError if these conditions are not met.
func BitCast[To, From any](src From) To {
	if err := checkCast(reflect.TypeOf((*To)(nil)).Elem(), reflect.TypeOf((*From)(nil)).Elem()); err != nil {
		panic(err)
	}

	return fallback.Reinterpret[To](src)
}

// CastError is the panic value of BitCast for unsuitable types.
type CastError struct {
	To, From reflect.Type
	Reason   string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("bitops: cannot cast %v to %v: %s", e.From, e.To, e.Reason)
}

// RuntimeError marks CastError as a runtime.Error.
func (e *CastError) RuntimeError() {}

func checkCast(to, from reflect.Type) *CastError {
	var reason string

	switch {
	case to.Size() != from.Size():
		reason = fmt.Sprintf("size %d differs from size %d", from.Size(), to.Size())
	case !isPlain(from):
		reason = "source contains pointers"
	case !isPlain(to):
		reason = "destination contains pointers"
	case hasPadding(from):
		reason = "source has padding bytes"
	case hasBool(to):
		reason = "destination contains bool"
	default:
		return nil
	}

	return &CastError{To: to, From: from, Reason: reason}
}

// IsPlain reports whether T consists of numbers only, possibly
// arranged in arrays and structs.  Values of such types can be copied
// byte by byte.
func IsPlain[T any]() bool {
	return isPlain(reflect.TypeOf((*T)(nil)).Elem())
}

// HasPadding reports whether values of T contain bytes that are not
// part of any field, e.g. for alignment.
func HasPadding[T any]() bool {
	return hasPadding(reflect.TypeOf((*T)(nil)).Elem())
}

func isPlain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true

	case reflect.Array:
		return t.Len() == 0 || isPlain(t.Elem())

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isPlain(t.Field(i).Type) {
				return false
			}
		}

		return true

	default:
		return false
	}
}

func hasPadding(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return t.Len() > 0 && hasPadding(t.Elem())

	case reflect.Struct:
		var end uintptr
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Offset != end || hasPadding(f.Type) {
				return true
			}

			end += f.Type.Size()
		}

		// trailing padding, including that after a final zero size field
		return end != t.Size()

	default:
		return false
	}
}

func hasBool(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool:
		return true

	case reflect.Array:
		return t.Len() > 0 && hasBool(t.Elem())

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasBool(t.Field(i).Type) {
				return true
			}
		}

		return false

	default:
		return false
	}
}
