// Package convert holds the field converters shared by every wire record: small,
// pure functions that validate one raw reply value into its domain type.
//
// Converters never panic. A malformed value is reported as an error that matches
// one of the sentinel errors below via errors.Is, and keeps the low-level cause.
package convert

import (
	"errors"
	"fmt"

	"github.com/LeJamon/gocorepc/internal/amount"
)

var (
	ErrOutOfRange            = amount.ErrOutOfRange
	ErrInvalidDecimal        = amount.ErrInvalidDecimal
	ErrInvalidHex            = errors.New("invalid hex")
	ErrWrongLength           = errors.New("wrong length")
	ErrInvalidAddressSyntax  = errors.New("invalid address syntax")
	ErrUnknownVariant        = errors.New("unknown variant")
	ErrInvalidScript         = errors.New("invalid script")
	ErrInvalidTransaction    = errors.New("invalid transaction")
	ErrInvalidPublicKey      = errors.New("invalid public key")
	ErrInvalidPrivateKey     = errors.New("invalid private key")
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
	ErrInvalidWitnessProgram = errors.New("invalid witness program")
)

// WrongLengthError reports decoded data whose byte count does not match the
// fixed size of its target.
type WrongLengthError struct {
	Want int
	Got  int
}

func (e *WrongLengthError) Error() string {
	return fmt.Sprintf("%s: want %d bytes, got %d", ErrWrongLength, e.Want, e.Got)
}

func (e *WrongLengthError) Is(target error) bool {
	return target == ErrWrongLength
}

// UnknownVariantError reports an enumerated string outside the documented set.
type UnknownVariantError struct {
	Raw string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownVariant, e.Raw)
}

func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// FieldError is the conversion error of one wire record. F is a type private to
// that record whose values name its fallible fields, so each record gets its own
// error type and two fields of the same primitive type are never confused.
type FieldError[F fmt.Stringer] struct {
	Field F
	Err   error
}

func (e *FieldError[F]) Error() string {
	return fmt.Sprintf("conversion of the `%s` field failed: %v", e.Field, e.Err)
}

func (e *FieldError[F]) Unwrap() error {
	return e.Err
}

// Field tags err with the field it came from.
func Field[F fmt.Stringer](field F, err error) error {
	return &FieldError[F]{Field: field, Err: err}
}

// IndexError locates a failure inside a sequence field.
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// AtIndex wraps the failure of the i-th element of a sequence.
func AtIndex(i int, err error) error {
	return &IndexError{Index: i, Err: err}
}

// KeyError locates a failure inside a mapping field.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %q: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// AtKey wraps the failure of the entry under key of a mapping.
func AtKey(key string, err error) error {
	return &KeyError{Key: key, Err: err}
}

// SequenceError is the conversion error of a record that is itself a JSON array.
// R is that record's type and only serves to give each such record its own
// error type.
type SequenceError[R any] struct {
	Index int
	Err   error
}

func (e *SequenceError[R]) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *SequenceError[R]) Unwrap() error {
	return e.Err
}

// AtItem wraps the failure of the i-th item of the sequence record R.
func AtItem[R any](i int, err error) error {
	return &SequenceError[R]{Index: i, Err: err}
}
