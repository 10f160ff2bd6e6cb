package minid

import (
	"github.com/lychee-technology/minid/internal"
)

// Decode decodes s, detecting a prefix at the first '_'.
// Failures are *Error values matching ErrInvalidLength, ErrInvalidCharacter
// or ErrInvalidPrefix.
func Decode(s string) (ID, error) {
	d, err := internal.Decode(s)
	if err != nil {
		prefix, _ := internal.SplitPrefix(s)
		return Nil, fromDecodeError(s, prefix, err)
	}
	return ID{hi: d.Hi, lo: d.Lo, prefix: d.Prefix}, nil
}

// DecodeWithPrefix decodes s, which must start with prefix and '_'.
// A mismatching prefix fails with ErrPrefixMismatch before the value is decoded.
func DecodeWithPrefix(s, prefix string) (ID, error) {
	d, err := internal.DecodeWithPrefix(s, prefix)
	if err != nil {
		return Nil, fromDecodeError(s, prefix, err)
	}
	return ID{hi: d.Hi, lo: d.Lo, prefix: d.Prefix}, nil
}

// TryParse decodes s and reports whether it succeeded.
func TryParse(s string) (ID, bool) {
	id, err := Decode(s)
	return id, err == nil
}

// TryParseWithPrefix decodes s with a known prefix and reports whether it succeeded.
func TryParseWithPrefix(s, prefix string) (ID, bool) {
	id, err := DecodeWithPrefix(s, prefix)
	return id, err == nil
}

// Parse decodes s. Any failure is reported as ErrInvalidFormat.
func Parse(s string) (ID, error) {
	id, err := Decode(s)
	if err != nil {
		return Nil, NewInvalidFormatError(s, err)
	}
	return id, nil
}

// ParseWithPrefix decodes s with a known prefix. Any failure is reported as ErrInvalidFormat.
func ParseWithPrefix(s, prefix string) (ID, error) {
	id, err := DecodeWithPrefix(s, prefix)
	if err != nil {
		return Nil, NewInvalidFormatError(s, err)
	}
	return id, nil
}

// MustParse is like Parse but panics if s cannot be decoded.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsValid reports whether s decodes.
func IsValid(s string) bool {
	_, ok := TryParse(s)
	return ok
}

// ValidatePrefix returns an error if prefix cannot be attached to an ID.
func ValidatePrefix(prefix string) error {
	if !internal.ValidPrefix(prefix) {
		return NewInvalidPrefixError(prefix)
	}
	return nil
}
