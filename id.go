package minid

import (
	"io"

	"github.com/google/uuid"
	"github.com/lychee-technology/minid/internal"
)

const (
	// Length is the number of characters in an unprefixed identifier.
	Length = internal.Length
	// Separator joins the prefix and the encoded value.
	Separator = internal.Separator
	// Alphabet lists the canonical symbols, in value order.
	Alphabet = internal.Alphabet
)

// ID is a 128-bit identifier with an optional prefix.
//
// Two IDs are equal when their 128-bit values are equal; the prefix only
// changes the text form. Use Equal or Compare rather than ==, which also
// compares prefixes.
//
// The zero value encodes to 26 '0' characters and never carries a prefix in
// its text form, even when one was attached.
type ID struct {
	hi     uint64
	lo     uint64
	prefix string
}

// Nil is the all-zero ID.
var Nil ID

// Empty returns the all-zero ID.
func Empty() ID { return Nil }

// New returns an unprefixed ID backed by a random (version 4) UUID.
func New() ID {
	return FromUUID(uuid.New())
}

// NewWithPrefix returns a random ID carrying prefix.
func NewWithPrefix(prefix string) (ID, error) {
	return New().WithPrefix(prefix)
}

// NewFromReader returns an ID whose value is a version 4 UUID drawn from r.
// An empty prefix yields an unprefixed ID.
func NewFromReader(r io.Reader, prefix string) (ID, error) {
	if prefix != "" && !internal.ValidPrefix(prefix) {
		return Nil, NewInvalidPrefixError(prefix)
	}

	u, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return Nil, NewError(ErrorTypeGenerate, ErrCodeRandomSource, "failed to read random bytes").WithCause(err)
	}

	id := FromUUID(u)
	id.prefix = prefix
	return id, nil
}

// FromUUID wraps u without a prefix.
func FromUUID(u uuid.UUID) ID {
	hi, lo := internal.FromUUID(u)
	return ID{hi: hi, lo: lo}
}

// FromUint64s wraps the 128-bit value hi<<64 | lo without a prefix.
func FromUint64s(hi, lo uint64) ID {
	return ID{hi: hi, lo: lo}
}

// WithPrefix returns a copy of id carrying prefix. An empty prefix removes it.
func (id ID) WithPrefix(prefix string) (ID, error) {
	if prefix != "" && !internal.ValidPrefix(prefix) {
		return Nil, NewInvalidPrefixError(prefix)
	}
	id.prefix = prefix
	return id, nil
}

// WithoutPrefix returns a copy of id with no prefix.
func (id ID) WithoutPrefix() ID {
	id.prefix = ""
	return id
}

// UUID returns the UUID the value corresponds to.
func (id ID) UUID() uuid.UUID {
	return internal.ToUUID(id.hi, id.lo)
}

// Uint64s returns the most and least significant halves of the value.
func (id ID) Uint64s() (hi, lo uint64) {
	return id.hi, id.lo
}

// Prefix returns the attached prefix, or "".
func (id ID) Prefix() string { return id.prefix }

// IsZero reports whether the value is all zero bits.
func (id ID) IsZero() bool { return id.hi|id.lo == 0 }

// Equal compares the 128-bit values, ignoring prefixes.
func (id ID) Equal(other ID) bool {
	return id.hi == other.hi && id.lo == other.lo
}

// Compare orders IDs by value and returns -1, 0 or 1. Prefixes are ignored.
func (id ID) Compare(other ID) int {
	switch {
	case id.hi < other.hi:
		return -1
	case id.hi > other.hi:
		return 1
	case id.lo < other.lo:
		return -1
	case id.lo > other.lo:
		return 1
	}
	return 0
}

// Len returns the length of the text form.
func (id ID) Len() int {
	if id.IsZero() {
		return Length
	}
	return internal.EncodedLen(id.prefix)
}

// String returns the canonical text form.
func (id ID) String() string {
	return internal.Encode(id.hi, id.lo, id.prefix)
}
