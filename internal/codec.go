package internal

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// Length is the number of characters in an encoded 128-bit value.
	Length = 26
	// Separator joins a prefix and the encoded value.
	Separator = '_'

	blockLength = Length / 2
)

// ZeroString is the encoding of the all-zero value. It never carries a prefix.
const ZeroString = "00000000000000000000000000"

// ErrorKind classifies decode failures.
type ErrorKind int

const (
	KindInvalidLength ErrorKind = iota + 1
	KindPrefixMismatch
	KindInvalidCharacter
	KindInvalidPrefix
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidLength:
		return "invalid length"
	case KindPrefixMismatch:
		return "prefix mismatch"
	case KindInvalidCharacter:
		return "invalid character"
	case KindInvalidPrefix:
		return "invalid prefix"
	default:
		return "unknown"
	}
}

// DecodeError describes why a string could not be decoded.
type DecodeError struct {
	Kind ErrorKind
	// Position is the byte offset of the offending character, or -1.
	Position int
	// Expected is the required total length for KindInvalidLength.
	Expected int
	Actual   int
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindInvalidLength:
		return fmt.Sprintf("%s: expected %d characters, got %d", e.Kind, e.Expected, e.Actual)
	case KindInvalidCharacter:
		return fmt.Sprintf("%s at position %d", e.Kind, e.Position)
	default:
		return e.Kind.String()
	}
}

// Decoded is the result of a successful decode.
type Decoded struct {
	Hi     uint64
	Lo     uint64
	Prefix string
}

// EncodedLen returns the length of the encoding of a non-zero value.
func EncodedLen(prefix string) int {
	if prefix == "" {
		return Length
	}
	return len(prefix) + 1 + Length
}

// EncodeBlock writes the 13 character encoding of v into dst.
// The first character carries the top 4 bits, the remaining twelve carry 5 bits each.
func EncodeBlock(dst []byte, v uint64) {
	_ = dst[blockLength-1]

	dst[0] = Alphabet[v>>60]
	v <<= 4

	for i := 1; i < blockLength; i++ {
		dst[i] = Alphabet[v>>59]
		v <<= 5
	}
}

// EncodeBody writes hi then lo into dst.
func EncodeBody(dst *[Length]byte, hi, lo uint64) {
	EncodeBlock(dst[:blockLength], hi)
	EncodeBlock(dst[blockLength:], lo)
}

// Encode returns the text form of the value hi:lo. The zero value ignores prefix.
// The result is built with a single allocation.
func Encode(hi, lo uint64, prefix string) string {
	if hi|lo == 0 {
		return ZeroString
	}

	var body [Length]byte
	EncodeBody(&body, hi, lo)

	if prefix == "" {
		return string(body[:])
	}

	var b strings.Builder
	b.Grow(EncodedLen(prefix))
	b.WriteString(prefix)
	b.WriteByte(Separator)
	b.Write(body[:])
	return b.String()
}

// AppendEncode appends the text form of hi:lo to dst.
func AppendEncode(dst []byte, hi, lo uint64, prefix string) []byte {
	if hi|lo == 0 {
		return append(dst, ZeroString...)
	}

	dst = slices.Grow(dst, EncodedLen(prefix))
	if prefix != "" {
		dst = append(dst, prefix...)
		dst = append(dst, Separator)
	}

	n := len(dst)
	dst = dst[:n+Length]
	EncodeBody((*[Length]byte)(dst[n:]), hi, lo)
	return dst
}

// DecodeBlock folds the 13 characters of src into a 64-bit value.
// Every character contributes 5 bits, so the top bit of the first character
// shifts out of the register; canonical encodings never set it.
// It returns the index of the first invalid character, or -1.
func DecodeBlock(src string) (uint64, int) {
	var r uint64
	for i := 0; i < len(src); i++ {
		v, ok := ValueFor(src[i])
		if !ok {
			return 0, i
		}
		r = r<<5 | uint64(v)
	}
	return r, -1
}

// SplitPrefix splits text at the first separator. A separator at index 0,
// or none at all, means there is no prefix.
func SplitPrefix(text string) (prefix, body string) {
	i := strings.IndexByte(text, Separator)
	if i <= 0 {
		return "", text
	}
	return text[:i], text[i+1:]
}

// ValidPrefix reports whether p can be used as a prefix: non-empty printable
// ASCII without the separator.
func ValidPrefix(p string) bool {
	if p == "" {
		return false
	}
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c < 0x21 || c > 0x7E || c == Separator {
			return false
		}
	}
	return true
}

// Decode decodes text, detecting an optional prefix.
// The detected prefix is copied so the result does not pin text.
func Decode(text string) (Decoded, error) {
	prefix, body := SplitPrefix(text)

	if want := EncodedLen(prefix); len(text) != want {
		return Decoded{}, &DecodeError{Kind: KindInvalidLength, Position: -1, Expected: want, Actual: len(text)}
	}

	if prefix != "" && !ValidPrefix(prefix) {
		return Decoded{}, &DecodeError{Kind: KindInvalidPrefix, Position: -1}
	}

	hi, lo, err := decodeBody(body, len(text)-Length)
	if err != nil {
		return Decoded{}, err
	}

	return Decoded{Hi: hi, Lo: lo, Prefix: strings.Clone(prefix)}, nil
}

// DecodeWithPrefix decodes text that must start with prefix and the separator.
// An empty prefix behaves like Decode on an unprefixed string.
func DecodeWithPrefix(text, prefix string) (Decoded, error) {
	if prefix == "" {
		if len(text) != Length {
			return Decoded{}, &DecodeError{Kind: KindInvalidLength, Position: -1, Expected: Length, Actual: len(text)}
		}
		hi, lo, err := decodeBody(text, 0)
		if err != nil {
			return Decoded{}, err
		}
		return Decoded{Hi: hi, Lo: lo}, nil
	}

	if !ValidPrefix(prefix) {
		return Decoded{}, &DecodeError{Kind: KindInvalidPrefix, Position: -1}
	}

	n := len(prefix)
	if len(text) <= n || text[:n] != prefix || text[n] != Separator {
		return Decoded{}, &DecodeError{Kind: KindPrefixMismatch, Position: -1}
	}

	if want := EncodedLen(prefix); len(text) != want {
		return Decoded{}, &DecodeError{Kind: KindInvalidLength, Position: -1, Expected: want, Actual: len(text)}
	}

	hi, lo, err := decodeBody(text[n+1:], n+1)
	if err != nil {
		return Decoded{}, err
	}

	return Decoded{Hi: hi, Lo: lo, Prefix: prefix}, nil
}

func decodeBody(body string, offset int) (hi, lo uint64, err error) {
	hi, bad := DecodeBlock(body[:blockLength])
	if bad >= 0 {
		return 0, 0, &DecodeError{Kind: KindInvalidCharacter, Position: offset + bad}
	}

	lo, bad = DecodeBlock(body[blockLength:])
	if bad >= 0 {
		return 0, 0, &DecodeError{Kind: KindInvalidCharacter, Position: offset + blockLength + bad}
	}

	return hi, lo, nil
}
