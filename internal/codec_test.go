package internal

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vectorText = "473cr1y0ghbyc3m1yfbwvn3nxx"
	vectorHi   = uint64(0x438d980f8108afcc)
	vectorLo   = uint64(0x3a07cf5f3751d7bd)
)

// =============================================================================
// Encode
// =============================================================================

func TestEncode_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		hi   uint64
		lo   uint64
		want string
	}{
		{"vector", vectorHi, vectorLo, vectorText},
		{"ones", 1, 1, "00000000000010000000000001"},
		{"low bit", 0, 1, "00000000000000000000000001"},
		{"top bit", 1 << 63, 0, "80000000000000000000000000"},
		{"max", math.MaxUint64, math.MaxUint64, "fzzzzzzzzzzzzfzzzzzzzzzzzz"},
		{"mixed", 0x0123456789abcdef, 0xfedcba9876543210, "028t5cy4tqkfffxq5tk1v58cgg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.hi, tt.lo, ""))
		})
	}
}

func TestEncode_ZeroIgnoresPrefix(t *testing.T) {
	assert.Equal(t, strings.Repeat("0", Length), Encode(0, 0, ""))
	assert.Equal(t, ZeroString, Encode(0, 0, "cust"))
}

func TestEncode_Prefix(t *testing.T) {
	got := Encode(vectorHi, vectorLo, "cust")
	assert.Equal(t, "cust_"+vectorText, got)
	assert.Len(t, got, EncodedLen("cust"))
}

func TestEncode_SingleAllocation(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = Encode(vectorHi, vectorLo, "cust")
	})
	assert.LessOrEqual(t, allocs, 1.0)

	allocs = testing.AllocsPerRun(100, func() {
		_ = Encode(vectorHi, vectorLo, "")
	})
	assert.LessOrEqual(t, allocs, 1.0)
}

func TestAppendEncode(t *testing.T) {
	buf := []byte("id=")
	buf = AppendEncode(buf, vectorHi, vectorLo, "cust")
	assert.Equal(t, "id=cust_"+vectorText, string(buf))

	buf = AppendEncode(nil, 0, 0, "cust")
	assert.Equal(t, ZeroString, string(buf))

	buf = AppendEncode(make([]byte, 0, 64), vectorHi, vectorLo, "")
	assert.Equal(t, vectorText, string(buf))
}

// =============================================================================
// Decode
// =============================================================================

func TestDecodeBlock_OverflowTruncates(t *testing.T) {
	// 'z' is 31: its top bit shifts out of the 64-bit register.
	v, bad := DecodeBlock("z000000000000")
	assert.Equal(t, -1, bad)
	assert.Equal(t, uint64(0xF000000000000000), v)

	// 'g' is 16: only the overflowed bit is set, so the block is zero.
	v, bad = DecodeBlock("g000000000000")
	assert.Equal(t, -1, bad)
	assert.Equal(t, uint64(0), v)
}

func TestDecode_Vector(t *testing.T) {
	d, err := Decode(vectorText)
	require.NoError(t, err)
	assert.Equal(t, vectorHi, d.Hi)
	assert.Equal(t, vectorLo, d.Lo)
	assert.Empty(t, d.Prefix)
}

func TestDecode_DetectsPrefix(t *testing.T) {
	d, err := Decode("cust_" + vectorText)
	require.NoError(t, err)
	assert.Equal(t, vectorHi, d.Hi)
	assert.Equal(t, vectorLo, d.Lo)
	assert.Equal(t, "cust", d.Prefix)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind ErrorKind
		wantPos  int
	}{
		{"too short", "473cr1y", KindInvalidLength, -1},
		{"too long", "473cr1y0ghbyc3m1yfbwvn3nxx0ghbyc3m1yfbwvn3nxx", KindInvalidLength, -1},
		{"prefix with short body", "ord_cr1y0ghbyc3m1yfbwvn3nxx", KindInvalidLength, -1},
		{"empty", "", KindInvalidLength, -1},
		{"separator first", "_73cr1y0ghbyc3m1yfbwvn3nxx", KindInvalidCharacter, 0},
		{"invalid letter", "473cr1y0ghbyc3m1yfbwvn3nxu", KindInvalidCharacter, 25},
		{"invalid in first block", "473-r1y0ghbyc3m1yfbwvn3nxx", KindInvalidCharacter, 3},
		{"non ascii", "473cr1y0ghbyc3m1yfbwvn3n\xc3\xa9", KindInvalidCharacter, 24},
		{"invalid after prefix", "cust_473cr1y0ghbyc3m1yfbwvn3nx!", KindInvalidCharacter, 30},
		{"control byte in prefix", "cu\tt_" + vectorText, KindInvalidPrefix, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.text)
			require.Error(t, err)

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.wantKind, de.Kind)
			assert.Equal(t, tt.wantPos, de.Position)
		})
	}
}

func TestDecodeWithPrefix(t *testing.T) {
	d, err := DecodeWithPrefix("cust_"+vectorText, "cust")
	require.NoError(t, err)
	assert.Equal(t, vectorHi, d.Hi)
	assert.Equal(t, vectorLo, d.Lo)
	assert.Equal(t, "cust", d.Prefix)

	d, err = DecodeWithPrefix(vectorText, "")
	require.NoError(t, err)
	assert.Equal(t, vectorHi, d.Hi)
	assert.Empty(t, d.Prefix)
}

func TestDecodeWithPrefix_Errors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		prefix   string
		wantKind ErrorKind
	}{
		{"other prefix", "foo_" + vectorText, "cust", KindPrefixMismatch},
		{"no separator", "cust" + vectorText, "cust", KindPrefixMismatch},
		{"prefix only", "cust", "cust", KindPrefixMismatch},
		{"longer prefix in text", "custo_" + vectorText, "cust", KindPrefixMismatch},
		{"short body", "cust_473cr1y", "cust", KindInvalidLength},
		{"unprefixed wrong length", "cust_" + vectorText, "", KindInvalidLength},
		{"bad expected prefix", "a_b_" + vectorText, "a_b", KindInvalidPrefix},
		{"bad character", "cust_" + vectorText[:25] + "u", "cust", KindInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeWithPrefix(tt.text, tt.prefix)
			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.wantKind, de.Kind)
		})
	}
}

func TestDecode_ClonesDetectedPrefix(t *testing.T) {
	text := "cust_" + vectorText
	d, err := Decode(text)
	require.NoError(t, err)
	assert.Equal(t, "cust", d.Prefix)
	assert.True(t, unsafe.StringData(text) != unsafe.StringData(d.Prefix))
}

func TestSplitPrefix(t *testing.T) {
	tests := []struct {
		text       string
		wantPrefix string
		wantBody   string
	}{
		{"cust_abc", "cust", "abc"},
		{"abc", "", "abc"},
		{"_abc", "", "_abc"},
		{"a_b_c", "a", "b_c"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			prefix, body := SplitPrefix(tt.text)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestValidPrefix(t *testing.T) {
	assert.True(t, ValidPrefix("cust"))
	assert.True(t, ValidPrefix("a-b.c"))
	assert.False(t, ValidPrefix(""))
	assert.False(t, ValidPrefix("a_b"))
	assert.False(t, ValidPrefix("with space"))
	assert.False(t, ValidPrefix("caf\xc3\xa9"))
}

func TestDecodeError_Error(t *testing.T) {
	err := &DecodeError{Kind: KindInvalidLength, Expected: 26, Actual: 7}
	assert.Equal(t, "invalid length: expected 26 characters, got 7", err.Error())

	err = &DecodeError{Kind: KindInvalidCharacter, Position: 3}
	assert.Equal(t, "invalid character at position 3", err.Error())

	err = &DecodeError{Kind: KindPrefixMismatch, Position: -1}
	assert.Equal(t, "prefix mismatch", err.Error())
}
