package minid

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vectorUUID = "8108afcc-980f-438d-bdd7-51375fcf073a"
	vectorText = "473cr1y0ghbyc3m1yfbwvn3nxx"
)

// =============================================================================
// Construction
// =============================================================================

func TestFromUUID_Vector(t *testing.T) {
	id := FromUUID(uuid.MustParse(vectorUUID))
	assert.Equal(t, vectorText, id.String())
	assert.Equal(t, vectorUUID, id.UUID().String())
}

func TestFromUint64s(t *testing.T) {
	id := FromUint64s(0x438d980f8108afcc, 0x3a07cf5f3751d7bd)
	assert.Equal(t, vectorText, id.String())

	hi, lo := id.Uint64s()
	assert.Equal(t, uint64(0x438d980f8108afcc), hi)
	assert.Equal(t, uint64(0x3a07cf5f3751d7bd), lo)
}

func TestNew(t *testing.T) {
	a := New()
	b := New()
	assert.False(t, a.IsZero())
	assert.False(t, a.Equal(b))
	assert.Empty(t, a.Prefix())
	assert.Len(t, a.String(), Length)
}

func TestNewWithPrefix(t *testing.T) {
	id, err := NewWithPrefix("cust")
	require.NoError(t, err)
	assert.Equal(t, "cust", id.Prefix())

	s := id.String()
	assert.True(t, strings.HasPrefix(s, "cust_"))
	assert.Len(t, s, 31)
	assert.Equal(t, 31, id.Len())
}

func TestNewWithPrefix_Invalid(t *testing.T) {
	for _, prefix := range []string{"a_b", "has space", "caf\xc3\xa9", "\x00"} {
		_, err := NewWithPrefix(prefix)
		assert.ErrorIs(t, err, ErrInvalidPrefix, "prefix %q", prefix)
	}
}

func TestNewFromReader(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 16)

	a, err := NewFromReader(bytes.NewReader(seed), "ord")
	require.NoError(t, err)
	b, err := NewFromReader(bytes.NewReader(seed), "")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, "ord", a.Prefix())
	assert.Equal(t, "ord_"+b.String(), a.String())
	assert.Equal(t, uuid.Version(4), a.UUID().Version())
}

func TestNewFromReader_ReaderFails(t *testing.T) {
	_, err := NewFromReader(iotest.ErrReader(errors.New("boom")), "")
	require.Error(t, err)

	var idErr *Error
	require.True(t, errors.As(err, &idErr))
	assert.Equal(t, ErrCodeRandomSource, idErr.Code)
	assert.ErrorContains(t, errors.Unwrap(err), "boom")
}

func TestEmpty(t *testing.T) {
	assert.True(t, Empty().IsZero())
	assert.True(t, Nil.IsZero())
	assert.Equal(t, uuid.Nil, Nil.UUID())
	assert.Equal(t, strings.Repeat("0", 26), Empty().String())
}

// =============================================================================
// Prefix and equality
// =============================================================================

func TestZeroValueDropsPrefix(t *testing.T) {
	for _, prefix := range []string{"", "cust", "ord", "x"} {
		id, err := Nil.WithPrefix(prefix)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("0", 26), id.String(), "prefix %q", prefix)
		assert.Equal(t, 26, id.Len())
	}
}

func TestEqualIgnoresPrefix(t *testing.T) {
	base := FromUUID(uuid.MustParse(vectorUUID))
	cust, err := base.WithPrefix("cust")
	require.NoError(t, err)
	ord, err := base.WithPrefix("ord")
	require.NoError(t, err)

	assert.True(t, cust.Equal(ord))
	assert.True(t, cust.Equal(base))
	assert.Equal(t, 0, cust.Compare(ord))
	assert.NotEqual(t, cust.String(), ord.String())
	assert.Equal(t, base.String(), cust.WithoutPrefix().String())
}

func TestWithPrefix_Invalid(t *testing.T) {
	_, err := New().WithPrefix("a_b")
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b ID
		want int
	}{
		{"equal", FromUint64s(1, 2), FromUint64s(1, 2), 0},
		{"hi less", FromUint64s(1, 9), FromUint64s(2, 0), -1},
		{"hi greater", FromUint64s(3, 0), FromUint64s(2, 9), 1},
		{"lo less", FromUint64s(1, 1), FromUint64s(1, 2), -1},
		{"lo greater", FromUint64s(1, 3), FromUint64s(1, 2), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}
