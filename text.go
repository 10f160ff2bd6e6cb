package minid

import (
	"database/sql/driver"
	"fmt"

	"github.com/lychee-technology/minid/internal"
)

// AppendText implements [encoding.TextAppender].
func (id ID) AppendText(b []byte) ([]byte, error) {
	return internal.AppendEncode(b, id.hi, id.lo, id.prefix), nil
}

// MarshalText implements [encoding.TextMarshaler]. encoding/json uses it to
// write the ID as a string field.
func (id ID) MarshalText() ([]byte, error) {
	return id.AppendText(make([]byte, 0, id.Len()))
}

// UnmarshalText implements [encoding.TextUnmarshaler], detecting the prefix.
func (id *ID) UnmarshalText(b []byte) error {
	decoded, err := Decode(string(b))
	if err != nil {
		return err
	}
	*id = decoded
	return nil
}

// Set implements [flag.Value].
func (id *ID) Set(s string) error {
	return id.UnmarshalText([]byte(s))
}

// Scan implements [database/sql.Scanner]. NULL scans as Nil.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = Nil
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		return id.UnmarshalText(v)
	default:
		return NewError(ErrorTypeValidation, ErrCodeInvalidFormat,
			fmt.Sprintf("cannot scan %T into minid.ID", src))
	}
}

// Value implements [database/sql/driver.Valuer].
func (id ID) Value() (driver.Value, error) {
	return id.String(), nil
}
