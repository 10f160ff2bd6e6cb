package minid

import (
	"errors"
	"fmt"

	"github.com/lychee-technology/minid/internal"
)

// ErrorType represents the category of error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeFormat     ErrorType = "format"
	ErrorTypeGenerate   ErrorType = "generate"
)

// Error codes
const (
	ErrCodeInvalidLength    = "INVALID_LENGTH"
	ErrCodePrefixMismatch   = "PREFIX_MISMATCH"
	ErrCodeInvalidCharacter = "INVALID_CHARACTER"
	ErrCodeInvalidPrefix    = "INVALID_PREFIX"
	ErrCodeInvalidFormat    = "INVALID_FORMAT"
	ErrCodeRandomSource     = "RANDOM_SOURCE"
)

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidLength    = errors.New("minid: invalid length")
	ErrPrefixMismatch   = errors.New("minid: prefix mismatch")
	ErrInvalidCharacter = errors.New("minid: invalid character")
	ErrInvalidPrefix    = errors.New("minid: invalid prefix")
	ErrInvalidFormat    = errors.New("minid: invalid format")
)

var sentinelByCode = map[string]error{
	ErrCodeInvalidLength:    ErrInvalidLength,
	ErrCodePrefixMismatch:   ErrPrefixMismatch,
	ErrCodeInvalidCharacter: ErrInvalidCharacter,
	ErrCodeInvalidPrefix:    ErrInvalidPrefix,
	ErrCodeInvalidFormat:    ErrInvalidFormat,
}

// Error is the error returned by decoding and construction.
type Error struct {
	Type    ErrorType `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Input   string    `json:"input,omitempty"`
	Prefix  string    `json:"prefix,omitempty"`
	// Position is the byte offset of an invalid character, or -1.
	Position int   `json:"position"`
	Cause    error `json:"-"`
}

func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("[%s:%s] %q at position %d: %s", e.Type, e.Code, e.Input, e.Position, e.Message)
	}
	if e.Input != "" {
		return fmt.Sprintf("[%s:%s] %q: %s", e.Type, e.Code, e.Input, e.Message)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel that corresponds to the error code.
func (e *Error) Is(target error) bool {
	sentinel, ok := sentinelByCode[e.Code]
	return ok && sentinel == target
}

// WithCause adds a cause to an Error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithInput records the text that failed
func (e *Error) WithInput(input string) *Error {
	e.Input = input
	return e
}

// NewError creates a new Error
func NewError(errorType ErrorType, code, message string) *Error {
	return &Error{
		Type:     errorType,
		Code:     code,
		Message:  message,
		Position: -1,
	}
}

// NewInvalidPrefixError creates an error for a prefix that cannot be used
func NewInvalidPrefixError(prefix string) *Error {
	e := NewError(ErrorTypeValidation, ErrCodeInvalidPrefix,
		"prefix must be non-empty printable ASCII without '_'")
	e.Prefix = prefix
	return e
}

// NewInvalidFormatError wraps a decode failure in the generic format error
func NewInvalidFormatError(input string, cause error) *Error {
	return NewError(ErrorTypeFormat, ErrCodeInvalidFormat, "the identifier format is invalid").
		WithInput(input).
		WithCause(cause)
}

// fromDecodeError translates codec failures into *Error.
func fromDecodeError(input, prefix string, err error) error {
	var de *internal.DecodeError
	if !errors.As(err, &de) {
		return NewInvalidFormatError(input, err)
	}

	var e *Error
	switch de.Kind {
	case internal.KindInvalidLength:
		e = NewError(ErrorTypeFormat, ErrCodeInvalidLength,
			fmt.Sprintf("expected %d characters, got %d", de.Expected, de.Actual))
	case internal.KindPrefixMismatch:
		e = NewError(ErrorTypeFormat, ErrCodePrefixMismatch,
			fmt.Sprintf("expected prefix %q", prefix))
	case internal.KindInvalidCharacter:
		e = NewError(ErrorTypeFormat, ErrCodeInvalidCharacter, "character is not in the alphabet")
		e.Position = de.Position
	case internal.KindInvalidPrefix:
		e = NewInvalidPrefixError(prefix)
	default:
		return NewInvalidFormatError(input, err)
	}

	e.Input = input
	e.Cause = err
	return e
}
