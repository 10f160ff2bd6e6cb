package minid

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/google/jsonschema-go/jsonschema"
)

const (
	// bodyPattern accepts every letter but u, so aliases and uppercase pass.
	bodyPattern   = "[0-9A-TV-Za-tv-z]{26}"
	prefixPattern = "[!-^`-~]+"
	zeroPattern   = "0{26}"
)

// JSONSchema describes the text form of an ID as a JSON Schema string.
// With a prefix, values must carry exactly that prefix, except the zero ID
// which is always written without one. Without a prefix any prefix is allowed.
func JSONSchema(prefix string) (*jsonschema.Schema, error) {
	schema := &jsonschema.Schema{
		Type:        "string",
		Title:       "minid",
		Description: "URL-safe, case-insensitive encoding of a 128-bit identifier",
		MinLength:   intPtr(Length),
	}

	if prefix == "" {
		schema.Pattern = fmt.Sprintf("^(?:%s_)?%s$", prefixPattern, bodyPattern)
		return schema, nil
	}

	if err := ValidatePrefix(prefix); err != nil {
		return nil, err
	}

	schema.Pattern = fmt.Sprintf("^(?:%s_%s|%s)$", regexp.QuoteMeta(prefix), bodyPattern, zeroPattern)
	schema.MaxLength = intPtr(len(prefix) + 1 + Length)
	return schema, nil
}

// ValidateJSON validates a JSON document against JSONSchema(prefix).
// []byte and string values are unmarshalled first; other values are validated as is.
func ValidateJSON(jsonData any, prefix string) error {
	var instance any
	switch d := jsonData.(type) {
	case []byte:
		if err := json.Unmarshal(d, &instance); err != nil {
			return fmt.Errorf("failed to unmarshal JSON data: %w", err)
		}
	case string:
		if err := json.Unmarshal([]byte(d), &instance); err != nil {
			return fmt.Errorf("failed to unmarshal JSON data: %w", err)
		}
	case ID:
		instance = d.String()
	default:
		instance = d
	}

	schema, err := JSONSchema(prefix)
	if err != nil {
		return err
	}

	resolved, err := schema.Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		return fmt.Errorf("failed to resolve JSON schema: %w", err)
	}

	if err := resolved.Validate(instance); err != nil {
		return fmt.Errorf("JSON validation failed: %w", err)
	}

	return nil
}

func intPtr(v int) *int { return &v }
