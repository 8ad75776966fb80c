package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnknownEnumError is returned when the server sends an enum value this
// library does not know about. Enums are closed: adding a variant is a
// library change.
type UnknownEnumError struct {
	Type  string
	Value string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Type, e.Value)
}

type enumSet[T ~string] map[T]struct{}

func newEnumSet[T ~string](values ...T) enumSet[T] {
	set := make(enumSet[T], len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (s enumSet[T]) contains(v T) bool {
	_, ok := s[v]
	return ok
}

// unmarshalEnum decodes a JSON string into dst, rejecting values outside known
func unmarshalEnum[T ~string](data []byte, dst *T, known enumSet[T], typeName string) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s must be a JSON string: %w", typeName, err)
	}

	v := T(raw)
	if !known.contains(v) {
		return &UnknownEnumError{Type: typeName, Value: raw}
	}

	*dst = v
	return nil
}

// parseEnum parses a case-insensitive name, used by the CLI to turn flags into enums
func parseEnum[T ~string](s string, known enumSet[T], typeName string) (T, error) {
	v := T(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	if !known.contains(v) {
		return "", &UnknownEnumError{Type: typeName, Value: s}
	}
	return v, nil
}
