package model

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

// Decode unmarshals a wire payload into v and checks it.
//
// A field is required unless it is a pointer or tagged omitempty. Required
// fields must be present in the payload; a null list counts as present and
// decodes empty, any other null counts as missing. The validate tags are
// checked afterwards.
func Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	collectMissing(reflect.TypeOf(v), raw, "", &missing)
	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}

	return Validate(v)
}

func collectMissing(t reflect.Type, raw any, path string, missing *[]string) {
	if t == nil || raw == nil {
		return
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	// time.Time and the enums check their own input
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := raw.(map[string]any)
		if !ok {
			return
		}
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name, opts, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				continue
			}
			if name == "" {
				if field.Anonymous {
					collectMissing(field.Type, raw, path, missing)
					continue
				}
				name = field.Name
			}

			fieldPath := name
			if path != "" {
				fieldPath = path + "." + name
			}

			value, present := obj[name]
			if !isOptional(field, opts) && (!present || (value == nil && !nullable(field.Type))) {
				*missing = append(*missing, fieldPath)
				continue
			}
			collectMissing(field.Type, value, fieldPath, missing)
		}

	case reflect.Slice, reflect.Array:
		items, ok := raw.([]any)
		if !ok {
			return
		}
		for i, item := range items {
			collectMissing(t.Elem(), item, fmt.Sprintf("%s[%d]", path, i), missing)
		}
	}
}

func isOptional(field reflect.StructField, opts string) bool {
	if field.Type.Kind() == reflect.Pointer {
		return true
	}
	for _, opt := range strings.Split(opts, ",") {
		if opt == "omitempty" || opt == "omitzero" {
			return true
		}
	}
	return false
}

func nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}
