package student

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"

	"github.com/alem-hub/student-records/internal/domain/shared"
)

// field описывает один ключ JSON-объекта схемы.
type field struct {
	name     string
	required bool
	decode   func(raw json.RawMessage) error
}

func required(name string, decode func(json.RawMessage) error) field {
	return field{name: name, required: true, decode: decode}
}

func optional(name string, decode func(json.RawMessage) error) field {
	return field{name: name, decode: decode}
}

// decodeObject разбирает JSON-объект по списку полей схемы:
// сначала лишние ключи, затем обязательные, затем типы значений.
// Пути ошибок относительны объекту; вложенные ошибки переносятся под имя поля.
func decodeObject(data []byte, fields ...field) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return shared.InvalidType("", "object")
	}

	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f.name] = struct{}{}
	}

	extra := make([]string, 0)
	for key := range raw {
		if _, ok := known[key]; !ok {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return shared.Extra(extra[0])
	}

	for _, f := range fields {
		value, ok := raw[f.name]
		if f.required && (!ok || isNull(value)) {
			return shared.Missing(f.name)
		}
	}

	for _, f := range fields {
		value, ok := raw[f.name]
		if !ok || isNull(value) {
			continue
		}
		if err := f.decode(value); err != nil {
			return shared.Reroot(f.name, err)
		}
	}
	return nil
}

// into разбирает значение в dst, переводя ошибки encoding/json в ValidationError.
func into(dst any) func(json.RawMessage) error {
	return func(raw json.RawMessage) error {
		return unmarshal(raw, dst)
	}
}

// listOf разбирает массив поэлементно, чтобы ошибки содержали индекс.
func listOf[T any](dst *[]T) func(json.RawMessage) error {
	return func(raw json.RawMessage) error {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return shared.InvalidType("", "array")
		}

		out := make([]T, len(items))
		for i, item := range items {
			if err := unmarshal(item, &out[i]); err != nil {
				return shared.Reroot(shared.Index("", i), err)
			}
		}
		*dst = out
		return nil
	}
}

func unmarshal(raw json.RawMessage, dst any) error {
	err := json.Unmarshal(raw, dst)
	if err == nil {
		return nil
	}

	if ve, ok := shared.AsValidation(err); ok {
		return ve
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return shared.InvalidType("", typeErr.Type.String())
	}
	return shared.NewValidationError("", shared.ErrInvalidFormat, err.Error())
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
