package models

import (
	"errors"
	"fmt"

	"github.com/sei-ia/sei.go/pkg/constants"
	"github.com/sei-ia/sei.go/pkg/sin"
)

// Record is one raw response record as produced by the wire codec. Values are
// string, nil, a nested map[string]any (or Record) or a []any of nested values.
type Record map[string]any

// AsRecord accepts the shapes a nested record can take in a decoded tree.
func AsRecord(entity string, v any) (Record, error) {
	switch r := v.(type) {
	case Record:
		return r, nil
	case map[string]any:
		return Record(r), nil
	default:
		return nil, &DecodeError{
			Entity: entity,
			Err:    fmt.Errorf("%w: want record, got %T", constants.ErrMalformedRecord, v),
		}
	}
}

// DecodeList applies decode to every element of a raw list, keeping order.
// nil decodes to an empty list. The first failing element fails the whole list.
func DecodeList[T any](entity string, v any, decode func(Record) (T, error)) ([]T, error) {
	if v == nil {
		return []T{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &DecodeError{
			Entity: entity,
			Err:    fmt.Errorf("%w: want list, got %T", constants.ErrMalformedRecord, v),
		}
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		rec, err := AsRecord(entity, item)
		if err != nil {
			return nil, err
		}
		decoded, err := decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, decoded)
	}
	return out, nil
}

// isBlank reports whether rec is exactly the all-null shape: the same key set as keys
// and nil under every key.
func isBlank(rec Record, keys []string) bool {
	if len(rec) != len(keys) {
		return false
	}
	for _, k := range keys {
		v, ok := rec[k]
		if !ok || v != nil {
			return false
		}
	}
	return true
}

type reader struct {
	entity string
	rec    Record
}

func newReader(entity string, rec Record) reader {
	return reader{entity: entity, rec: rec}
}

func (r reader) fail(key string, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{Entity: r.entity, Key: key, Err: err}
}

func (r reader) malformed(key string, v any, want string) error {
	return r.fail(key, fmt.Errorf("%w: want %s, got %T", constants.ErrMalformedRecord, want, v))
}

func (r reader) value(key string) (any, error) {
	v, ok := r.rec[key]
	if !ok {
		return nil, r.fail(key, constants.ErrMissingField)
	}
	return v, nil
}

func (r reader) string(key string) (string, error) {
	v, err := r.value(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", r.malformed(key, v, "string")
	}
	return s, nil
}

func (r reader) optString(key string) (*string, error) {
	v, err := r.value(key)
	if err != nil || v == nil {
		return nil, err
	}
	s, ok := v.(string)
	if !ok {
		return nil, r.malformed(key, v, "string")
	}
	return &s, nil
}

func (r reader) flag(key string) (sin.Flag, error) {
	s, err := r.optString(key)
	if err != nil {
		return sin.Unknown, err
	}
	f, err := sin.Decode(s)
	if err != nil {
		return sin.Unknown, r.fail(key, err)
	}
	return f, nil
}

func (r reader) nivelAcesso(key string) (NivelAcesso, error) {
	s, err := r.string(key)
	if err != nil {
		return 0, err
	}
	n, err := ParseNivelAcesso(s)
	if err != nil {
		return 0, r.fail(key, err)
	}
	return n, nil
}

// record reads a required nested record; nil is malformed.
func (r reader) record(key string) (Record, error) {
	v, err := r.value(key)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, r.malformed(key, v, "record")
	}
	rec, err := AsRecord(r.entity, v)
	if err != nil {
		return nil, r.malformed(key, v, "record")
	}
	return rec, nil
}

// optRecord reads a nested record that may be nil.
func (r reader) optRecord(key string) (Record, bool, error) {
	v, err := r.value(key)
	if err != nil || v == nil {
		return nil, false, err
	}
	rec, err := AsRecord(r.entity, v)
	if err != nil {
		return nil, false, r.malformed(key, v, "record")
	}
	return rec, true, nil
}

// list reads a list that must be present; nil comes back as a nil slice so callers
// can choose between absence and an empty list.
func (r reader) list(key string) ([]any, error) {
	v, err := r.value(key)
	if err != nil || v == nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, r.malformed(key, v, "list")
	}
	return items, nil
}

func readList[T any](r reader, key, entity string, decode func(Record) (T, error)) ([]T, error) {
	items, err := r.list(key)
	if err != nil {
		return nil, err
	}
	return DecodeList(entity, items, decode)
}

func readOptional[T any](r reader, key string, decode func(Record) (*T, error)) (*T, error) {
	rec, ok, err := r.optRecord(key)
	if err != nil || !ok {
		return nil, err
	}
	return decode(rec)
}

// optional adapts a value decoder to readOptional.
func optional[T any](decode func(Record) (T, error)) func(Record) (*T, error) {
	return func(rec Record) (*T, error) {
		v, err := decode(rec)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}
