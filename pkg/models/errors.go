package models

import "fmt"

// DecodeError reports which entity and which wire key could not be decoded.
// Err is one of the constants.Err* decode kinds, possibly wrapped with detail.
type DecodeError struct {
	Entity string
	Key    string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("decoding %s: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("decoding %s: key %q: %v", e.Entity, e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
