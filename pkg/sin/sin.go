// Package sin converts between booleans and the "S"/"N" sentinels SEI uses on the wire.
//
// SEI never sends native booleans. A flag is either "S" (sim), "N" (não) or missing, and the
// missing state is meaningful, so decoded flags are tri-state.
package sin

import (
	"fmt"
	"strings"

	"github.com/sei-ia/sei.go/pkg/constants"
)

const (
	Sim = "S"
	Nao = "N"
)

// Flag is a tri-state boolean. The zero value is Unknown.
type Flag int8

const (
	Unknown Flag = iota
	True
	False
)

// Of returns the Flag for a known boolean.
func Of(b bool) Flag {
	if b {
		return True
	}
	return False
}

// FromPtr maps nil to Unknown.
func FromPtr(b *bool) Flag {
	if b == nil {
		return Unknown
	}
	return Of(*b)
}

// Bool reports the value and whether it is known.
func (f Flag) Bool() (value, ok bool) {
	switch f {
	case True:
		return true, true
	case False:
		return false, true
	default:
		return false, false
	}
}

// Ptr returns nil for Unknown.
func (f Flag) Ptr() *bool {
	v, ok := f.Bool()
	if !ok {
		return nil
	}
	return &v
}

func (f Flag) IsKnown() bool {
	return f == True || f == False
}

func (f Flag) String() string {
	switch f {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// MarshalJSON renders Unknown as null.
func (f Flag) MarshalJSON() ([]byte, error) {
	if !f.IsKnown() {
		return []byte("null"), nil
	}
	return []byte(f.String()), nil
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		*f = Unknown
	case "true":
		*f = True
	case "false":
		*f = False
	default:
		return fmt.Errorf("sin: cannot unmarshal %s into Flag", data)
	}
	return nil
}

// Decode reads a wire sentinel. nil means the server did not say, and decodes to Unknown.
// Matching is case-insensitive; anything other than "s" or "n" is ErrInvalidSentinel.
func Decode(raw *string) (Flag, error) {
	if raw == nil {
		return Unknown, nil
	}
	switch strings.ToLower(*raw) {
	case "s":
		return True, nil
	case "n":
		return False, nil
	default:
		return Unknown, fmt.Errorf("%w: %q", constants.ErrInvalidSentinel, *raw)
	}
}

// Encode is the inverse of Decode. Unknown encodes to nil.
func Encode(f Flag) *string {
	var s string
	switch f {
	case True:
		s = Sim
	case False:
		s = Nao
	default:
		return nil
	}
	return &s
}

// EncodeBool is Encode for a known boolean; request switches always go out as "S" or "N".
func EncodeBool(b bool) string {
	if b {
		return Sim
	}
	return Nao
}
