package soap

import (
	"fmt"
	"io"

	"github.com/sei-ia/sei.go/internal/codec"
)

// Codec adapts the package functions to codec.Marshaler and codec.Unmarshaler.
type Codec struct{}

func New() *Codec {
	return &Codec{}
}

func (c *Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(*Message)
	if !ok {
		return nil, fmt.Errorf("soap: cannot marshal %T, want *soap.Message", v)
	}
	return Marshal(m)
}

func (c *Codec) NewEncoder(w io.Writer) codec.Encoder {
	return NewEncoder(w)
}

func (c *Codec) Unmarshal(data []byte, dst any) error {
	d, ok := dst.(*Message)
	if !ok {
		return fmt.Errorf("soap: cannot unmarshal into %T, want *soap.Message", dst)
	}
	m, err := Unmarshal(data)
	if err != nil {
		return err
	}
	*d = *m
	return nil
}

func (c *Codec) NewDecoder(r io.Reader) codec.Decoder {
	return NewDecoder(r)
}
