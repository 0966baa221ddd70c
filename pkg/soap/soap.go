// Package soap encodes and decodes SOAP 1.1 rpc/encoded messages, the dialect spoken by
// SEI's SeiWS.php service.
//
// Message parts are carried as a generic value tree. On the way out a part value may be
// nil, string, *string, []string, Struct, Array, []any or map[string]any. On the way in
// every element becomes nil (xsi:nil), []any (SOAP-ENC arrays), map[string]any (elements
// with children) or string (everything else).
package soap

import (
	"fmt"
	"strings"
)

const (
	EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	EncodingNamespace = "http://schemas.xmlsoap.org/soap/encoding/"
	XSDNamespace      = "http://www.w3.org/2001/XMLSchema"
	XSINamespace      = "http://www.w3.org/2001/XMLSchema-instance"

	// ResponseSuffix is appended to the operation name in rpc responses.
	ResponseSuffix = "Response"
)

// Part is one named accessor of an rpc body or struct.
type Part struct {
	Name  string
	Value any
}

// Struct is a compound value whose parts keep their declared order.
type Struct []Part

// Array is a SOAP-ENC array with an explicit item type such as "ns1:DefinicaoControlePrazo".
type Array struct {
	ItemType string
	Items    []any
}

// Message is the single element inside a SOAP Body: a call, its response, or a Fault.
type Message struct {
	Namespace string
	Name      string
	Parts     []Part
	Fault     *Fault
}

// Part returns the value of the named part.
func (m *Message) Part(name string) (any, bool) {
	for _, p := range m.Parts {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// Result is the value of the first part, which is where rpc responses put the return value.
func (m *Message) Result() any {
	if len(m.Parts) == 0 {
		return nil
	}
	return m.Parts[0].Value
}

// Operation strips the response suffix from Name.
func (m *Message) Operation() string {
	return strings.TrimSuffix(m.Name, ResponseSuffix)
}

// Fault is a SOAP 1.1 fault returned by the remote service.
type Fault struct {
	Code   string
	String string
	Actor  string
	Detail string
}

func (f *Fault) Error() string {
	if f.Detail != "" {
		return fmt.Sprintf("soap fault %s: %s (%s)", f.Code, f.String, f.Detail)
	}
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.String)
}
