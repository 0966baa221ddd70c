package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
)

const bodyPrefix = "ns1"

// TypeName qualifies a type declared by the service, for use as an Array item type.
func TypeName(local string) string {
	return bodyPrefix + ":" + local
}

type encoder struct {
	buf bytes.Buffer
}

// Marshal renders m as a complete SOAP envelope.
func Marshal(m *Message) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("soap: nil message")
	}
	e := &encoder{}
	if err := e.envelope(m); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

func (e *encoder) envelope(m *Message) error {
	e.buf.WriteString(xml.Header)
	e.buf.WriteString(`<SOAP-ENV:Envelope xmlns:SOAP-ENV="` + EnvelopeNamespace + `"`)
	if m.Namespace != "" {
		e.buf.WriteString(` xmlns:` + bodyPrefix + `="`)
		e.escape(m.Namespace)
		e.buf.WriteString(`"`)
	}
	e.buf.WriteString(` xmlns:xsd="` + XSDNamespace + `"`)
	e.buf.WriteString(` xmlns:xsi="` + XSINamespace + `"`)
	e.buf.WriteString(` xmlns:SOAP-ENC="` + EncodingNamespace + `"`)
	e.buf.WriteString(` SOAP-ENV:encodingStyle="` + EncodingNamespace + `">`)
	e.buf.WriteString(`<SOAP-ENV:Body>`)

	if m.Fault != nil {
		e.fault(m.Fault)
	} else {
		if m.Name == "" {
			return fmt.Errorf("soap: message has no name")
		}
		name := m.Name
		if m.Namespace != "" {
			name = bodyPrefix + ":" + name
		}
		e.buf.WriteString("<" + name + ">")
		for _, p := range m.Parts {
			if err := e.value(p.Name, p.Value); err != nil {
				return err
			}
		}
		e.buf.WriteString("</" + name + ">")
	}

	e.buf.WriteString(`</SOAP-ENV:Body></SOAP-ENV:Envelope>`)
	return nil
}

func (e *encoder) fault(f *Fault) {
	e.buf.WriteString(`<SOAP-ENV:Fault>`)
	e.leaf("faultcode", f.Code)
	e.leaf("faultstring", f.String)
	if f.Actor != "" {
		e.leaf("faultactor", f.Actor)
	}
	if f.Detail != "" {
		e.leaf("detail", f.Detail)
	}
	e.buf.WriteString(`</SOAP-ENV:Fault>`)
}

func (e *encoder) leaf(name, text string) {
	e.buf.WriteString("<" + name + ">")
	e.escape(text)
	e.buf.WriteString("</" + name + ">")
}

func (e *encoder) escape(s string) {
	_ = xml.EscapeText(&e.buf, []byte(s))
}

func (e *encoder) value(name string, v any) error {
	switch val := v.(type) {
	case nil:
		e.buf.WriteString("<" + name + ` xsi:nil="true"/>`)
	case *string:
		if val == nil {
			return e.value(name, nil)
		}
		return e.value(name, *val)
	case string:
		e.buf.WriteString("<" + name + ` xsi:type="xsd:string">`)
		e.escape(val)
		e.buf.WriteString("</" + name + ">")
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return e.array(name, Array{ItemType: "xsd:string", Items: items})
	case []Struct:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return e.array(name, Array{Items: items})
	case []any:
		return e.array(name, Array{Items: val})
	case Array:
		return e.array(name, val)
	case Struct:
		e.buf.WriteString("<" + name + ">")
		for _, p := range val {
			if err := e.value(p.Name, p.Value); err != nil {
				return err
			}
		}
		e.buf.WriteString("</" + name + ">")
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		s := make(Struct, 0, len(keys))
		for _, k := range keys {
			s = append(s, Part{Name: k, Value: val[k]})
		}
		return e.value(name, s)
	default:
		return fmt.Errorf("soap: cannot encode part %q of type %T", name, v)
	}
	return nil
}

func (e *encoder) array(name string, a Array) error {
	itemType := a.ItemType
	if itemType == "" {
		itemType = "xsd:anyType"
	}
	fmt.Fprintf(&e.buf, `<%s xsi:type="SOAP-ENC:Array" SOAP-ENC:arrayType="%s[%d]">`, name, itemType, len(a.Items))
	for _, item := range a.Items {
		if err := e.value("item", item); err != nil {
			return err
		}
	}
	e.buf.WriteString("</" + name + ">")
	return nil
}

// Encoder writes messages to a stream.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (enc *Encoder) Encode(v any) error {
	m, ok := v.(*Message)
	if !ok {
		return fmt.Errorf("soap: cannot encode %T, want *soap.Message", v)
	}
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	_, err = enc.w.Write(data)
	return err
}
