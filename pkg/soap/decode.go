package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoBody is returned when a document is not a SOAP envelope with a non-empty Body.
var ErrNoBody = errors.New("soap: envelope has no body element")

type node struct {
	name     xml.Name
	attrs    []xml.Attr
	children []*node
	text     strings.Builder
}

func (n *node) attr(local string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func (n *node) child(local string) *node {
	for _, c := range n.children {
		if c.name.Local == local {
			return c
		}
	}
	return nil
}

func parse(r io.Reader) (*node, error) {
	dec := xml.NewDecoder(r)
	var (
		root  *node
		stack []*node
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("soap: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{name: t.Name, attrs: t.Attr}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
	if root == nil {
		return nil, ErrNoBody
	}
	return root, nil
}

// Unmarshal parses a SOAP envelope. A Fault body comes back in Message.Fault, not as an error.
func Unmarshal(data []byte) (*Message, error) {
	return decodeMessage(bytes.NewReader(data))
}

func decodeMessage(r io.Reader) (*Message, error) {
	root, err := parse(r)
	if err != nil {
		return nil, err
	}
	if root.name.Local != "Envelope" {
		return nil, fmt.Errorf("soap: root element is %q, want Envelope", root.name.Local)
	}
	body := root.child("Body")
	if body == nil || len(body.children) == 0 {
		return nil, ErrNoBody
	}

	el := body.children[0]
	if el.name.Local == "Fault" {
		return &Message{Fault: decodeFault(el)}, nil
	}

	m := &Message{
		Namespace: el.name.Space,
		Name:      el.name.Local,
		Parts:     make([]Part, 0, len(el.children)),
	}
	for _, c := range el.children {
		m.Parts = append(m.Parts, Part{Name: c.name.Local, Value: decodeValue(c)})
	}
	return m, nil
}

func decodeFault(el *node) *Fault {
	f := &Fault{}
	if c := el.child("faultcode"); c != nil {
		f.Code = strings.TrimSpace(c.text.String())
	}
	if c := el.child("faultstring"); c != nil {
		f.String = strings.TrimSpace(c.text.String())
	}
	if c := el.child("faultactor"); c != nil {
		f.Actor = strings.TrimSpace(c.text.String())
	}
	if c := el.child("detail"); c != nil {
		f.Detail = strings.TrimSpace(c.text.String())
	}
	return f
}

func isNil(n *node) bool {
	v, ok := n.attr("nil")
	return ok && (v == "true" || v == "1")
}

func isArray(n *node) bool {
	if _, ok := n.attr("arrayType"); ok {
		return true
	}
	t, ok := n.attr("type")
	if !ok {
		return false
	}
	if i := strings.LastIndexByte(t, ':'); i >= 0 {
		t = t[i+1:]
	}
	return t == "Array" || strings.HasPrefix(t, "ArrayOf")
}

func decodeValue(n *node) any {
	switch {
	case isNil(n):
		return nil
	case isArray(n):
		items := make([]any, 0, len(n.children))
		for _, c := range n.children {
			items = append(items, decodeValue(c))
		}
		return items
	case len(n.children) > 0:
		rec := make(map[string]any, len(n.children))
		for _, c := range n.children {
			rec[c.name.Local] = decodeValue(c)
		}
		return rec
	default:
		return n.text.String()
	}
}

// Decoder reads one message from a stream.
type Decoder struct {
	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

func (dec *Decoder) Decode(v any) error {
	dst, ok := v.(*Message)
	if !ok {
		return fmt.Errorf("soap: cannot decode into %T, want *soap.Message", v)
	}
	m, err := decodeMessage(dec.r)
	if err != nil {
		return err
	}
	*dst = *m
	return nil
}
