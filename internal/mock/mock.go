// Package mock provides an in-memory connection.Connection that records calls and
// answers from a table of canned results.
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/sei-ia/sei.go/pkg/soap"
)

// Call is one recorded invocation.
type Call struct {
	Operation string
	Parts     []soap.Part
}

// Part returns the value of the named part.
func (c Call) Part(name string) (any, bool) {
	m := soap.Message{Parts: c.Parts}
	return m.Part(name)
}

// Names lists the part names in the order they were sent.
func (c Call) Names() []string {
	names := make([]string, len(c.Parts))
	for i, p := range c.Parts {
		names[i] = p.Name
	}
	return names
}

type Connection struct {
	mu      sync.Mutex
	results map[string]any
	errs    map[string]error
	calls   []Call

	Connected bool
	Closed    bool
}

func Create() *Connection {
	return &Connection{
		results: map[string]any{},
		errs:    map[string]error{},
	}
}

// Respond sets the raw result returned for operation.
func (c *Connection) Respond(operation string, result any) *Connection {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[operation] = result
	return c
}

// Fail makes every call to operation return err.
func (c *Connection) Fail(operation string, err error) *Connection {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs[operation] = err
	return c
}

func (c *Connection) Connect(ctx context.Context) error {
	c.Connected = true
	return nil
}

func (c *Connection) Close(ctx context.Context) error {
	c.Closed = true
	return nil
}

func (c *Connection) Call(ctx context.Context, operation string, parts ...soap.Part) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, Call{Operation: operation, Parts: parts})

	if err, ok := c.errs[operation]; ok {
		return nil, err
	}
	result, ok := c.results[operation]
	if !ok {
		return nil, fmt.Errorf("mock: no result for %s", operation)
	}
	return result, nil
}

// Calls returns the recorded invocations in order.
func (c *Connection) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Call, len(c.calls))
	copy(out, c.calls)
	return out
}

// Last returns the most recent invocation.
func (c *Connection) Last() (Call, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.calls) == 0 {
		return Call{}, false
	}
	return c.calls[len(c.calls)-1], true
}
