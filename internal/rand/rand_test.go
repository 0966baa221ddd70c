package rand

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sei-ia/sei.go/pkg/constants"
)

func TestNewRequestID(t *testing.T) {
	id := NewRequestID(constants.RequestIDLength)
	assert.Len(t, id, constants.RequestIDLength)
	for _, c := range id {
		assert.True(t, strings.ContainsRune(charset, c), "unexpected rune %q", c)
	}

	assert.Equal(t, "", NewRequestID(0))
	assert.NotEqual(t, NewRequestID(32), NewRequestID(32))
}

func TestNewRequestIDConcurrent(t *testing.T) {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[string]bool{}
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := NewRequestID(24)
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 50)
}

func BenchmarkNewRequestID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewRequestID(constants.RequestIDLength)
	}
}
