package utils

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator mints entity ids. The store takes this as a capability so
// tests can swap in a deterministic sequence.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SequenceGenerator yields "prefix-1", "prefix-2", ... for tests.
type SequenceGenerator struct {
	mu     sync.Mutex
	Prefix string
	next   int
}

func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.Prefix, g.next)
}
