package minid

import (
	"crypto/rand"
	"io"
	"sync"
)

// Generator produces IDs with a fixed prefix from a random source.
// It is safe for concurrent use; reads from the source are serialised.
type Generator struct {
	mu     sync.Mutex
	prefix string
	rand   io.Reader
}

// NewGenerator creates a Generator. An empty prefix produces unprefixed IDs
// and a nil reader uses crypto/rand.
func NewGenerator(prefix string, r io.Reader) (*Generator, error) {
	if prefix != "" {
		if err := ValidatePrefix(prefix); err != nil {
			return nil, err
		}
	}
	if r == nil {
		r = rand.Reader
	}
	return &Generator{prefix: prefix, rand: r}, nil
}

// Prefix returns the prefix attached to generated IDs.
func (g *Generator) Prefix() string { return g.prefix }

// Next returns a new ID.
func (g *Generator) Next() (ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return NewFromReader(g.rand, g.prefix)
}

// MustNext is like Next but panics if the random source fails.
func (g *Generator) MustNext() ID {
	id, err := g.Next()
	if err != nil {
		panic(err)
	}
	return id
}
