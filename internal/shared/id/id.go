// Package id provides ULID request identifiers for CLI evaluations.
//
// IDs are prefixed ("req_") and lexicographically sortable, so log lines of
// consecutive invocations order by time.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RequestID identifies one tool evaluation
type RequestID string

// RequestPrefix is prepended to every RequestID.
const RequestPrefix = "req"

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
	now       func() time.Time
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator with cryptographically secure entropy
func NewGenerator() *Generator {
	return NewGeneratorWithEntropy(rand.Reader, time.Now)
}

// NewGeneratorWithEntropy creates a generator with custom entropy and clock.
// Useful for testing with deterministic output.
func NewGeneratorWithEntropy(entropy io.Reader, now func() time.Time) *Generator {
	return &Generator{entropy: entropy, now: now}
}

// Generate creates a new ULID
func (g *Generator) Generate() (ulid.ULID, error) {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.New(ulid.Timestamp(g.now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) (string, error) {
	u, err := g.Generate()
	if err != nil {
		return "", fmt.Errorf("generate %s id: %w", prefix, err)
	}
	return fmt.Sprintf("%s_%s", prefix, u.String()), nil
}

// NewRequestID generates a new request ID from the default generator.
// Entropy failures fall back to a timestamp-only ULID.
func NewRequestID() RequestID {
	s, err := Default().GenerateWithPrefix(RequestPrefix)
	if err != nil {
		var u ulid.ULID
		_ = u.SetTime(ulid.Now())
		s = RequestPrefix + "_" + u.String()
	}
	return RequestID(s)
}

func (id RequestID) String() string { return string(id) }

// Timestamp extracts the creation time of a request ID.
func (id RequestID) Timestamp() (time.Time, error) {
	raw, ok := strings.CutPrefix(string(id), RequestPrefix+"_")
	if !ok {
		return time.Time{}, fmt.Errorf("request id %q: missing %s_ prefix", id, RequestPrefix)
	}
	parsed, err := ulid.Parse(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("request id %q: %w", id, err)
	}
	return ulid.Time(parsed.Time()), nil
}
