// Package idgen provides ID generation utilities
package idgen

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DocumentIDLength is the length of host document ids
const DocumentIDLength = 16

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// RandomGenerator generates random host document ids
type RandomGenerator struct{}

// NewRandom creates a new random document id generator
func NewRandom() *RandomGenerator {
	return &RandomGenerator{}
}

// Generate creates a 16 character alphanumeric id
func (g *RandomGenerator) Generate() string {
	randomBytes := make([]byte, DocumentIDLength)
	_, err := rand.Read(randomBytes)
	if err != nil {
		// crypto/rand.Read should never fail on a properly configured system
		// If it does, it indicates a catastrophic system failure
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}

	out := make([]byte, DocumentIDLength)
	for i, b := range randomBytes {
		out[i] = alphanumeric[int(b)%len(alphanumeric)]
	}
	return string(out)
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}

// NamedStubOptions tune NamedStub
type NamedStubOptions struct {
	// Prefix defaults to "ddb"
	Prefix  string
	Postfix string
}

// NamedStub builds a deterministic document id from a name so the same
// content always maps onto the same document. Accents are folded and
// anything outside [a-zA-Z0-9] is dropped; the result is truncated or
// zero padded to DocumentIDLength.
func NamedStub(name string, opts *NamedStubOptions) string {
	prefix := "ddb"
	postfix := ""
	if opts != nil {
		if opts.Prefix != "" {
			prefix = opts.Prefix
		}
		postfix = opts.Postfix
	}

	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}

	stub := onlyAlphanumeric(prefix + folded)
	postfix = onlyAlphanumeric(postfix)
	room := DocumentIDLength - len(postfix)
	if room < 0 {
		room = 0
		postfix = postfix[:DocumentIDLength]
	}
	if len(stub) > room {
		stub = stub[:room]
	}
	stub += postfix
	return stub + strings.Repeat("0", DocumentIDLength-len(stub))
}

func onlyAlphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(alphanumeric, r) {
			return r
		}
		return -1
	}, s)
}
