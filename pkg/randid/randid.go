// Package randid generates short random identifiers for dialog nodes.
package randid

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// DefaultLength is the length of the random part of IDs returned by New.
const DefaultLength = 8

// Generate returns a random lowercase alphanumeric string of length n.
func Generate(n int) string {
	var b strings.Builder
	b.Grow(max(n, 0))
	for range n {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}

// New returns an ID of the form "<prefix>-<random>". An empty prefix yields
// only the random part.
func New(prefix string) string {
	id := Generate(DefaultLength)
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}
