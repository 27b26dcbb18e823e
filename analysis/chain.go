// Package analysis replays a recorded game and computes, per round, every
// alternative guess reproducing the observed feedback and the candidate
// targets each chain of alternative guesses would leave open.
package analysis

import (
	"slices"
	"strings"

	"github.com/jallain/hindsight/words"
)

// Chain is an ordered sequence of guesses, one per round, packed as a string
// of five-byte words. Fixed width makes Go string ordering coincide with
// round-by-round lexicographic chain ordering, so chains sort and key maps
// deterministically for free.
type Chain string

// Append returns c extended with w.
func (c Chain) Append(w words.Word) Chain {
	return c + Chain(w[:])
}

// Len is the number of guesses in the chain.
func (c Chain) Len() int {
	return len(c) / 5
}

// Last returns the most recent guess. ok is false for the empty chain.
func (c Chain) Last() (w words.Word, ok bool) {
	if c == "" {
		return words.Word{}, false
	}
	copy(w[:], c[len(c)-5:])
	return w, true
}

// Words unpacks the chain into its guesses.
func (c Chain) Words() []words.Word {
	ws := make([]words.Word, c.Len())
	for i := range ws {
		copy(ws[i][:], c[i*5:])
	}
	return ws
}

func (c Chain) String() string {
	ws := c.Words()
	strs := make([]string, len(ws))
	for i, w := range ws {
		strs[i] = w.String()
	}
	return strings.Join(strs, " ")
}

// WordSet is a sorted, duplicate-free set of words. The ordering gives every
// consumer the same iteration order regardless of how the set was produced.
type WordSet []words.Word

// Contains reports membership using binary search.
func (s WordSet) Contains(w words.Word) bool {
	_, found := slices.BinarySearchFunc(s, w, words.Compare)
	return found
}
