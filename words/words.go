// Package words holds the five-letter word type and the two static corpora
// (day-indexed answers and additional accepted guesses) every other package
// works against.
package words

import (
	"bytes"
	"fmt"
)

// Word is a validated five-letter lowercase ASCII word. Words are comparable
// and totally ordered by byte comparison, so they can be used as map keys and
// sorted deterministically.
type Word [5]byte

// Parse validates s and returns it as a Word. It rejects non-letter
// characters, any length other than five, and words absent from both corpora.
func Parse(s string) (Word, error) {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return Word{}, &InvalidCharError{Text: s, Char: r}
		}
	}
	if len(s) != 5 {
		return Word{}, &InvalidLengthError{Length: len(s)}
	}
	var w Word
	copy(w[:], s)
	if !Known(w) {
		return Word{}, &UnknownWordError{Text: s}
	}
	return w, nil
}

func (w Word) String() string {
	return string(w[:])
}

// Compare orders words lexicographically. Suitable for slices.SortFunc.
func Compare(a, b Word) int {
	return bytes.Compare(a[:], b[:])
}

// InvalidCharError reports a character outside the accepted alphabet.
type InvalidCharError struct {
	Text string
	Char rune
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("words should be ASCII letters only, got %q which contains %q", e.Text, e.Char)
}

// InvalidLengthError reports an input whose length is not five.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("words have five letters, got a string containing %d bytes", e.Length)
}

// UnknownWordError reports a well-formed word missing from both corpora.
type UnknownWordError struct {
	Text string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("word not in the word list: %s", e.Text)
}
