// Package score computes per-letter feedback for a guess against a target
// and handles the textual feedback encodings used in Wordle share posts.
package score

import (
	"strings"

	"github.com/jallain/hindsight/words"
)

// LetterScore is the outcome for one letter position of a guess.
type LetterScore uint8

const (
	// NotUsed means the letter does not appear in any unconsumed target slot.
	NotUsed LetterScore = iota
	// Misplaced means the letter appears in the target at another position.
	Misplaced
	// Correct means the letter matches the target at this position.
	Correct
)

// Status is the feedback for a full five-letter guess, positionally aligned
// with the guess.
type Status [5]LetterScore

// The three accepted encodings per outcome: a plain symbol, a glyph, and the
// named-emoji form pasted by chat clients.
const (
	correctPlain   = '='
	misplacedPlain = '+'
	notUsedPlain   = '-'

	correctGlyph   = '🟩'
	misplacedGlyph = '🟨'
	notUsedGlyph   = '⬛'
)

// ParseStatus interprets a feedback row. Rows copied from a Wordle share may
// carry the named-emoji forms (":large_green_square:" etc.); those are
// substituted to the plain symbols before interpretation so both encodings
// parse uniformly.
func ParseStatus(s string) (Status, error) {
	if strings.Contains(s, ":") {
		s = strings.Replace(s, ":black_large_square:", string(notUsedPlain), 5)
		s = strings.Replace(s, ":large_yellow_square:", string(misplacedPlain), 5)
		s = strings.Replace(s, ":large_green_square:", string(correctPlain), 5)
	}
	runes := []rune(s)
	for _, r := range runes {
		switch r {
		case correctPlain, misplacedPlain, notUsedPlain, correctGlyph, misplacedGlyph, notUsedGlyph:
		default:
			return Status{}, &words.InvalidCharError{Text: s, Char: r}
		}
	}
	if len(runes) != 5 {
		return Status{}, &words.InvalidLengthError{Length: len(runes)}
	}
	var st Status
	for i, r := range runes {
		switch r {
		case correctPlain, correctGlyph:
			st[i] = Correct
		case misplacedPlain, misplacedGlyph:
			st[i] = Misplaced
		case notUsedPlain, notUsedGlyph:
			st[i] = NotUsed
		}
	}
	return st, nil
}

// String renders the canonical glyph form. Parsing the rendered form yields
// an equal Status.
func (st Status) String() string {
	var b strings.Builder
	for _, ls := range st {
		switch ls {
		case Correct:
			b.WriteRune(correctGlyph)
		case Misplaced:
			b.WriteRune(misplacedGlyph)
		default:
			b.WriteRune(notUsedGlyph)
		}
	}
	return b.String()
}

// Won reports whether every position is Correct.
func (st Status) Won() bool {
	return st == Status{Correct, Correct, Correct, Correct, Correct}
}
