package score

import "github.com/jallain/hindsight/words"

// ScoredGuess pairs a guess with the feedback it produced against some target.
type ScoredGuess struct {
	Word   words.Word
	Status Status
}

// Guess scores guess against target.
func Guess(guess, target words.Word) ScoredGuess {
	return ScoredGuess{Word: guess, Status: Score(guess, target)}
}

// Score computes the feedback for guess against target using two passes, so
// that a repeated guess letter is never credited more times than it occurs in
// the target. Exact-position matches consume their target slot first; the
// remaining positions then claim the first still-available slot holding their
// letter, left to right.
func Score(guess, target words.Word) Status {
	var st Status
	available := target
	for i := range target {
		if guess[i] == target[i] {
			available[i] = 0
			st[i] = Correct
		}
	}
	for i, g := range guess {
		if st[i] == Correct {
			continue
		}
		for j := range available {
			if available[j] == g {
				available[j] = 0
				st[i] = Misplaced
				break
			}
		}
	}
	return st
}
