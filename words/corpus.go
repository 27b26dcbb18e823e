package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
)

//go:embed data/answers.txt
var answersData string

//go:embed data/accepted.txt
var acceptedData string

var (
	answers  []Word
	accepted []Word
	all      []Word // sorted union of answers and accepted
	known    map[Word]bool
)

func init() {
	if err := load(answersData, acceptedData); err != nil {
		panic(err)
	}
}

func load(answersRaw, acceptedRaw string) error {
	ans, err := parseList(answersRaw)
	if err != nil {
		return fmt.Errorf("answers list: %w", err)
	}
	acc, err := parseList(acceptedRaw)
	if err != nil {
		return fmt.Errorf("accepted list: %w", err)
	}
	answers = ans
	accepted = acc
	known = make(map[Word]bool, len(ans)+len(acc))
	all = make([]Word, 0, len(ans)+len(acc))
	for _, w := range ans {
		known[w] = true
		all = append(all, w)
	}
	for _, w := range acc {
		known[w] = true
		all = append(all, w)
	}
	slices.SortFunc(all, Compare)
	return nil
}

// parseList validates corpus entries directly; it cannot go through Parse,
// which requires the corpora to already be loaded.
func parseList(raw string) ([]Word, error) {
	sc := bufio.NewScanner(strings.NewReader(raw))
	var ws []Word
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if len(line) != 5 {
			return nil, &InvalidLengthError{Length: len(line)}
		}
		for _, r := range line {
			if r < 'a' || r > 'z' {
				return nil, &InvalidCharError{Text: line, Char: r}
			}
		}
		var w Word
		copy(w[:], line)
		ws = append(ws, w)
	}
	return ws, sc.Err()
}

// LoadFiles replaces the embedded corpora with lists read from the given
// paths. Either path may be empty to keep the embedded list. It must be
// called before any Word is parsed; the corpora are read-only afterwards.
func LoadFiles(answersPath, acceptedPath string) error {
	ansRaw, accRaw := answersData, acceptedData
	if answersPath != "" {
		b, err := os.ReadFile(answersPath)
		if err != nil {
			return err
		}
		ansRaw = string(b)
	}
	if acceptedPath != "" {
		b, err := os.ReadFile(acceptedPath)
		if err != nil {
			return err
		}
		accRaw = string(b)
	}
	return load(ansRaw, accRaw)
}

// Answers returns the day-ordered answers list. Index i is the answer for
// puzzle day i. Callers must not modify the returned slice.
func Answers() []Word {
	return answers
}

// Accepted returns the additional valid-guess list. Callers must not modify
// the returned slice.
func Accepted() []Word {
	return accepted
}

// All returns the sorted union of answers and accepted guesses. Callers must
// not modify the returned slice.
func All() []Word {
	return all
}

// Known reports whether w is in either corpus.
func Known(w Word) bool {
	return known[w]
}

// AnswerForDay returns the answer for the given puzzle day.
func AnswerForDay(day int) (Word, error) {
	if day < 0 || day >= len(answers) {
		return Word{}, fmt.Errorf("no puzzle for day %d", day)
	}
	return answers[day], nil
}
