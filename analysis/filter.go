package analysis

import (
	"slices"

	"github.com/samber/lo"

	"github.com/jallain/hindsight/score"
	"github.com/jallain/hindsight/words"
)

// Filter returns every word from the selected corpus that, used as the
// target, would give the supplied feedback for guess. With extend set the
// accepted-guess list is searched in addition to the answers. Results are
// sorted.
func Filter(guess words.Word, status score.Status, extend bool) []words.Word {
	pool := words.Answers()
	if extend {
		pool = words.All()
	}
	results := lo.Filter(pool, func(target words.Word, _ int) bool {
		return score.Score(guess, target) == status
	})
	slices.SortFunc(results, words.Compare)
	return results
}
