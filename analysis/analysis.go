package analysis

import (
	"maps"
	"runtime"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/jallain/hindsight/score"
	"github.com/jallain/hindsight/words"
)

// RowAnalysis is the result for one round of the transcript.
type RowAnalysis struct {
	// Status is the feedback observed for this round.
	Status score.Status
	// Guesses holds every word from the guess pool that scores exactly
	// Status against the real target, sorted.
	Guesses []words.Word
	// Targets maps each chain of alternative guesses played so far to the
	// candidate targets still consistent with the whole feedback history.
	Targets map[Chain]WordSet
}

// Analyzer folds a feedback transcript forward, one round at a time. The
// target, guess pool, and candidate universe are fixed for the run and never
// mutated, so the per-round fan-out shares them freely across workers.
type Analyzer struct {
	target   words.Word
	pool     []words.Word
	universe WordSet
	workers  int
}

// New returns an Analyzer for the given real target. pool is the corpus the
// alternative guesses are drawn from, universe the initial candidate-target
// set (before the first round, any word in the configured corpus could be
// the target). Both are sorted internally.
func New(target words.Word, pool, universe []words.Word) *Analyzer {
	p := make([]words.Word, len(pool))
	copy(p, pool)
	u := make(WordSet, len(universe))
	copy(u, universe)
	slices.SortFunc(p, words.Compare)
	slices.SortFunc(u, words.Compare)
	return &Analyzer{
		target:   target,
		pool:     p,
		universe: u,
		workers:  max(1, runtime.NumCPU()-1),
	}
}

// SetWorkers overrides the number of fan-out workers per round.
func (a *Analyzer) SetWorkers(n int) {
	if n > 0 {
		a.workers = n
	}
}

// Analyse interprets each row and folds the chain map forward. A row that
// fails to parse aborts the whole run; nothing is returned for earlier
// rounds either, since the transcript is one atomic unit of work. Analysis
// stops at an all-Correct row even if more rows follow.
func (a *Analyzer) Analyse(rows []string) ([]RowAnalysis, error) {
	results := make([]RowAnalysis, 0, len(rows))
	prev := map[Chain]WordSet{"": a.universe}
	for i, row := range rows {
		st, err := score.ParseStatus(row)
		if err != nil {
			return nil, err
		}
		guesses := lo.Filter(a.pool, func(w words.Word, _ int) bool {
			return score.Score(w, a.target) == st
		})
		targets, err := a.fanOut(prev, guesses, st)
		if err != nil {
			return nil, err
		}
		log.Debug().
			Int("round", i).
			Str("status", st.String()).
			Int("guesses", len(guesses)).
			Int("chains", len(targets)).
			Msg("analysed round")
		results = append(results, RowAnalysis{Status: st, Guesses: guesses, Targets: targets})
		if st.Won() {
			break
		}
		prev = targets
	}
	return results, nil
}

// fanOut builds the next round's chain map from the previous one. Each
// worker owns one previous chain and the full guess list, so every task
// writes disjoint keys; the merge under the mutex is the only shared step.
// Chain keys are unique by construction: distinct parents stay distinct
// after appending, and the appended guesses are distinct per parent.
func (a *Analyzer) fanOut(prev map[Chain]WordSet, guesses []words.Word, st score.Status) (map[Chain]WordSet, error) {
	next := make(map[Chain]WordSet, len(prev)*len(guesses))
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(a.workers)
	for chain, set := range prev {
		g.Go(func() error {
			local := make(map[Chain]WordSet, len(guesses))
			for _, w := range guesses {
				narrowed := make(WordSet, 0, len(set))
				for _, t := range set {
					if score.Score(w, t) == st {
						narrowed = append(narrowed, t)
					}
				}
				local[chain.Append(w)] = narrowed
			}
			mu.Lock()
			maps.Copy(next, local)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}
