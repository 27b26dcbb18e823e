// Package report formats the per-round output of the analyzer.
package report

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/jallain/hindsight/analysis"
)

// Reporter writes one summary line per analysed round. With Verbose set it
// also prints candidate-set statistics across that round's chains.
type Reporter struct {
	W       io.Writer
	Verbose bool
}

// Report writes the analysis results. For each round it names the number of
// alternative guesses and the smallest and largest candidate-target sets
// across all chains, with a witness guess for each extreme. Ties on set size
// go to the least chain in chain order.
func (r *Reporter) Report(rows []analysis.RowAnalysis) error {
	for _, row := range rows {
		if len(row.Targets) == 0 {
			if _, err := fmt.Fprintf(r.W, "Guess resulting in %s has no possible guesses.\n", row.Status); err != nil {
				return err
			}
			continue
		}
		chains := slices.Sorted(maps.Keys(row.Targets))
		minChain, maxChain := chains[0], chains[0]
		for _, c := range chains[1:] {
			if len(row.Targets[c]) < len(row.Targets[minChain]) {
				minChain = c
			}
			if len(row.Targets[c]) > len(row.Targets[maxChain]) {
				maxChain = c
			}
		}
		minLast, _ := minChain.Last()
		maxLast, _ := maxChain.Last()
		plural := "es"
		if len(row.Guesses) == 1 {
			plural = ""
		}
		_, err := fmt.Fprintf(r.W,
			"Guess resulting in %s has %d possible guess%s for between %d and %d targets left, guessing %s and %s respectively.\n",
			row.Status, len(row.Guesses), plural,
			len(row.Targets[minChain]), len(row.Targets[maxChain]),
			minLast, maxLast)
		if err != nil {
			return err
		}
		if r.Verbose {
			if err := r.reportStats(row, chains); err != nil {
				return err
			}
		}
	}
	return nil
}

// reportStats prints the mean and median candidate-set size across chains.
func (r *Reporter) reportStats(row analysis.RowAnalysis, chains []analysis.Chain) error {
	sizes := make([]float64, len(chains))
	for i, c := range chains {
		sizes[i] = float64(len(row.Targets[c]))
	}
	slices.Sort(sizes)
	mean := stat.Mean(sizes, nil)
	median := stat.Quantile(0.5, stat.Empirical, sizes, nil)
	_, err := fmt.Fprintf(r.W, "  %d chains, mean %.1f targets, median %.1f\n",
		len(chains), mean, median)
	return err
}
