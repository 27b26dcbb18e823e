package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jallain/hindsight/analysis"
	"github.com/jallain/hindsight/score"
	"github.com/jallain/hindsight/words"
)

func mustWord(t *testing.T, s string) words.Word {
	t.Helper()
	w, err := words.Parse(s)
	require.NoError(t, err)
	return w
}

func mustStatus(t *testing.T, s string) score.Status {
	t.Helper()
	st, err := score.ParseStatus(s)
	require.NoError(t, err)
	return st
}

func chainOf(t *testing.T, names ...string) analysis.Chain {
	t.Helper()
	var c analysis.Chain
	for _, n := range names {
		c = c.Append(mustWord(t, n))
	}
	return c
}

func TestReportSingleChain(t *testing.T) {
	rows := []analysis.RowAnalysis{{
		Status:  mustStatus(t, "-===="),
		Guesses: []words.Word{mustWord(t, "chose")},
		Targets: map[analysis.Chain]analysis.WordSet{
			chainOf(t, "chose"): {mustWord(t, "those")},
		},
	}}
	var buf strings.Builder
	r := &Reporter{W: &buf}
	require.NoError(t, r.Report(rows))
	assert.Equal(t,
		"Guess resulting in ⬛🟩🟩🟩🟩 has 1 possible guess for between 1 and 1 targets left, guessing chose and chose respectively.\n",
		buf.String())
}

func TestReportTieBreaksOnLeastChain(t *testing.T) {
	rows := []analysis.RowAnalysis{{
		Status: mustStatus(t, "-----"),
		Guesses: []words.Word{
			mustWord(t, "crazy"), mustWord(t, "gamma"), mustWord(t, "gaudy"),
		},
		Targets: map[analysis.Chain]analysis.WordSet{
			chainOf(t, "crazy"): {mustWord(t, "those")},
			chainOf(t, "gamma"): {mustWord(t, "chose"), mustWord(t, "those")},
			chainOf(t, "gaudy"): {mustWord(t, "chose"), mustWord(t, "those")},
		},
	}}
	var buf strings.Builder
	r := &Reporter{W: &buf}
	require.NoError(t, r.Report(rows))
	// gamma and gaudy tie for the maximum; the least chain wins.
	assert.Equal(t,
		"Guess resulting in ⬛⬛⬛⬛⬛ has 3 possible guesses for between 1 and 2 targets left, guessing crazy and gamma respectively.\n",
		buf.String())
}

func TestReportNoChains(t *testing.T) {
	rows := []analysis.RowAnalysis{{
		Status:  mustStatus(t, "+++++"),
		Targets: map[analysis.Chain]analysis.WordSet{},
	}}
	var buf strings.Builder
	r := &Reporter{W: &buf}
	require.NoError(t, r.Report(rows))
	assert.Equal(t, "Guess resulting in 🟨🟨🟨🟨🟨 has no possible guesses.\n", buf.String())
}

func TestReportVerboseStats(t *testing.T) {
	rows := []analysis.RowAnalysis{{
		Status:  mustStatus(t, "-----"),
		Guesses: []words.Word{mustWord(t, "crazy")},
		Targets: map[analysis.Chain]analysis.WordSet{
			chainOf(t, "crazy"): {mustWord(t, "those")},
			chainOf(t, "gamma"): {mustWord(t, "chose"), mustWord(t, "those")},
			chainOf(t, "gaudy"): {mustWord(t, "chose"), mustWord(t, "those")},
		},
	}}
	var buf strings.Builder
	r := &Reporter{W: &buf, Verbose: true}
	require.NoError(t, r.Report(rows))
	assert.Contains(t, buf.String(), "3 chains, mean 1.7 targets")
}
