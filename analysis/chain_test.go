package analysis

import (
	"testing"

	"github.com/matryer/is"

	"github.com/jallain/hindsight/words"
)

func w(t *testing.T, s string) words.Word {
	t.Helper()
	word, err := words.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return word
}

func TestChainAppend(t *testing.T) {
	is := is.New(t)
	var c Chain
	is.Equal(c.Len(), 0)
	_, ok := c.Last()
	is.True(!ok)

	c = c.Append(w(t, "cigar"))
	c = c.Append(w(t, "those"))
	is.Equal(c.Len(), 2)
	is.Equal(c.Words(), []words.Word{w(t, "cigar"), w(t, "those")})
	last, ok := c.Last()
	is.True(ok)
	is.Equal(last, w(t, "those"))
	is.Equal(c.String(), "cigar those")
}

// Chains order round by round: a chain differing in an early guess sorts by
// that guess, not by later ones.
func TestChainOrdering(t *testing.T) {
	is := is.New(t)
	abateFirst := Chain("").Append(w(t, "abate")).Append(w(t, "those"))
	thoseFirst := Chain("").Append(w(t, "those")).Append(w(t, "abate"))
	is.True(abateFirst < thoseFirst)
}

func TestWordSetContains(t *testing.T) {
	is := is.New(t)
	set := WordSet{w(t, "abate"), w(t, "cigar"), w(t, "those")}
	is.True(set.Contains(w(t, "cigar")))
	is.True(set.Contains(w(t, "abate")))
	is.True(set.Contains(w(t, "those")))
	is.True(!set.Contains(w(t, "humph")))
	is.True(!WordSet{}.Contains(w(t, "cigar")))
}
