package transcript

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestParseMultiLine(t *testing.T) {
	is := is.New(t)
	in := strings.Join([]string{
		"Wordle 232 6/6",
		"",
		"-+=--",
		"----+",
		"=+=--",
		"=-===",
		"-+-++",
		"=====",
	}, "\n")
	share, err := Parse(strings.NewReader(in))
	is.NoErr(err)
	is.Equal(share.Day, 232)
	is.Equal(len(share.Rows), 6)
	is.Equal(share.Rows[0], "-+=--")
	is.Equal(share.Rows[5], "=====")
}

func TestParseEmbeddedFirstRow(t *testing.T) {
	is := is.New(t)
	in := strings.Join([]string{
		"Wordle 232 6/6:black_large_square::large_yellow_square::large_green_square::black_large_square::black_large_square:",
		":large_green_square::large_green_square::large_green_square::large_green_square::large_green_square:",
	}, "\n")
	share, err := Parse(strings.NewReader(in))
	is.NoErr(err)
	is.Equal(share.Day, 232)
	is.Equal(len(share.Rows), 2)
	is.Equal(share.Rows[0], ":black_large_square::large_yellow_square::large_green_square::black_large_square::black_large_square:")
}

func TestParseSkipsBlankLines(t *testing.T) {
	is := is.New(t)
	share, err := Parse(strings.NewReader("Wordle 3 1/6\n\n\n=====\n\n"))
	is.NoErr(err)
	is.Equal(share.Rows, []string{"====="})
}

func TestParseBadMarker(t *testing.T) {
	is := is.New(t)
	_, err := Parse(strings.NewReader("Wordel 232 6/6\n=====\n"))
	is.True(errors.Is(err, ErrNotShare))
}

func TestParseBadDay(t *testing.T) {
	is := is.New(t)
	_, err := Parse(strings.NewReader("Wordle abc 6/6\n=====\n"))
	is.True(errors.Is(err, ErrNotShare))
}

func TestParseEmptyInput(t *testing.T) {
	is := is.New(t)
	_, err := Parse(strings.NewReader(""))
	is.True(errors.Is(err, ErrNotShare))
}

func TestParseBareHeader(t *testing.T) {
	is := is.New(t)
	_, err := Parse(strings.NewReader("Wordle\n"))
	is.True(errors.Is(err, ErrNotShare))
}
