// Package transcript parses the share text of an already-played game: a
// header line naming the puzzle day followed by one feedback row per round.
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNotShare is returned when the first line is not a recognized puzzle
// header.
var ErrNotShare = errors.New("input doesn't look like a Wordle share")

// headerMarker is the literal first word of a share header.
const headerMarker = "Wordle"

// Share is a parsed transcript. Rows holds the raw feedback lines in play
// order; they are interpreted later so a malformed row aborts the whole
// analysis rather than this parse.
type Share struct {
	Day  int
	Rows []string
}

// Parse reads a share transcript. The header is a literal "Wordle" marker and
// a puzzle day number; a single-line share summary carries its first feedback
// row on the header line itself, detected by the presence of a colon.
// Subsequent non-empty lines are one feedback row each.
func Parse(r io.Reader) (*Share, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotShare
	}
	day, row, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}
	share := &Share{Day: day}
	if row != "" {
		share.Rows = append(share.Rows, row)
	}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		share.Rows = append(share.Rows, line)
	}
	return share, sc.Err()
}

func parseHeader(line string) (day int, row string, err error) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 3)
	if len(fields) < 2 || fields[0] != headerMarker {
		return 0, "", ErrNotShare
	}
	day, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, "", fmt.Errorf("%w: bad puzzle number %q", ErrNotShare, fields[1])
	}
	// A one-line summary embeds the first feedback row right after the
	// "n/6" result, e.g. "Wordle 232 6/6:black_large_square:...".
	if i := strings.IndexByte(line, ':'); i >= 0 {
		row = line[i:]
	}
	return day, row, nil
}
