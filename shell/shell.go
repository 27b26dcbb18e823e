// Package shell is an interactive front end over the filter and analysis
// operations.
package shell

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/jallain/hindsight/analysis"
	"github.com/jallain/hindsight/config"
	"github.com/jallain/hindsight/report"
	"github.com/jallain/hindsight/score"
	"github.com/jallain/hindsight/transcript"
	"github.com/jallain/hindsight/words"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "\033[31mhindsight>\033[0m ",
		HistoryFile: "/tmp/hindsight_readline.tmp",
		EOFPrompt:   "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return &ShellController{l: l, cfg: cfg}, nil
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "filter <word> <feedback> [x] - list targets giving <feedback> for <word>; x searches the full corpus\n")
	io.WriteString(w, "analyse <path/to/share> - analyse a saved share transcript\n")
	io.WriteString(w, "score <guess> <target> - show the feedback for a guess\n")
	io.WriteString(w, "day <n> - show the answer for puzzle day n\n")
	io.WriteString(w, "suggest - pick a random word from the corpus\n")
	io.WriteString(w, "exit\n")
}

func (sc *ShellController) showMessage(msg string) {
	fmt.Fprintln(sc.l.Stdout(), msg)
}

func (sc *ShellController) showError(err error) {
	fmt.Fprintln(sc.l.Stderr(), "Error: "+err.Error())
}

func (sc *ShellController) Loop() {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "bye" {
			break
		}
		if err := sc.dispatch(line); err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msg("exiting readline loop...")
}

func (sc *ShellController) dispatch(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "help":
		usage(sc.l.Stderr())

	case "filter":
		if len(fields) < 3 {
			return fmt.Errorf("usage: filter <word> <feedback> [x]")
		}
		w, err := words.Parse(fields[1])
		if err != nil {
			return err
		}
		st, err := score.ParseStatus(fields[2])
		if err != nil {
			return err
		}
		extend := sc.cfg.Extend || (len(fields) > 3 && fields[3] == "x")
		for _, match := range analysis.Filter(w, st, extend) {
			sc.showMessage(match.String())
		}

	case "analyse":
		if len(fields) != 2 {
			return fmt.Errorf("usage: analyse <path/to/share>")
		}
		f, err := os.Open(fields[1])
		if err != nil {
			return err
		}
		defer f.Close()
		share, err := transcript.Parse(f)
		if err != nil {
			return err
		}
		target, err := words.AnswerForDay(share.Day)
		if err != nil {
			return err
		}
		universe := words.Answers()
		if sc.cfg.Extend {
			universe = words.All()
		}
		an := analysis.New(target, words.All(), universe)
		rows, err := an.Analyse(share.Rows)
		if err != nil {
			return err
		}
		r := &report.Reporter{W: sc.l.Stdout(), Verbose: sc.cfg.Verbose}
		return r.Report(rows)

	case "score":
		if len(fields) != 3 {
			return fmt.Errorf("usage: score <guess> <target>")
		}
		guess, err := words.Parse(fields[1])
		if err != nil {
			return err
		}
		target, err := words.Parse(fields[2])
		if err != nil {
			return err
		}
		sc.showMessage(score.Score(guess, target).String())

	case "day":
		if len(fields) != 2 {
			return fmt.Errorf("usage: day <n>")
		}
		day, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		w, err := words.AnswerForDay(day)
		if err != nil {
			return err
		}
		sc.showMessage(w.String())

	case "suggest":
		pool := words.All()
		sc.showMessage(pool[frand.Intn(len(pool))].String())

	default:
		return fmt.Errorf("unknown command %q, try help", fields[0])
	}
	return nil
}
