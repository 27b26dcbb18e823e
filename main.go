package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jallain/hindsight/analysis"
	"github.com/jallain/hindsight/config"
	"github.com/jallain/hindsight/report"
	"github.com/jallain/hindsight/score"
	"github.com/jallain/hindsight/shell"
	"github.com/jallain/hindsight/transcript"
	"github.com/jallain/hindsight/words"
)

func usage(w io.Writer) {
	io.WriteString(w, "usage: hindsight <command> [args]\n")
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "filter <word> <feedback> [-x] - list every target that would give <feedback> for <word>\n")
	io.WriteString(w, "    -x searches the accepted-guess list in addition to the answers\n")
	io.WriteString(w, "analyse [-x] - read a Wordle share from stdin and analyse each round\n")
	io.WriteString(w, "    -x widens the candidate-target universe to the full corpus\n")
	io.WriteString(w, "shell - interactive mode\n")
}

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	cfg := &config.Config{}
	if err := cfg.Load(); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if cfg.AnswersFile != "" || cfg.AcceptedFile != "" {
		if err := words.LoadFiles(cfg.AnswersFile, cfg.AcceptedFile); err != nil {
			log.Fatal().Err(err).Msg("loading word lists")
		}
	}

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "filter":
		err = runFilter(cfg, os.Args[2:])
	case "analyse", "analyze":
		err = runAnalyse(cfg, os.Args[2:])
	case "shell":
		err = runShell(cfg)
	case "help":
		usage(os.Stdout)
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runFilter(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	extend := fs.Bool("x", cfg.Extend, "search the accepted-guess list as well")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: filter <word> <feedback> [-x]")
	}
	w, err := words.Parse(fs.Arg(0))
	if err != nil {
		return err
	}
	st, err := score.ParseStatus(fs.Arg(1))
	if err != nil {
		return err
	}
	for _, match := range analysis.Filter(w, st, *extend) {
		fmt.Println(match)
	}
	return nil
}

func runAnalyse(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("analyse", flag.ExitOnError)
	extend := fs.Bool("x", cfg.Extend, "widen the candidate-target universe to the full corpus")
	if err := fs.Parse(args); err != nil {
		return err
	}
	share, err := transcript.Parse(os.Stdin)
	if err != nil {
		return err
	}
	target, err := words.AnswerForDay(share.Day)
	if err != nil {
		return err
	}
	log.Debug().Int("day", share.Day).Str("target", target.String()).Msg("analysing share")
	universe := words.Answers()
	if *extend {
		universe = words.All()
	}
	an := analysis.New(target, words.All(), universe)
	rows, err := an.Analyse(share.Rows)
	if err != nil {
		return err
	}
	r := &report.Reporter{W: os.Stdout, Verbose: cfg.Verbose}
	return r.Report(rows)
}

func runShell(cfg *config.Config) error {
	sc, err := shell.NewShellController(cfg)
	if err != nil {
		return err
	}
	sc.Loop()
	return nil
}
