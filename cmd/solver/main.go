// cmd/solver — interactive solver REPL.
//
// Suggests the guess expected to eliminate the most candidate words,
// reads x/v/o feedback lines, and narrows the vocabulary until the
// hidden word falls out. Commands:
//   help       show feedback syntax
//   n/a        the last suggestion is not a recognized word
//   list       dump the remaining ranking
//   debug      dump the accumulated constraints
//   ooooo      celebrate (the word was found)
//   quit/exit  leave
//
// -quiet makes output machine-parsable: bare words, no prompt.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gnossen/wordle-solver/internal/solver"
	"github.com/gnossen/wordle-solver/internal/words"
)

func main() {
	quiet := flag.Bool("quiet", false, "output much less, suitable for machine parsing")
	wordLen := flag.Int("len", 5, "word length")
	flag.Parse()

	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	vocab, err := words.FromEnv(*wordLen)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	cfg := solver.DefaultConfig()
	cfg.WordLen = *wordLen
	s, err := solver.New(cfg, vocab)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build solver")
	}

	prompt := "> "
	if *quiet {
		prompt = ""
	}

	printCandidate(s, *quiet)
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !sc.Scan() {
			break
		}
		cmd := strings.ToLower(strings.TrimSpace(sc.Text()))
		switch cmd {
		case "help":
			printHelp()
		case "quit", "exit":
			return
		case "n/a":
			if err := s.Invalidate(s.Best().Word); err != nil {
				log.Fatal().Err(err).Msg("no candidate words remaining")
			}
			printCandidate(s, *quiet)
		case "list":
			for _, c := range s.Ranked() {
				fmt.Println(c.Word)
			}
		case "debug":
			fmt.Println(s.Prior())
		case strings.Repeat("o", *wordLen):
			if *quiet {
				fmt.Println()
			} else {
				fmt.Println("🎉🎉 Yay! 🎉🎉")
			}
		default:
			fb, err := solver.ParseFeedback(cmd, *wordLen)
			if err != nil {
				printHelp()
				continue
			}
			if err := s.ApplyFeedback(s.Best().Word, fb); err != nil {
				log.Fatal().Err(err).Msg("cannot continue")
			}
			printCandidate(s, *quiet)
		}
	}
}

func printCandidate(s *solver.Solver, quiet bool) {
	best := s.Best()
	if quiet {
		fmt.Println(best.Word)
		return
	}
	fmt.Printf("%s predicted to eliminate %.1f words. %d remaining.\n",
		best.Word, best.Score, s.Remaining())
}

func printHelp() {
	fmt.Println("Normal feedback includes the following:")
	fmt.Println("- X to indicate a missed letter")
	fmt.Println("- V to indicate the letter is in the word but in the incorrect place")
	fmt.Println("- O to indicate a correctly placed letter")
	fmt.Println()
	fmt.Println("If the word is not in the wordle dictionary, type N/A to generate a new suggestion.")
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
