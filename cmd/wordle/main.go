// cmd/wordle — the hidden-word side, for playing against the solver
// (or a human). Picks a random word, reads guesses, and answers with
// per-letter feedback: colored tiles on a terminal, compact x/v/o in
// -quiet mode. An optional positional argument fixes the hidden word
// for debugging.

package main

import (
	"bufio"
	"crypto/rand"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vyevs/ansi"

	"github.com/gnossen/wordle-solver/internal/game"
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

	answer := flag.Arg(0)
	if answer == "" {
		answer = randomWord(vocab)
	}
	g, err := game.New(answer)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid hidden word")
	}

	prompt := "> "
	if *quiet {
		prompt = ""
	}

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !sc.Scan() {
			break
		}
		cmd := strings.ToLower(strings.TrimSpace(sc.Text()))
		switch cmd {
		case "help":
			printHelp(*wordLen)
		case "quit", "exit":
			return
		case "giveup":
			fmt.Println(g.Answer)
		default:
			fb, _, err := g.ApplyGuess(cmd)
			if err != nil {
				if *quiet {
					fmt.Println("n/a")
				} else {
					printHelp(*wordLen)
				}
				continue
			}
			printFeedback(cmd, fb, *quiet)
			if *quiet && fb.AllHit() {
				// Machine-parsable signal that the game is over.
				os.Exit(1)
			}
		}
	}
}

// printFeedback renders feedback as colored letters on a terminal, or
// as the compact x/v/o line in quiet mode.
func printFeedback(guess string, fb solver.Feedback, quiet bool) {
	if quiet {
		fmt.Println(fb.String())
		return
	}
	var b strings.Builder
	for i, m := range fb {
		switch m {
		case solver.MarkHit:
			b.WriteString(ansi.FGColorName("green"))
		case solver.MarkPresent:
			b.WriteString(ansi.FGColorName("yellow"))
		default:
			b.WriteString(ansi.FGColorName("light gray"))
		}
		b.WriteByte(guess[i])
	}
	b.WriteString(ansi.Clear)
	fmt.Printf("%s  %s\n", b.String(), fb)
}

func printHelp(wordLen int) {
	fmt.Printf("Type a %d letter long word.\n", wordLen)
	fmt.Printf("You will be given a %d letter-long string in return.\n", wordLen)
	fmt.Println("In this string, each letter indicates the following:")
	fmt.Println("- X to indicate a missed letter")
	fmt.Println("- V to indicate the letter is in the word but in the incorrect place")
	fmt.Println("- O to indicate a correctly placed letter")
	fmt.Println()
	fmt.Println("If the word is invalid, help is printed again.")
	fmt.Println("Type giveup to reveal the hidden word.")
}

// randomWord picks a uniformly random word from vocab.
func randomWord(vocab []string) string {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(vocab))))
	return vocab[nBig.Int64()]
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
