package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/quoridor/model"
)

const help = `commands:
  m ROW COL   move the pawn
  h ROW COL   horizontal fence anchored at post ROW COL
  v ROW COL   vertical fence anchored at post ROW COL
  ?           list legal destinations
  q           quit`

func main() {
	if s := os.Getenv("QUORIDOR_LOG_LEVEL"); s != "" {
		level, err := log.ParseLevel(s)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(level)
	}
	if err := play(model.NewGame(), os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// play runs a hot-seat session: each line is a command for whoever is to move.
func play(g *model.Game, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, help)
	fmt.Fprint(out, g.String())
	prompt(g, out)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
		case "q", "quit":
			return nil
		case "?":
			for _, c := range g.LegalDestinations(g.Turn()) {
				fmt.Fprintf(out, "%s ", c)
			}
			fmt.Fprintln(out)
		default:
			cmd, err := model.ParseCommand(line)
			if err != nil {
				fmt.Fprintln(out, err)
				break
			}
			p := g.Turn()
			if ok, reason := g.Apply(p, cmd); !ok {
				fmt.Fprintf(out, "%s rejected: %s\n", cmd, reason.Name())
				break
			}
			fmt.Fprint(out, g.String())
			if g.Status() == model.WON {
				fmt.Fprintf(out, "%s wins\n", g.Winner().Name())
				return nil
			}
		}
		prompt(g, out)
	}
	return scanner.Err()
}

func prompt(g *model.Game, out io.Writer) {
	p := g.Turn()
	fmt.Fprintf(out, "%s (%d fences)> ", p.Name(), g.FencesRemaining(p))
}
