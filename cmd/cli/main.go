package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/castlelight/chesscore/internal/model"
	"github.com/fatih/color"
)

var showMoves = flag.Bool("moves", false, "list legal moves before every prompt")

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold)
	blackPiece = color.New(color.FgHiRed, color.Bold)
	boardFrame = color.New(color.FgHiBlack)
)

func main() {
	flag.Parse()

	game := model.NewGame()
	scanner := bufio.NewScanner(os.Stdin)
	draw(game)

	for game.State() == model.StateOngoing || game.State() == model.StateCheck {
		if *showMoves {
			printMoves(game)
		}
		fmt.Printf("%s> ", game.ToMove())
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		case "moves":
			printMoves(game)
			continue
		case "history":
			printHistory(game)
			continue
		}

		from, to, promotion, err := parseInput(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if err := game.MakeMoveFromAlgebraic(from, to, promotion); err != nil {
			fmt.Println("rejected:", err)
			continue
		}
		draw(game)
	}

	fmt.Println(game.Status())
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

// parseInput accepts "e2e4", "e2 e4", "e7e8q" and "e7e8 q" forms, with an
// optional "=" before the promotion letter.
func parseInput(line string) (from, to, promotion string, err error) {
	compact := strings.NewReplacer(" ", "", "=", "").Replace(line)
	if len(compact) != 4 && len(compact) != 5 {
		return "", "", "", fmt.Errorf("expected a move like e2e4 or e7e8q, got %q", line)
	}
	from, to = compact[:2], compact[2:4]
	if len(compact) == 5 {
		promotion = compact[4:]
	}
	return from, to, promotion, nil
}

func draw(g *model.Game) {
	board := g.Board()
	boardFrame.Println("    a b c d e f g h")
	for row := 0; row < 8; row++ {
		boardFrame.Printf("  %d ", 8-row)
		for col := 0; col < 8; col++ {
			p := board.Piece(model.Square{Row: row, Col: col})
			if p == nil {
				boardFrame.Print(". ")
				continue
			}
			letter := p.Type.Letter()
			if letter == "" {
				letter = "P"
			}
			if p.Color == model.White {
				whitePiece.Print(letter + " ")
			} else {
				blackPiece.Print(letter + " ")
			}
		}
		boardFrame.Printf("%d\n", 8-row)
	}
	boardFrame.Println("    a b c d e f g h")
	if g.State() != model.StateOngoing {
		fmt.Println(g.Status())
	}
}

func printMoves(g *model.Game) {
	moves := g.LegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	fmt.Println(strings.Join(out, " "))
}

func printHistory(g *model.Game) {
	history := g.Board().MoveHistory()
	var sb strings.Builder
	for i, m := range history {
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. %s", i/2+1, m)
		} else {
			fmt.Fprintf(&sb, " %s  ", m)
		}
	}
	fmt.Println(strings.TrimSpace(sb.String()))
}
