package model

import (
	"errors"
	"fmt"
)

// GameState is the derived state of the game as a whole, recomputed for the
// side to move after every accepted move.
type GameState string

const (
	StateOngoing   GameState = "ongoing"
	StateCheck     GameState = "check"
	StateCheckmate GameState = "checkmate"
	StateStalemate GameState = "stalemate"
	StateDraw      GameState = "draw"
)

var (
	// ErrGameOver is returned for moves submitted after a terminal state.
	ErrGameOver = errors.New("game is over")
	// ErrWrongTurn is returned when the moved piece is not the side to move.
	ErrWrongTurn = errors.New("not your turn")
)

// halfMoveDrawLimit is the fifty-move rule expressed in plies.
const halfMoveDrawLimit = 100

// Game owns exactly one Board plus turn order on top of it. It is the only
// writer of its board; callers drive it from a single goroutine.
type Game struct {
	board     *Board
	toMove    Color
	state     GameState
	moveCount int
}

// NewGame starts a fresh game from the standard initial position, White to
// move.
func NewGame() *Game {
	return &Game{board: NewBoard(), toMove: White, state: StateOngoing}
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) ToMove() Color {
	return g.toMove
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) MoveCount() int {
	return g.moveCount
}

// MakeMove applies m for the side to move. Rejections leave the game
// untouched; callers are expected to retry with a different move.
func (g *Game) MakeMove(m Move) error {
	if g.state != StateOngoing && g.state != StateCheck {
		return ErrGameOver
	}
	p := g.board.Piece(m.From)
	if p == nil {
		return ErrNoPiece
	}
	if p.Color != g.toMove {
		return ErrWrongTurn
	}
	if err := g.board.MakeMove(m); err != nil {
		return err
	}
	g.moveCount++
	g.toMove = g.toMove.Opponent()
	g.updateState()
	return nil
}

// MakeMoveFromAlgebraic parses two algebraic squares and an optional
// promotion letter, rebuilds the fully-flagged move by matching against the
// source piece's pseudo-legal moves (so castling and en-passant flags
// survive the trip through notation), and forwards to MakeMove. Malformed
// notation fails without mutating anything.
func (g *Game) MakeMoveFromAlgebraic(from, to, promotion string) error {
	fromSq, err := SquareFromAlgebraic(from)
	if err != nil {
		return err
	}
	toSq, err := SquareFromAlgebraic(to)
	if err != nil {
		return err
	}
	var promo PieceType
	if promotion != "" {
		promo, err = PromotionFromLetter(promotion)
		if err != nil {
			return err
		}
	}
	move := Move{From: fromSq, To: toSq, Promotion: promo}
	for _, m := range PseudoLegalMoves(g.board, fromSq) {
		if m.To == toSq && m.Promotion == promo {
			move = m
			break
		}
	}
	return g.MakeMove(move)
}

// LegalMoves enumerates the legal moves of the side to move.
func (g *Game) LegalMoves() []Move {
	return g.board.LegalMoves(g.toMove)
}

func (g *Game) updateState() {
	switch {
	case g.board.IsCheckmate(g.toMove):
		g.state = StateCheckmate
	case g.board.IsStalemate(g.toMove):
		g.state = StateStalemate
	case g.board.IsInCheck(g.toMove):
		g.state = StateCheck
	case g.board.halfMoveClock >= halfMoveDrawLimit:
		g.state = StateDraw
	default:
		g.state = StateOngoing
	}
}

// Status is a human-readable one-liner for front-ends.
func (g *Game) Status() string {
	switch g.state {
	case StateCheckmate:
		return fmt.Sprintf("Checkmate! %s wins.", g.toMove.Opponent())
	case StateStalemate:
		return "Stalemate. The game is a draw."
	case StateDraw:
		return "Draw by the fifty-move rule."
	case StateCheck:
		return fmt.Sprintf("%s is in check.", g.toMove)
	default:
		return fmt.Sprintf("%s to move.", g.toMove)
	}
}
