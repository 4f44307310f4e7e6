package model

import (
	"errors"
	"testing"
)

func TestGameOpeningScenario(t *testing.T) {
	t.Parallel()
	g := NewGame()

	steps := []struct {
		from, to string
		mover    Color
	}{
		{"e2", "e4", White},
		{"e7", "e5", Black},
		{"g1", "f3", White},
	}
	for _, step := range steps {
		if g.ToMove() != step.mover {
			t.Fatalf("before %s%s: to move = %s, want %s", step.from, step.to, g.ToMove(), step.mover)
		}
		if err := g.MakeMoveFromAlgebraic(step.from, step.to, ""); err != nil {
			t.Fatalf("move %s%s rejected: %v", step.from, step.to, err)
		}
	}

	if g.ToMove() != Black {
		t.Errorf("to move = %s, want black", g.ToMove())
	}
	if g.State() != StateOngoing {
		t.Errorf("state = %s, want ongoing", g.State())
	}
	if g.MoveCount() != 3 {
		t.Errorf("move count = %d, want 3", g.MoveCount())
	}
	if len(g.LegalMoves()) == 0 {
		t.Error("Black must have legal moves in this position")
	}
	if g.Board().FullMoveNumber() != 2 {
		t.Errorf("full-move number = %d, want 2", g.Board().FullMoveNumber())
	}
}

func TestGameRejectsWrongTurn(t *testing.T) {
	t.Parallel()
	g := NewGame()

	err := g.MakeMove(Move{From: sq("e7"), To: sq("e5")})
	if !errors.Is(err, ErrWrongTurn) {
		t.Fatalf("Black moving first: err = %v, want ErrWrongTurn", err)
	}
	if g.ToMove() != White || g.MoveCount() != 0 {
		t.Error("rejected move must not advance the turn")
	}
}

func TestGameRejectsMoveFromEmptySquare(t *testing.T) {
	t.Parallel()
	g := NewGame()
	if err := g.MakeMove(Move{From: sq("e4"), To: sq("e5")}); !errors.Is(err, ErrNoPiece) {
		t.Errorf("err = %v, want ErrNoPiece", err)
	}
}

func TestGameCheckState(t *testing.T) {
	t.Parallel()
	g := NewGame()

	for _, mv := range [][2]string{{"e2", "e4"}, {"f7", "f5"}, {"d1", "h5"}} {
		if err := g.MakeMoveFromAlgebraic(mv[0], mv[1], ""); err != nil {
			t.Fatalf("move %s%s rejected: %v", mv[0], mv[1], err)
		}
	}
	if g.State() != StateCheck {
		t.Fatalf("state = %s, want check", g.State())
	}

	// A move that ignores the check is rejected, a block is accepted.
	if err := g.MakeMoveFromAlgebraic("a7", "a6", ""); !errors.Is(err, ErrKingInCheck) {
		t.Errorf("ignoring check: err = %v, want ErrKingInCheck", err)
	}
	if err := g.MakeMoveFromAlgebraic("g7", "g6", ""); err != nil {
		t.Fatalf("blocking the check rejected: %v", err)
	}
	if g.State() != StateOngoing {
		t.Errorf("state = %s after the block, want ongoing", g.State())
	}
}

func TestGameCheckmateEndsGame(t *testing.T) {
	t.Parallel()
	g := NewGame()

	for _, mv := range [][2]string{{"f2", "f3"}, {"e7", "e5"}, {"g2", "g4"}, {"d8", "h4"}} {
		if err := g.MakeMoveFromAlgebraic(mv[0], mv[1], ""); err != nil {
			t.Fatalf("move %s%s rejected: %v", mv[0], mv[1], err)
		}
	}
	if g.State() != StateCheckmate {
		t.Fatalf("state = %s, want checkmate", g.State())
	}
	if err := g.MakeMoveFromAlgebraic("e2", "e4", ""); !errors.Is(err, ErrGameOver) {
		t.Errorf("moving after checkmate: err = %v, want ErrGameOver", err)
	}
}

func TestGameStalemateState(t *testing.T) {
	t.Parallel()
	b := emptyBoard()
	place(b, "a8", King, Black)
	place(b, "c7", Queen, White)
	place(b, "b7", King, White) // a step away from b6
	g := &Game{board: b, toMove: White, state: StateOngoing}

	if err := g.MakeMoveFromAlgebraic("b7", "b6", ""); err != nil {
		t.Fatalf("king retreat rejected: %v", err)
	}
	if g.State() != StateStalemate {
		t.Errorf("state = %s, want stalemate", g.State())
	}
}

func TestGameFiftyMoveDraw(t *testing.T) {
	t.Parallel()
	g := NewGame()

	// 25 rounds of knight shuffling: 100 half-moves with no pawn move or
	// capture.
	shuffle := [][2]string{{"g1", "f3"}, {"g8", "f6"}, {"f3", "g1"}, {"f6", "g8"}}
	for round := 0; round < 25; round++ {
		for _, mv := range shuffle {
			if err := g.MakeMoveFromAlgebraic(mv[0], mv[1], ""); err != nil {
				t.Fatalf("round %d: move %s%s rejected: %v", round, mv[0], mv[1], err)
			}
		}
	}

	if g.Board().HalfMoveClock() != 100 {
		t.Fatalf("half-move clock = %d, want 100", g.Board().HalfMoveClock())
	}
	if g.State() != StateDraw {
		t.Fatalf("state = %s, want draw", g.State())
	}
	if err := g.MakeMoveFromAlgebraic("e2", "e4", ""); !errors.Is(err, ErrGameOver) {
		t.Errorf("moving after the draw: err = %v, want ErrGameOver", err)
	}
}

func TestGamePromotionViaNotation(t *testing.T) {
	t.Parallel()
	b := emptyBoard()
	place(b, "a7", Pawn, White)
	place(b, "h1", King, White)
	place(b, "f5", King, Black)
	g := &Game{board: b, toMove: White, state: StateOngoing}

	// A back-rank push without a promotion letter cannot match any
	// generated move.
	if err := g.MakeMoveFromAlgebraic("a7", "a8", ""); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("promotion without letter: err = %v, want ErrIllegalMove", err)
	}
	if err := g.MakeMoveFromAlgebraic("a7", "a8", "x"); !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("bad promotion letter: err = %v, want ErrInvalidNotation", err)
	}
	if err := g.MakeMoveFromAlgebraic("a7", "a8", "n"); err != nil {
		t.Fatalf("underpromotion rejected: %v", err)
	}
	if p := g.Board().Piece(sq("a8")); p == nil || p.Type != Knight {
		t.Errorf("piece on a8 = %+v, want a knight", p)
	}
}

func TestGameCastlingViaNotation(t *testing.T) {
	t.Parallel()
	b := emptyBoard()
	place(b, "e1", King, White)
	place(b, "h1", Rook, White)
	place(b, "e8", King, Black)
	g := &Game{board: b, toMove: White, state: StateOngoing}

	// e1g1 carries no flags; matching against the king's pseudo-legal
	// moves must re-attach the castling flag.
	if err := g.MakeMoveFromAlgebraic("e1", "g1", ""); err != nil {
		t.Fatalf("castling via notation rejected: %v", err)
	}
	if p := g.Board().Piece(sq("f1")); p == nil || p.Type != Rook {
		t.Errorf("piece on f1 = %+v, want the castled rook", p)
	}
}

func TestGameMalformedNotationFailsSoftly(t *testing.T) {
	t.Parallel()
	g := NewGame()

	for _, tt := range [][2]string{{"i9", "e4"}, {"e2", "x4"}, {"e2e4", "e5"}, {"", "e4"}} {
		err := g.MakeMoveFromAlgebraic(tt[0], tt[1], "")
		if !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("MakeMoveFromAlgebraic(%q, %q): err = %v, want ErrInvalidNotation", tt[0], tt[1], err)
		}
	}
	if g.MoveCount() != 0 || g.ToMove() != White || len(g.Board().MoveHistory()) != 0 {
		t.Error("malformed notation must not mutate the game")
	}
}

func TestGameStatus(t *testing.T) {
	t.Parallel()
	g := NewGame()
	if got := g.Status(); got != "white to move." {
		t.Errorf("Status() = %q", got)
	}
}
