package model

// Test helpers for building positions directly.

func emptyBoard() *Board {
	return &Board{fullMoveNumber: 1}
}

func sq(notation string) Square {
	s, err := SquareFromAlgebraic(notation)
	if err != nil {
		panic(err)
	}
	return s
}

func place(b *Board, notation string, t PieceType, c Color) *Piece {
	p := NewPiece(t, c)
	b.SetPiece(sq(notation), p)
	return p
}

func movesFrom(moves []Move, from Square) []Move {
	var out []Move
	for _, m := range moves {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

func moveTargets(moves []Move) map[string]bool {
	targets := make(map[string]bool, len(moves))
	for _, m := range moves {
		targets[m.To.Algebraic()] = true
	}
	return targets
}
