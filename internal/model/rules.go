package model

// Pseudo-legal move generation, one generator per piece kind. Pseudo-legal
// means obeying movement geometry and occupancy only; whether a move leaves
// its own king attacked is the Board's legality filter, one layer up.

type delta struct {
	dr, dc int
}

var (
	orthogonalDirs = []delta{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonalDirs   = []delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs      = []delta{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightOffsets  = []delta{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = []delta{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// promotionOrder is the fixed expansion order for back-rank pawn moves.
var promotionOrder = []PieceType{Queen, Rook, Bishop, Knight}

// PseudoLegalMoves returns every move the piece on from could make by
// geometry and occupancy alone. Returns nil when the square is empty.
func PseudoLegalMoves(b *Board, from Square) []Move {
	return pseudoLegalMoves(b, from, false)
}

// forAttack suppresses castling generation. Attack scans must not generate
// castling: it can never capture, and producing it would recurse through
// the opposing king's own castling safety checks.
func pseudoLegalMoves(b *Board, from Square, forAttack bool) []Move {
	p := b.Piece(from)
	if p == nil {
		return nil
	}
	switch p.Type {
	case Pawn:
		return pawnMoves(b, p, from)
	case Rook:
		return slideMoves(b, p, from, orthogonalDirs)
	case Bishop:
		return slideMoves(b, p, from, diagonalDirs)
	case Queen:
		return slideMoves(b, p, from, queenDirs)
	case Knight:
		return leapMoves(b, p, from, knightOffsets)
	case King:
		return kingMoves(b, p, from, forAttack)
	}
	return nil
}

func pawnMoves(b *Board, p *Piece, from Square) []Move {
	var moves []Move
	dir := -1 // White advances toward row 0
	if p.Color == Black {
		dir = 1
	}
	row := from.Row + dir

	// Forward pushes, destination must be empty.
	if inBounds(row, from.Col) && b.grid[row][from.Col] == nil {
		moves = append(moves, expandPromotions(p, from, Square{Row: row, Col: from.Col})...)
		twoRow := row + dir
		if !p.HasMoved && inBounds(twoRow, from.Col) && b.grid[twoRow][from.Col] == nil {
			moves = append(moves, Move{From: from, To: Square{Row: twoRow, Col: from.Col}})
		}
	}

	// Diagonals are generated as captures only: an enemy piece, or the
	// en-passant target square.
	for _, dc := range []int{-1, 1} {
		col := from.Col + dc
		if !inBounds(row, col) {
			continue
		}
		to := Square{Row: row, Col: col}
		target := b.grid[row][col]
		switch {
		case target != nil && target.Color != p.Color:
			moves = append(moves, expandPromotions(p, from, to)...)
		case target == nil && b.enPassantTarget != nil && *b.enPassantTarget == to:
			moves = append(moves, Move{From: from, To: to, IsEnPassant: true})
		}
	}
	return moves
}

// expandPromotions turns a pawn move that reaches the opponent's back rank
// into the four promotion moves, in fixed order.
func expandPromotions(p *Piece, from, to Square) []Move {
	backRank := 0
	if p.Color == Black {
		backRank = 7
	}
	if to.Row != backRank {
		return []Move{{From: from, To: to}}
	}
	moves := make([]Move, 0, len(promotionOrder))
	for _, t := range promotionOrder {
		moves = append(moves, Move{From: from, To: to, Promotion: t})
	}
	return moves
}

// slideMoves ray-casts along dirs until the board edge, an own piece (stop,
// excluded) or an enemy piece (stop, included as capture).
func slideMoves(b *Board, p *Piece, from Square, dirs []delta) []Move {
	var moves []Move
	for _, d := range dirs {
		row, col := from.Row+d.dr, from.Col+d.dc
		for inBounds(row, col) {
			target := b.grid[row][col]
			if target == nil {
				moves = append(moves, Move{From: from, To: Square{Row: row, Col: col}})
				row, col = row+d.dr, col+d.dc
				continue
			}
			if target.Color != p.Color {
				moves = append(moves, Move{From: from, To: Square{Row: row, Col: col}})
			}
			break
		}
	}
	return moves
}

func leapMoves(b *Board, p *Piece, from Square, offsets []delta) []Move {
	var moves []Move
	for _, d := range offsets {
		row, col := from.Row+d.dr, from.Col+d.dc
		if !inBounds(row, col) {
			continue
		}
		if target := b.grid[row][col]; target == nil || target.Color != p.Color {
			moves = append(moves, Move{From: from, To: Square{Row: row, Col: col}})
		}
	}
	return moves
}

func kingMoves(b *Board, p *Piece, from Square, forAttack bool) []Move {
	moves := leapMoves(b, p, from, kingOffsets)
	if forAttack || p.HasMoved {
		return moves
	}
	if b.IsPositionUnderAttack(from, p.Color) {
		return moves
	}
	if m, ok := castlingMove(b, p, from, 7); ok {
		moves = append(moves, m)
	}
	if m, ok := castlingMove(b, p, from, 0); ok {
		moves = append(moves, m)
	}
	return moves
}

// castlingMove offers castling with the rook on rookCol when the rook is in
// place and unmoved, every square strictly between king and rook is empty,
// and every square the king traverses (midpoint and destination) is safe.
// The caller has already established that the king is unmoved and not
// currently attacked.
func castlingMove(b *Board, king *Piece, from Square, rookCol int) (Move, bool) {
	rook := b.grid[from.Row][rookCol]
	if rook == nil || rook.Type != Rook || rook.Color != king.Color || rook.HasMoved {
		return Move{}, false
	}
	lo, hi := from.Col, rookCol
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		if b.grid[from.Row][col] != nil {
			return Move{}, false
		}
	}
	step := 1
	if rookCol < from.Col {
		step = -1
	}
	dest := from.Col + 2*step
	for col := from.Col + step; ; col += step {
		if b.IsPositionUnderAttack(Square{Row: from.Row, Col: col}, king.Color) {
			return Move{}, false
		}
		if col == dest {
			break
		}
	}
	return Move{From: from, To: Square{Row: from.Row, Col: dest}, IsCastling: true}, true
}
