package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPiece is returned when the source square of a move is empty.
	ErrNoPiece = errors.New("no piece at source square")
	// ErrIllegalMove is returned when the piece cannot produce the move.
	ErrIllegalMove = errors.New("move is not legal for the piece")
	// ErrKingInCheck is returned when a move would leave the mover's own
	// king attacked.
	ErrKingInCheck = errors.New("move leaves own king in check")
)

// Board is the mutable 8x8 state container: piece placement, move
// execution, attack detection and legality filtering. Each square owns at
// most one piece.
type Board struct {
	grid            [8][8]*Piece
	moveHistory     []Move
	captured        []*Piece
	enPassantTarget *Square
	halfMoveClock   int
	fullMoveNumber  int
}

var backRankLayout = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard sets up the standard initial position: Black on rows 0-1,
// White on rows 6-7.
func NewBoard() *Board {
	b := &Board{fullMoveNumber: 1}
	for col := 0; col < 8; col++ {
		b.grid[0][col] = NewPiece(backRankLayout[col], Black)
		b.grid[1][col] = NewPiece(Pawn, Black)
		b.grid[6][col] = NewPiece(Pawn, White)
		b.grid[7][col] = NewPiece(backRankLayout[col], White)
	}
	return b
}

// Piece returns the piece on sq, or nil.
func (b *Board) Piece(sq Square) *Piece {
	return b.grid[sq.Row][sq.Col]
}

// SetPiece places p on sq; nil clears the square.
func (b *Board) SetPiece(sq Square, p *Piece) {
	b.grid[sq.Row][sq.Col] = p
}

// MoveHistory returns the executed moves in order.
func (b *Board) MoveHistory() []Move {
	return append([]Move(nil), b.moveHistory...)
}

// CapturedPieces returns every piece captured so far, in capture order.
func (b *Board) CapturedPieces() []Piece {
	out := make([]Piece, 0, len(b.captured))
	for _, p := range b.captured {
		out = append(out, *p)
	}
	return out
}

// EnPassantTarget returns the square a pawn skipped on the previous ply,
// or nil when no en-passant capture is available.
func (b *Board) EnPassantTarget() *Square {
	if b.enPassantTarget == nil {
		return nil
	}
	t := *b.enPassantTarget
	return &t
}

func (b *Board) HalfMoveClock() int {
	return b.halfMoveClock
}

func (b *Board) FullMoveNumber() int {
	return b.fullMoveNumber
}

// MakeMove validates and executes m. On failure the board is untouched.
func (b *Board) MakeMove(m Move) error {
	p := b.Piece(m.From)
	if p == nil {
		return ErrNoPiece
	}
	if !containsMove(PseudoLegalMoves(b, m.From), m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	if b.wouldLeaveKingInCheck(m, p.Color) {
		return fmt.Errorf("%w: %s", ErrKingInCheck, m)
	}
	b.executeMove(m)
	return nil
}

func containsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}

// wouldLeaveKingInCheck simulates m on an independent clone and tests the
// mover's king. The clone is discarded immediately; it never shares mutable
// state with the live board.
func (b *Board) wouldLeaveKingInCheck(m Move, c Color) bool {
	clone := b.Clone()
	clone.executeMove(m)
	return clone.IsInCheck(c)
}

// Clone deep-copies the board: grid with per-piece copies, history,
// captured list, en-passant target and both counters.
func (b *Board) Clone() *Board {
	clone := &Board{
		halfMoveClock:  b.halfMoveClock,
		fullMoveNumber: b.fullMoveNumber,
	}
	for row := range b.grid {
		for col, p := range b.grid[row] {
			if p != nil {
				cp := *p
				clone.grid[row][col] = &cp
			}
		}
	}
	clone.moveHistory = append([]Move(nil), b.moveHistory...)
	if len(b.captured) > 0 {
		clone.captured = make([]*Piece, 0, len(b.captured))
		for _, p := range b.captured {
			cp := *p
			clone.captured = append(clone.captured, &cp)
		}
	}
	if b.enPassantTarget != nil {
		t := *b.enPassantTarget
		clone.enPassantTarget = &t
	}
	return clone
}

// executeMove applies m without validation. Callers must have validated m;
// a missing piece here is an invariant violation.
func (b *Board) executeMove(m Move) {
	p := b.Piece(m.From)
	if p == nil {
		panic(fmt.Sprintf("executeMove: no piece at %s", m.From))
	}
	movedType := p.Type
	captured := b.Piece(m.To)

	switch {
	case m.IsCastling:
		b.executeCastling(m)
	case m.IsEnPassant:
		captured = b.executeEnPassant(m)
	case m.Promotion != "":
		promoted := NewPiece(m.Promotion, p.Color)
		promoted.HasMoved = true
		b.SetPiece(m.To, promoted)
		b.SetPiece(m.From, nil)
	default:
		b.SetPiece(m.To, p)
		b.SetPiece(m.From, nil)
		p.HasMoved = true
	}

	if captured != nil {
		b.captured = append(b.captured, captured)
	}
	b.moveHistory = append(b.moveHistory, m)
	b.updateEnPassantTarget(m, movedType)
	b.updateMoveCounters(p.Color, movedType, captured != nil)
}

func (b *Board) executeCastling(m Move) {
	king := b.Piece(m.From)
	b.SetPiece(m.To, king)
	b.SetPiece(m.From, nil)
	king.HasMoved = true

	row := m.From.Row
	rookFrom := Square{Row: row, Col: 0}
	rookTo := Square{Row: row, Col: 3}
	if m.To.Col == 6 {
		rookFrom = Square{Row: row, Col: 7}
		rookTo = Square{Row: row, Col: 5}
	}
	rook := b.Piece(rookFrom)
	if rook == nil || rook.Type != Rook {
		panic(fmt.Sprintf("executeCastling: no rook at %s", rookFrom))
	}
	b.SetPiece(rookTo, rook)
	b.SetPiece(rookFrom, nil)
	rook.HasMoved = true
}

// executeEnPassant relocates the pawn and removes the victim, which sits on
// the origin's row and the destination's column, not on the destination.
func (b *Board) executeEnPassant(m Move) *Piece {
	pawn := b.Piece(m.From)
	b.SetPiece(m.To, pawn)
	b.SetPiece(m.From, nil)
	pawn.HasMoved = true

	victimSq := Square{Row: m.From.Row, Col: m.To.Col}
	victim := b.Piece(victimSq)
	if victim == nil {
		panic(fmt.Sprintf("executeEnPassant: no pawn at %s", victimSq))
	}
	b.SetPiece(victimSq, nil)
	return victim
}

// updateEnPassantTarget sets the skipped square after a double pawn push
// and clears it otherwise; the target lives for exactly one ply.
func (b *Board) updateEnPassantTarget(m Move, movedType PieceType) {
	b.enPassantTarget = nil
	if movedType != Pawn {
		return
	}
	if diff := m.To.Row - m.From.Row; diff == 2 || diff == -2 {
		t := Square{Row: (m.From.Row + m.To.Row) / 2, Col: m.To.Col}
		b.enPassantTarget = &t
	}
}

func (b *Board) updateMoveCounters(mover Color, movedType PieceType, capture bool) {
	if movedType == Pawn || capture {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
	if mover == Black {
		b.fullMoveNumber++
	}
}

// IsPositionUnderAttack reports whether any piece opposing defending can
// land a pseudo-legal move on sq.
func (b *Board) IsPositionUnderAttack(sq Square, defending Color) bool {
	attacker := defending.Opponent()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == nil || p.Color != attacker {
				continue
			}
			for _, m := range pseudoLegalMoves(b, Square{Row: row, Col: col}, true) {
				if m.To == sq {
					return true
				}
			}
		}
	}
	return false
}

// IsInCheck reports whether c's king square is attacked.
func (b *Board) IsInCheck(c Color) bool {
	kingSq, ok := b.findKing(c)
	if !ok {
		return false
	}
	return b.IsPositionUnderAttack(kingSq, c)
}

func (b *Board) findKing(c Color) (Square, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p != nil && p.Type == King && p.Color == c {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// LegalMoves enumerates every move of c that does not leave c's own king
// attacked. Each candidate is simulated on a clone, so this is an expensive
// call relative to the rest of the board API.
func (b *Board) LegalMoves(c Color) []Move {
	var legal []Move
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == nil || p.Color != c {
				continue
			}
			from := Square{Row: row, Col: col}
			for _, m := range PseudoLegalMoves(b, from) {
				if !b.wouldLeaveKingInCheck(m, c) {
					legal = append(legal, m)
				}
			}
		}
	}
	return legal
}

func (b *Board) IsCheckmate(c Color) bool {
	return b.IsInCheck(c) && len(b.LegalMoves(c)) == 0
}

func (b *Board) IsStalemate(c Color) bool {
	return !b.IsInCheck(c) && len(b.LegalMoves(c)) == 0
}
