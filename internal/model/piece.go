package model

import (
	"fmt"
	"strings"
)

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceType string

const (
	Pawn   PieceType = "pawn"
	Rook   PieceType = "rook"
	Knight PieceType = "knight"
	Bishop PieceType = "bishop"
	Queen  PieceType = "queen"
	King   PieceType = "king"
)

// Letter returns the notation letter for the piece type; pawns have none.
func (p PieceType) Letter() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// PromotionFromLetter maps a promotion letter (case-insensitive) to its
// piece type.
func PromotionFromLetter(letter string) (PieceType, error) {
	switch strings.ToUpper(letter) {
	case "Q":
		return Queen, nil
	case "R":
		return Rook, nil
	case "B":
		return Bishop, nil
	case "N":
		return Knight, nil
	}
	return "", fmt.Errorf("%w: promotion %q", ErrInvalidNotation, letter)
}

// Piece sits on at most one square of a Board. HasMoved flips exactly once,
// when the board first relocates the piece.
type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

func NewPiece(t PieceType, c Color) *Piece {
	return &Piece{Type: t, Color: c}
}
