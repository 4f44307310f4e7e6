package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is returned when square coordinates fall outside the board.
	ErrOutOfRange = errors.New("square out of range")
	// ErrInvalidNotation is returned for malformed algebraic input.
	ErrInvalidNotation = errors.New("invalid algebraic notation")
)

// Square is an immutable board coordinate. Row 0 is Black's back rank and
// row 7 is White's; col 0 is the a-file.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewSquare validates the coordinates at construction time.
func NewSquare(row, col int) (Square, error) {
	if !inBounds(row, col) {
		return Square{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	return Square{Row: row, Col: col}, nil
}

func inBounds(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

// Algebraic renders the square as file letter plus rank digit, e.g. "e4".
func (s Square) Algebraic() string {
	return fmt.Sprintf("%c%d", 'a'+s.Col, 8-s.Row)
}

func (s Square) String() string {
	return s.Algebraic()
}

// SquareFromAlgebraic parses two-character algebraic notation. The file
// letter is accepted in either case; the engine always emits lowercase.
func SquareFromAlgebraic(notation string) (Square, error) {
	if len(notation) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}
	n := strings.ToLower(notation)
	col := int(n[0] - 'a')
	rank := int(n[1] - '0')
	if col < 0 || col > 7 || rank < 1 || rank > 8 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}
	return Square{Row: 8 - rank, Col: col}, nil
}
