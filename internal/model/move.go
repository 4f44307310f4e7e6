package model

// Move describes a source square, a destination square and the flags that
// change how the board executes it. A move never knows whether it is legal;
// legality is the Board's judgment.
type Move struct {
	From        Square    `json:"from"`
	To          Square    `json:"to"`
	Promotion   PieceType `json:"promotion,omitempty"`
	IsCastling  bool      `json:"isCastling,omitempty"`
	IsEnPassant bool      `json:"isEnPassant,omitempty"`
}

// String renders "<from><to>", with "=<letter>" appended for promotions.
func (m Move) String() string {
	s := m.From.Algebraic() + m.To.Algebraic()
	if m.Promotion != "" {
		s += "=" + m.Promotion.Letter()
	}
	return s
}
