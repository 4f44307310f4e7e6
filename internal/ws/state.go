package ws

import "github.com/castlelight/chesscore/internal/model"

// GameStatePayload is the render view of a game, assembled exclusively from
// the engine's read accessors.
type GameStatePayload struct {
	Board           [8][8]*PieceView `json:"board"`
	ToMove          model.Color      `json:"toMove"`
	GameState       model.GameState  `json:"gameState"`
	IsCheck         bool             `json:"isCheck"`
	MoveHistory     []string         `json:"moveHistory"`
	CapturedPieces  []PieceView      `json:"capturedPieces"`
	EnPassantTarget *string          `json:"enPassantTarget"`
	HalfMoveClock   int              `json:"halfMoveClock"`
	FullMoveNumber  int              `json:"fullMoveNumber"`
	Status          string           `json:"status"`
}

// NewGameStatePayload snapshots g for rendering.
func NewGameStatePayload(g *model.Game) GameStatePayload {
	board := g.Board()

	payload := GameStatePayload{
		ToMove:         g.ToMove(),
		GameState:      g.State(),
		IsCheck:        board.IsInCheck(g.ToMove()),
		MoveHistory:    make([]string, 0, g.MoveCount()),
		HalfMoveClock:  board.HalfMoveClock(),
		FullMoveNumber: board.FullMoveNumber(),
		Status:         g.Status(),
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := board.Piece(model.Square{Row: row, Col: col})
			if p == nil {
				continue
			}
			payload.Board[row][col] = &PieceView{Type: p.Type, Color: p.Color, HasMoved: p.HasMoved}
		}
	}
	for _, m := range board.MoveHistory() {
		payload.MoveHistory = append(payload.MoveHistory, m.String())
	}
	for _, p := range board.CapturedPieces() {
		payload.CapturedPieces = append(payload.CapturedPieces, PieceView{Type: p.Type, Color: p.Color, HasMoved: p.HasMoved})
	}
	if target := board.EnPassantTarget(); target != nil {
		notation := target.Algebraic()
		payload.EnPassantTarget = &notation
	}
	return payload
}
