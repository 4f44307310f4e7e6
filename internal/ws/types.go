package ws

import (
	"encoding/json"

	"github.com/castlelight/chesscore/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload is the move request body shared by the REST and websocket
// surfaces. Squares and the promotion letter are algebraic.
type MovePayload struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// PieceView is the serialized form of a piece on the board.
type PieceView struct {
	Type     model.PieceType `json:"type"`
	Color    model.Color     `json:"color"`
	HasMoved bool            `json:"hasMoved"`
}
