package service

import (
	"fmt"

	"github.com/castlelight/chesscore/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// GameService is the facade the controllers talk to.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (ws.GameStatePayload, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) LegalMoves(gameID string) ([]string, error) {
	return gs.gameManager.LegalMoves(gameID)
}

func (gs *GameService) HandleMove(gameID string, mv ws.MovePayload) error {
	return gs.gameManager.MakeMove(gameID, mv)
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, clientID string) {
	gs.gameManager.UnregisterConnection(gameID, clientID)
}
