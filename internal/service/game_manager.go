package service

import (
	"errors"
	"sync"

	"github.com/castlelight/chesscore/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// ErrGameNotFound is returned for lookups of unknown game ids.
var ErrGameNotFound = errors.New("game not found")

// GameManager keeps every live session, keyed by game id.
type GameManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewGameManager() *GameManager {
	return &GameManager{
		sessions: make(map[string]*Session),
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.sessions[gameID]; exists {
		return errors.New("game already exists")
	}
	gm.sessions[gameID] = NewSession(gameID)
	return nil
}

func (gm *GameManager) getSession(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.sessions[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func (gm *GameManager) GetGameState(gameID string) (ws.GameStatePayload, error) {
	session, err := gm.getSession(gameID)
	if err != nil {
		return ws.GameStatePayload{}, err
	}
	return session.State(), nil
}

func (gm *GameManager) LegalMoves(gameID string) ([]string, error) {
	session, err := gm.getSession(gameID)
	if err != nil {
		return nil, err
	}
	return session.LegalMoves(), nil
}

func (gm *GameManager) MakeMove(gameID string, mv ws.MovePayload) error {
	session, err := gm.getSession(gameID)
	if err != nil {
		return err
	}
	return session.MakeMove(mv)
}

func (gm *GameManager) RegisterConnection(gameID string, clientID string, conn *websocket.Conn) error {
	session, err := gm.getSession(gameID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(clientID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, clientID string) {
	session, err := gm.getSession(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(clientID)
}
