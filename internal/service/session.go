package service

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/castlelight/chesscore/internal/model"
	"github.com/castlelight/chesscore/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// Session owns exactly one game plus the websocket observers watching it.
// The engine is single-owner and fully synchronous; the session mutex is
// what serializes concurrent callers onto it.
type Session struct {
	ID string

	mu   sync.Mutex
	game *model.Game

	conns *sessionConnections
}

// The connections for a specific session
type sessionConnections struct {
	mu    sync.RWMutex
	conns map[string]*websocket.Conn // clientID -> connection
}

func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		game:  model.NewGame(),
		conns: &sessionConnections{conns: make(map[string]*websocket.Conn)},
	}
}

// State snapshots the game for rendering.
func (s *Session) State() ws.GameStatePayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ws.NewGameStatePayload(s.game)
}

// LegalMoves lists the legal moves of the side to move in display form.
func (s *Session) LegalMoves() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	moves := s.game.LegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}

// MakeMove applies an algebraic move and, on success, pushes the fresh
// state to every connected observer.
func (s *Session) MakeMove(mv ws.MovePayload) error {
	s.mu.Lock()
	err := s.game.MakeMoveFromAlgebraic(mv.From, mv.To, mv.Promotion)
	var payload ws.GameStatePayload
	if err == nil {
		payload = ws.NewGameStatePayload(s.game)
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}
	go s.broadcast(payload)
	return nil
}

// RegisterConnection attaches a websocket observer and sends it the current
// state. A client keeps at most one connection per session; a duplicate
// connection attempt is closed politely and the original kept.
func (s *Session) RegisterConnection(clientID string, conn *websocket.Conn) error {
	s.conns.mu.Lock()
	if _, exists := s.conns.conns[clientID]; exists {
		s.conns.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	s.conns.conns[clientID] = conn
	s.conns.mu.Unlock()

	go s.broadcast(s.State())
	return nil
}

func (s *Session) UnregisterConnection(clientID string) {
	s.conns.mu.Lock()
	defer s.conns.mu.Unlock()
	delete(s.conns.conns, clientID)
}

func (s *Session) broadcast(payload ws.GameStatePayload) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("failed to marshal game state: %v", err)
		return
	}
	msg := ws.Message{Type: ws.MessageTypeGameState, Payload: json.RawMessage(body)}

	s.conns.mu.RLock()
	active := make(map[string]*websocket.Conn, len(s.conns.conns))
	for clientID, conn := range s.conns.conns {
		active[clientID] = conn
	}
	s.conns.mu.RUnlock()

	for clientID, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("failed to send state to client %s: %v", clientID, err)
			s.conns.mu.Lock()
			delete(s.conns.conns, clientID)
			s.conns.mu.Unlock()
		}
	}
}
