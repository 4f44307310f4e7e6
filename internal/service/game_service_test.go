package service

import (
	"errors"
	"testing"

	"github.com/castlelight/chesscore/internal/model"
	"github.com/castlelight/chesscore/internal/testutil"
	"github.com/castlelight/chesscore/internal/ws"
)

func newTestService() *GameService {
	return NewGameService(NewGameManager())
}

func TestCreateGameAndFetchState(t *testing.T) {
	t.Parallel()
	gs := newTestService()

	gameID, err := gs.CreateGame()
	testutil.AssertNoError(t, err)
	if gameID == "" {
		t.Fatal("CreateGame returned an empty id")
	}

	state, err := gs.GetGameState(gameID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state.ToMove, model.White)
	testutil.AssertEqual(t, state.GameState, model.StateOngoing)
	testutil.AssertEqual(t, state.FullMoveNumber, 1)
	testutil.AssertFalse(t, state.IsCheck)

	if p := state.Board[6][4]; p == nil || p.Type != model.Pawn || p.Color != model.White {
		t.Errorf("board[6][4] = %+v, want a white pawn", p)
	}
	if state.Board[4][4] != nil {
		t.Error("board[4][4] must start empty")
	}
}

func TestHandleMoveUpdatesState(t *testing.T) {
	t.Parallel()
	gs := newTestService()
	gameID, err := gs.CreateGame()
	testutil.AssertNoError(t, err)

	err = gs.HandleMove(gameID, ws.MovePayload{From: "e2", To: "e4"})
	testutil.AssertNoError(t, err)

	state, err := gs.GetGameState(gameID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state.ToMove, model.Black)
	testutil.AssertEqual(t, state.MoveHistory, []string{"e2e4"})
	if state.EnPassantTarget == nil || *state.EnPassantTarget != "e3" {
		t.Errorf("en-passant target = %v, want e3", state.EnPassantTarget)
	}
}

func TestHandleMoveRejections(t *testing.T) {
	t.Parallel()
	gs := newTestService()
	gameID, err := gs.CreateGame()
	testutil.AssertNoError(t, err)

	testutil.AssertError(t, gs.HandleMove(gameID, ws.MovePayload{From: "e7", To: "e5"}))
	testutil.AssertError(t, gs.HandleMove(gameID, ws.MovePayload{From: "e2", To: "e7"}))
	testutil.AssertError(t, gs.HandleMove(gameID, ws.MovePayload{From: "zz", To: "e4"}))

	state, err := gs.GetGameState(gameID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(state.MoveHistory), 0)
}

func TestLegalMovesListing(t *testing.T) {
	t.Parallel()
	gs := newTestService()
	gameID, err := gs.CreateGame()
	testutil.AssertNoError(t, err)

	moves, err := gs.LegalMoves(gameID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 20)
}

func TestUnknownGameErrors(t *testing.T) {
	t.Parallel()
	gs := newTestService()

	_, err := gs.GetGameState("missing")
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GetGameState: err = %v, want ErrGameNotFound", err)
	}
	if err := gs.HandleMove("missing", ws.MovePayload{From: "e2", To: "e4"}); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("HandleMove: err = %v, want ErrGameNotFound", err)
	}
	if _, err := gs.LegalMoves("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("LegalMoves: err = %v, want ErrGameNotFound", err)
	}
}
