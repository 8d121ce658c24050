package service

import (
	"github.com/gofiber/fiber/v2/log"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

type GameService struct {
	gameManager *GameManager
	hub         *Hub
}

func NewGameService(gameManager *GameManager, hub *Hub) *GameService {
	return &GameService{
		gameManager: gameManager,
		hub:         hub,
	}
}

func (gs *GameService) HasGame(gameID string) bool {
	return gs.gameManager.HasGame(gameID)
}

func (gs *GameService) CreateGame(fen string) (string, model.GameState, error) {
	game, err := gs.gameManager.CreateGame(fen)
	if err != nil {
		return "", model.GameState{}, err
	}
	return game.ID, game.GetState(), nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gs *GameService) GetBoard(gameID string) (map[string]string, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.Board(), nil
}

func (gs *GameService) GetTurn(gameID string) (model.Colour, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.White, err
	}
	return game.Turn(), nil
}

// Click forwards a click to the session and pushes the result to its
// observers. A rejected click is not an error here; it shows up in
// GameState.Error.
func (gs *GameService) Click(gameID, label string) (model.GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	state := game.Click(label)
	if state.Error != "" {
		log.Debugf("game %s: click %q rejected: %s", gameID, label, state.Error)
	}
	gs.hub.Broadcast(gameID, state)
	return state, nil
}

// Move plays a move directly.
func (gs *GameService) Move(gameID string, move model.SimpleMove) (model.Ply, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.Ply{}, err
	}
	ply, err := game.MakeMove(move)
	if err != nil {
		return model.Ply{}, err
	}
	log.Debugf("game %s: %s", gameID, ply.Notation)
	gs.hub.Broadcast(gameID, game.GetState())
	return ply, nil
}

func (gs *GameService) ResetGame(gameID string) (model.GameState, error) {
	state, err := gs.gameManager.ResetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	gs.hub.Broadcast(gameID, state)
	return state, nil
}

func (gs *GameService) RemoveGame(gameID string) error {
	if err := gs.gameManager.RemoveGame(gameID); err != nil {
		return err
	}
	gs.hub.Drop(gameID)
	return nil
}

// RegisterConnection adds w as an observer and sends it the current state.
func (gs *GameService) RegisterConnection(gameID string, w StateWriter) (string, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}
	connID := gs.hub.Register(gameID, w)
	if err := gs.hub.Send(gameID, connID, game.GetState()); err != nil {
		gs.hub.Unregister(gameID, connID)
		return "", err
	}
	return connID, nil
}

func (gs *GameService) UnregisterConnection(gameID, connID string) {
	gs.hub.Unregister(gameID, connID)
}

// SendError reports msg to one connection only.
func (gs *GameService) SendError(gameID, connID, msg string) error {
	return gs.hub.Notify(gameID, connID, ws.ErrorMessage(msg))
}
