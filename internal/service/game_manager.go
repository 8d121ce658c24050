// service/game_manager.go
package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrTooManyGames = errors.New("too many games")
)

// GameManager is the registry of live sessions.
type GameManager struct {
	games    map[string]*model.Game
	rule     model.CastlingRule
	maxGames int
	mu       sync.RWMutex
}

func NewGameManager(rule model.CastlingRule, maxGames int) *GameManager {
	return &GameManager{
		games:    make(map[string]*model.Game),
		rule:     rule,
		maxGames: maxGames,
	}
}

// CreateGame starts a session from fen, or from the standard layout when fen
// is empty.
func (gm *GameManager) CreateGame(fen string) (*model.Game, error) {
	board := model.NewBoard(gm.rule)
	if fen != "" {
		var err error
		if board, err = model.ParseFEN(fen, gm.rule); err != nil {
			return nil, err
		}
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.maxGames > 0 && len(gm.games) >= gm.maxGames {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManyGames, gm.maxGames)
	}
	gameID := uuid.New().String()
	game := model.NewGame(gameID, board)
	gm.games[gameID] = game
	log.Infof("created game %s (%s castling, %d live)", gameID, gm.rule, len(gm.games))
	return game, nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return game, nil
}

func (gm *GameManager) HasGame(gameID string) bool {
	_, err := gm.GetGame(gameID)
	return err == nil
}

func (gm *GameManager) ResetGame(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.Reset(), nil
}

func (gm *GameManager) RemoveGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(gm.games, gameID)
	log.Infof("removed game %s", gameID)
	return nil
}

// Len is the number of live sessions.
func (gm *GameManager) Len() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	return len(gm.games)
}
