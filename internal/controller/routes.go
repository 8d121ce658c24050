package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/service"
)

// RegisterRoutes mounts the REST API under /api and the websocket endpoint
// under /ws.
func RegisterRoutes(app *fiber.App, gameService *service.GameService, wsConfig websocket.Config) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)
	requireGame := middleware.RequireGame(gameService)

	app.Get("/ws/game/:gameId", requireGame, middleware.WebSocketUpgrade(),
		websocket.New(wsController.HandleConnection, wsConfig))

	api := app.Group("/api")
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/", gameController.CreateGame)
	gameRoutes.Get("/:gameId", requireGame, gameController.GetGameState)
	gameRoutes.Get("/:gameId/board", requireGame, gameController.GetBoard)
	gameRoutes.Get("/:gameId/turn", requireGame, gameController.GetTurn)
	gameRoutes.Post("/:gameId/click", requireGame, gameController.Click)
	gameRoutes.Post("/:gameId/move", requireGame, gameController.Move)
	gameRoutes.Post("/:gameId/reset", requireGame, gameController.ResetGame)
	gameRoutes.Delete("/:gameId", requireGame, gameController.DeleteGame)
}
