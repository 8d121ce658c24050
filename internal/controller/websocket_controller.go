package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	if gameID == "" {
		gameID = c.Params("gameId")
	}

	connID, err := wsc.gameService.RegisterConnection(gameID, c)
	if err != nil {
		log.Warnf("failed to register connection for game %s: %v", gameID, err)
		c.WriteJSON(ws.ErrorMessage(err.Error()))
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, connID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnf("read error on connection %s: %v", connID, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(gameID, connID, "malformed message")
			continue
		}
		if err := wsc.handleMessage(gameID, msg); err != nil {
			log.Debugf("connection %s: %v", connID, err)
			if gameGone(err) {
				// The hub no longer knows this connection, write directly.
				c.WriteJSON(ws.ErrorMessage(err.Error()))
				return
			}
			wsc.sendError(gameID, connID, err.Error())
		}
	}
}

// handleMessage dispatches one client message. The resulting state reaches
// this connection through the broadcast.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeClick:
		var click ws.ClickPayload
		if err := json.Unmarshal(msg.Payload, &click); err != nil {
			return fmt.Errorf("invalid click payload: %w", err)
		}
		_, err := wsc.gameService.Click(gameID, click.Label)
		return err
	case ws.MessageTypeReset:
		_, err := wsc.gameService.ResetGame(gameID)
		return err
	default:
		return fmt.Errorf("unknown message type: %q", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(gameID, connID, errorMsg string) {
	if err := wsc.gameService.SendError(gameID, connID, errorMsg); err != nil {
		log.Warnf("failed to send error: %v", err)
	}
}

// gameGone reports whether err means the session behind the connection was
// removed, after which the connection is closed.
func gameGone(err error) bool {
	return errors.Is(err, service.ErrGameNotFound)
}
