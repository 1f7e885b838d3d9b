// Package ws provides the WebSocket signal feed: the browser's vision and
// audio loops stream per-frame signal records, and the server answers each
// frame with the fused emotion label.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/pranavshinde369/feelio/internal/domain"
	"github.com/pranavshinde369/feelio/internal/service"
)

const (
	readTimeout    = 60 * time.Second
	writeTimeout   = 10 * time.Second
	maxMessageSize = 4096
)

// Server handles signal-feed WebSocket connections.
type Server struct {
	service  *service.Service
	upgrader websocket.Upgrader
}

// NewServer creates a new signal-feed server.
func NewServer(svc *service.Service) *Server {
	return &Server{
		service: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// CORS policy is enforced on the API; the feed carries no
				// secrets.
				return true
			},
		},
	}
}

// RegisterRoutes registers the feed route with the echo server.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/signals", s.HandleSignals)
}

// emotionUpdate is the per-frame answer.
type emotionUpdate struct {
	Emotion domain.Emotion `json:"emotion"`
	At      time.Time      `json:"at"`
}

// HandleSignals upgrades the connection and consumes frames until the
// client disconnects. Each frame overwrites the session's emotion cell.
func (s *Server) HandleSignals(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "session_id is required"})
	}

	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Error("failed to upgrade signal feed", "session", sessionID, "error", err)
		return err
	}

	go s.readPump(conn, sessionID)
	return nil
}

// readPump reads signal frames until the connection closes. The pump owns
// the connection handle; closing the socket is the bounded-time shutdown
// signal for the feed.
func (s *Server) readPump(conn *websocket.Conn, sessionID string) {
	defer conn.Close()

	ctx := context.Background()
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Warn("signal feed error", "session", sessionID, "error", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		var frame domain.SignalRecord
		if err := json.Unmarshal(message, &frame); err != nil {
			log.Warn("malformed signal frame", "session", sessionID, "error", err)
			continue
		}

		emotion, err := s.service.PublishSignals(ctx, sessionID, frame)
		if err != nil {
			log.Warn("rejected signal frame", "session", sessionID, "error", err)
			continue
		}

		update, err := json.Marshal(emotionUpdate{Emotion: emotion, At: time.Now()})
		if err != nil {
			continue
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, update); err != nil {
			return
		}
	}
}
