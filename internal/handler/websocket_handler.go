package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"SpaceXLaunchDashboard/internal/dashboard"
	"SpaceXLaunchDashboard/internal/dispatch"
	"SpaceXLaunchDashboard/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server message types
const (
	MessageSession = "session"
	MessageFigure  = "figure"
	MessageError   = "error"
)

// ServerMessage is every frame the dashboard socket sends.
type ServerMessage struct {
	Type      string `json:"type" example:"figure"`
	SessionID string `json:"session_id,omitempty"`
	Output    string `json:"output,omitempty" example:"success-pie-chart"`
	Figure    any    `json:"figure,omitempty"`
	Warning   string `json:"warning,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleDashboardConnection godoc
// @Summary      Dashboard event WebSocket
// @Description  Opens a reactive session. The server first sends a `session` frame and one `figure`
// @Description  frame per chart for the default controls (site ALL, full payload range).
// @Description  <br>
// @Description  **Note: this is not a plain HTTP API.** Connect with `ws://` or `wss://` and send
// @Description  control events as JSON text frames, e.g. `{"control":"site-dropdown","value":"KSC LC-39A"}`
// @Description  or `{"control":"payload-slider","range":[2000,8000]}`. Each event is answered with a
// @Description  `figure` frame for every chart that depends on the control, or an `error` frame.
// @Tags         WebSocket (Dashboard)
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      500 {object} handler.ErrorResponse "WebSocket upgrade failed"
// @Router       /ws/dashboard [get]
func (d *Dashboard) HandleDashboardConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("HandleDashboardConnection(): failed to upgrade to WebSocket", "error", err)
		return
	}
	defer conn.Close()

	session := dispatch.NewSession(d.dispatcher, d.initialState())
	log := slog.With("session", session.ID)
	d.metrics.ActiveSessions.Inc()
	defer d.metrics.ActiveSessions.Dec()
	log.Info("HandleDashboardConnection(): session started", "remote", c.ClientIP())

	if err := conn.WriteJSON(ServerMessage{Type: MessageSession, SessionID: session.ID}); err != nil {
		log.Error("HandleDashboardConnection(): failed to send session frame", "error", err)
		return
	}
	if err := d.sendUpdates(conn, timed(session.Start)); err != nil {
		log.Error("HandleDashboardConnection(): failed to send initial figures", "error", err)
		return
	}

ReadLoop:
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("HandleDashboardConnection(): read failed", "error", err)
			}
			break ReadLoop
		}
		if messageType != websocket.TextMessage {
			log.Warn("HandleDashboardConnection(): unsupported message type", "type", messageType)
			continue
		}

		var ev dispatch.ControlEvent
		if err := json.Unmarshal(message, &ev); err != nil {
			if err := conn.WriteJSON(ServerMessage{Type: MessageError, Error: "Invalid event: " + err.Error()}); err != nil {
				break ReadLoop
			}
			continue
		}

		start := time.Now()
		updates, err := session.Handle(ev)
		if err != nil {
			log.Warn("HandleDashboardConnection(): event rejected", "error", err)
			if err := conn.WriteJSON(ServerMessage{Type: MessageError, Error: err.Error()}); err != nil {
				break ReadLoop
			}
			continue
		}
		if err := d.sendUpdates(conn, timedUpdates{updates: updates, start: start}); err != nil {
			log.Error("HandleDashboardConnection(): failed to send figures", "error", err)
			break ReadLoop
		}
	}
	log.Info("HandleDashboardConnection(): session ended")
}

type timedUpdates struct {
	updates []dispatch.Update
	start   time.Time
}

func timed(build func() []dispatch.Update) timedUpdates {
	start := time.Now()
	return timedUpdates{updates: build(), start: start}
}

func (d *Dashboard) sendUpdates(conn *websocket.Conn, t timedUpdates) error {
	seconds := time.Since(t.start).Seconds()
	for _, u := range t.updates {
		outcome := observability.OutcomeOK
		if u.Warning != "" {
			outcome = observability.OutcomeWarning
		}
		d.metrics.ObserveChart(u.Output, "ws", outcome, seconds)

		msg := ServerMessage{Type: MessageFigure, Output: u.Output, Figure: u.Figure, Warning: u.Warning}
		if err := conn.WriteJSON(msg); err != nil {
			return err
		}
	}
	return nil
}

// isRejection reports whether err is an input rejection the page absorbs.
func isRejection(err error) bool {
	return errors.Is(err, dashboard.ErrInvalidSelection) || errors.Is(err, dashboard.ErrInvalidRange)
}
