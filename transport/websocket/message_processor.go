package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/entity"
)

const writeWait = 10 * time.Second

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries both the requests and the responses of every action.
type Payload struct {
	ClientID string `json:"client_id,omitempty"`

	PlayerX string `json:"player_x,omitempty"`
	PlayerO string `json:"player_o,omitempty"`
	Cell    *int   `json:"cell,omitempty"`
	Limit   int    `json:"limit,omitempty"`

	Game        *entity.Game    `json:"game,omitempty"`
	Leaderboard []entity.Record `json:"leaderboard,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// client is one connection. gorilla/websocket allows a single concurrent writer, so
// every write goes through send.
type client struct {
	id   string
	conn *websocket.Conn

	mu sync.Mutex
}

func (that *client) send(action string, payload Payload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteJSON(Message{Action: action, Payload: raw}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *client) close() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	_ = that.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
		time.Now().Add(writeWait),
	)

	return that.conn.Close()
}
