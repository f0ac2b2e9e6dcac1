package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/entity"
)

const shutdownTimeout = 5 * time.Second

var ErrUnknownAction = errors.New("unknown action")

type gameUseCase interface {
	SetupGame(ctx context.Context, nameX, nameO string) (entity.Game, error)
	MakeTurn(ctx context.Context, cell int) (*entity.TurnResult, error)
	RestartGame(ctx context.Context) entity.Game
	GetGame(ctx context.Context) entity.Game
	GetLeaderboard(ctx context.Context, limit int) ([]entity.Record, error)
}

type Server struct {
	logger *slog.Logger
	game   gameUseCase

	upgrader websocket.Upgrader
	handlers map[string]func(ctx context.Context, sender *client, message *Message) error

	clientsMutex sync.RWMutex
	clients      map[string]*client
}

func New(logger *slog.Logger, game gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		game:   game,

		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		handlers: make(map[string]func(context.Context, *client, *Message) error),
		clients:  make(map[string]*client),
	}

	server.handlers["connect"] = server.handleConnect
	server.handlers["game:setup"] = server.handleSetup
	server.handlers["game:turn"] = server.handleTurn
	server.handlers["game:restart"] = server.handleRestart
	server.handlers["game:state"] = server.handleState
	server.handlers["leaderboard"] = server.handleLeaderboard

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.ServeWS)

	return mux
}

// Start - starts WebSocket server. Open connections are closed once ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}

		that.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Close disconnects every client.
func (that *Server) Close() {
	that.clientsMutex.Lock()
	clients := that.clients
	that.clients = make(map[string]*client)
	that.clientsMutex.Unlock()

	for _, c := range clients {
		if err := c.close(); err != nil {
			that.logger.Debug("failed to close connection", "client", c.id, "error", err)
		}
	}
}

// ServeWS upgrades the request and processes its messages until the client goes away.
func (that *Server) ServeWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
	}

	that.addClient(c)
	defer that.removeClient(c)

	log.Info("WebSocket connection established", "client", c.id)

	that.handleMessages(req.Context(), c)
}

func (that *Server) handleMessages(ctx context.Context, c *client) {
	log := that.logger.With("method", "handleMessages", "client", c.id)

	for {
		var message Message
		if err := c.conn.ReadJSON(&message); err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) || errors.Is(err, websocket.ErrCloseSent) {
				log.Info("connection closed")
				return
			}

			if isMalformed(err) {
				that.sendError(c, "", "invalid message")
				continue
			}

			log.Debug("failed to read message", "error", err)
			return
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.sendError(c, message.Action, ErrUnknownAction.Error())
			continue
		}

		if err := handler(ctx, c, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) addClient(c *client) {
	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	that.clients[c.id] = c
}

func (that *Server) removeClient(c *client) {
	that.clientsMutex.Lock()
	delete(that.clients, c.id)
	that.clientsMutex.Unlock()

	_ = c.conn.Close()
}

// broadcast sends the message to every connected client.
func (that *Server) broadcast(action string, payload Payload) {
	log := that.logger.With("method", "broadcast", "action", action)

	that.clientsMutex.RLock()
	clients := make([]*client, 0, len(that.clients))
	for _, c := range that.clients {
		clients = append(clients, c)
	}
	that.clientsMutex.RUnlock()

	for _, c := range clients {
		if err := c.send(action, payload); err != nil {
			log.Warn("failed to send message", "client", c.id, "error", err)
		}
	}
}

func (that *Server) sendError(c *client, action, message string) {
	if err := c.send(action, Payload{Error: message}); err != nil {
		that.logger.Warn("failed to send error", "client", c.id, "error", err)
	}
}
