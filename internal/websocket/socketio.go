// Package websocket hosts the Socket.IO server: connection lifecycle,
// per-event wiring, and room fan-out.
package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/collabide/server/internal/execution"
	"github.com/collabide/server/internal/room"
	"github.com/collabide/server/internal/websocket/handlers"
	"github.com/collabide/server/pkg/logger"
	"github.com/gin-gonic/gin"
	socket "github.com/zishang520/socket.io/servers/socket/v3"
	sockettypes "github.com/zishang520/socket.io/v3/pkg/types"
)

// Executor runs one execution round-trip against the external backend.
type Executor interface {
	Execute(ctx context.Context, req execution.Request) execution.Result
}

// SocketIOServer wraps the Socket.IO server for the room service.
type SocketIOServer struct {
	rooms      *room.Service
	exec       Executor
	server     *socket.Server
	socketData sync.Map // socket ID -> *SocketData
}

// SocketData stores per-connection state: the session state machine plus a
// socket reference for emitting.
type SocketData struct {
	Session *handlers.Session
	Socket  *socket.Socket
}

// NewSocketIOServer creates a new Socket.IO server bound to the given room
// service and execution bridge.
func NewSocketIOServer(rooms *room.Service, exec Executor) *SocketIOServer {
	opts := socket.DefaultServerOptions()

	opts.SetCors(&sockettypes.Cors{
		Origin:      "*",
		Credentials: false,
	})

	// SocketIOPingInterval defines how frequently the server pings clients
	// to detect stale/disconnected sockets.
	//
	// This influences how quickly a vanished participant is evicted from
	// its room's presence set after an abrupt browser exit (where no
	// graceful disconnect event is emitted).
	const SocketIOPingInterval = 5 * time.Second

	// SocketIOPingTimeout defines how long the server waits before
	// considering a socket dead (no pong received).
	const SocketIOPingTimeout = 15 * time.Second

	opts.SetPingTimeout(SocketIOPingTimeout)
	opts.SetPingInterval(SocketIOPingInterval)

	// Default Socket.IO path, matching the frontend client.
	opts.SetPath("/socket.io")

	server := socket.NewServer(nil, opts)

	s := &SocketIOServer{
		rooms:      rooms,
		exec:       exec,
		server:     server,
		socketData: sync.Map{},
	}

	s.setupHandlers()

	return s
}

// setupHandlers configures Socket.IO event handlers.
func (s *SocketIOServer) setupHandlers() {
	deps := handlers.NewDeps(s.rooms, time.Now)

	s.server.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		s.handleConnection(client, deps)
	})
}

func decodeAny(input any, out any) error {
	raw, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// getSocketData retrieves socket state by socket ID.
func (s *SocketIOServer) getSocketData(socketID string) *SocketData {
	if data, ok := s.socketData.Load(socketID); ok {
		if sd, ok := data.(*SocketData); ok {
			return sd
		}
	}
	return &SocketData{Session: handlers.NewSession()}
}

// HandleSocketIO creates a Gin handler for Socket.IO.
func (s *SocketIOServer) HandleSocketIO() gin.HandlerFunc {
	httpHandler := s.server.ServeHandler(nil)

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "false")

		if c.Request.Method == "OPTIONS" {
			c.Status(http.StatusOK)
			return
		}

		logger.Tracef("Socket.IO request: %s %s", c.Request.Method, c.Request.URL.Path)

		httpHandler.ServeHTTP(c.Writer, c.Request)
	}
}

// Close shuts down the Socket.IO server.
func (s *SocketIOServer) Close() error {
	s.server.Close(nil)
	return nil
}
