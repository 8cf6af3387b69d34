package websocket

import (
	"github.com/collabide/server/internal/websocket/handlers"
	"github.com/collabide/server/pkg/logger"
	socket "github.com/zishang520/socket.io/servers/socket/v3"
)

// handleConnection registers a freshly connected socket. Rooms require no
// authentication: any client supplying a room id and a display name may
// join, so the connection starts straight in the unjoined state.
func (s *SocketIOServer) handleConnection(client *socket.Socket, deps handlers.Deps) {
	socketID := string(client.Id())

	logger.Infof("Socket.IO connection (socket ID: %s)", socketID)

	sd := &SocketData{
		Session: handlers.NewSession(),
		Socket:  client,
	}
	s.socketData.Store(socketID, sd)

	s.registerClientHandlers(client, deps, socketID)
}
