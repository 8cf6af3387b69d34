package websocket

import (
	"github.com/collabide/server/internal/websocket/handlers"
	"github.com/collabide/server/pkg/logger"
	socket "github.com/zishang520/socket.io/servers/socket/v3"
)

// on registers an event handler that absorbs panics. The room service runs
// unattended; one bad event must not drop unrelated rooms' connections.
func (s *SocketIOServer) on(client *socket.Socket, event string, fn func(data ...any)) {
	client.On(event, func(data ...any) {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("panic handling %s event: %v", event, r)
			}
		}()
		fn(data...)
	})
}

// decodeFirst decodes the first event argument into out. Malformed
// payloads are dropped silently per the wire contract; the decode failure
// is only logged.
func decodeFirst(data []any, out any) bool {
	if len(data) == 0 {
		return false
	}
	if err := decodeAny(data[0], out); err != nil {
		logger.Warnf("event payload decode error: %v (type=%T)", err, data[0])
		return false
	}
	return true
}

func (s *SocketIOServer) registerClientHandlers(client *socket.Socket, deps handlers.Deps, socketID string) {
	s.on(client, "join", func(data ...any) {
		var req handlers.JoinPayload
		if !decodeFirst(data, &req) {
			return
		}
		sd := s.getSocketData(socketID)
		s.apply(sd, handlers.Join(deps, sd.Session, req))
	})

	s.on(client, "leaveRoom", func(data ...any) {
		sd := s.getSocketData(socketID)
		s.apply(sd, handlers.LeaveRoom(deps, sd.Session))
	})

	s.on(client, "codeChange", func(data ...any) {
		var req handlers.CodeChangePayload
		if !decodeFirst(data, &req) {
			return
		}
		sd := s.getSocketData(socketID)
		s.apply(sd, handlers.CodeChange(socketID, req))
	})

	s.on(client, "typing", func(data ...any) {
		var req handlers.TypingPayload
		if !decodeFirst(data, &req) {
			return
		}
		sd := s.getSocketData(socketID)
		s.apply(sd, handlers.Typing(socketID, req))
	})

	s.on(client, "languageChange", func(data ...any) {
		var req handlers.LanguageChangePayload
		if !decodeFirst(data, &req) {
			return
		}
		sd := s.getSocketData(socketID)
		s.apply(sd, handlers.LanguageChange(socketID, req))
	})

	s.on(client, "cursorMove", func(data ...any) {
		var req handlers.CursorMovePayload
		if !decodeFirst(data, &req) {
			return
		}
		sd := s.getSocketData(socketID)
		s.apply(sd, handlers.CursorMove(socketID, req))
	})

	s.on(client, "selectionChange", func(data ...any) {
		var req handlers.SelectionChangePayload
		if !decodeFirst(data, &req) {
			return
		}
		sd := s.getSocketData(socketID)
		s.apply(sd, handlers.SelectionChange(socketID, req))
	})

	s.on(client, "chatMessage", func(data ...any) {
		var req handlers.ChatMessagePayload
		if !decodeFirst(data, &req) {
			return
		}
		sd := s.getSocketData(socketID)
		s.apply(sd, handlers.ChatMessage(deps, req))
	})

	s.on(client, "chatTyping", func(data ...any) {
		var req handlers.ChatTypingPayload
		if !decodeFirst(data, &req) {
			return
		}
		sd := s.getSocketData(socketID)
		s.apply(sd, handlers.ChatTyping(socketID, req))
	})

	s.on(client, "runExecuted", func(data ...any) {
		var req handlers.RunExecutedPayload
		if !decodeFirst(data, &req) {
			return
		}
		sd := s.getSocketData(socketID)
		s.apply(sd, handlers.RunExecuted(deps, req))
	})

	s.on(client, "compileCode", func(data ...any) {
		var req handlers.CompileCodePayload
		if !decodeFirst(data, &req) {
			return
		}
		sd := s.getSocketData(socketID)
		s.apply(sd, handlers.CompileCode(req))
	})

	// Disconnection handler. Transport drops get the same membership
	// removal as an explicit leave, plus a leave entry in the room log.
	s.on(client, "disconnect", func(data ...any) {
		sd := s.getSocketData(socketID)
		reason := ""
		if len(data) > 0 {
			if r, ok := data[0].(string); ok {
				reason = r
			}
		}
		logger.Infof("socket disconnected: %s (reason: %s)", socketID, reason)

		s.apply(sd, handlers.Disconnect(deps, sd.Session))
		s.socketData.Delete(socketID)
	})
}
