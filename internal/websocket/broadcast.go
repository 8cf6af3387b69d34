package websocket

import (
	"context"

	"github.com/collabide/server/internal/websocket/handlers"
	"github.com/collabide/server/pkg/logger"
)

// emitToRoom delivers an event to every connection whose session currently
// occupies roomID, skipping skipSocketID if supplied. Delivery is
// best-effort with no acknowledgment; per-connection ordering comes from
// the Socket.IO transport itself.
func (s *SocketIOServer) emitToRoom(roomID, event string, payload any, skipSocketID string) {
	s.socketData.Range(func(key, value any) bool {
		sd, ok := value.(*SocketData)
		if !ok || sd.Socket == nil {
			return true
		}

		if skipSocketID != "" && key == skipSocketID {
			return true
		}

		current, _, joined := sd.Session.Current()
		if !joined || current != roomID {
			return true
		}

		logger.Tracef("emitting %s to room %s (socket %v)", event, roomID, key)
		sd.Socket.Emit(event, payload)
		return true
	})
}

// apply executes a handler's effects: direct emits back to the sender,
// room broadcasts, and an optional asynchronous execution.
func (s *SocketIOServer) apply(sd *SocketData, res handlers.EventResult) {
	for _, emit := range res.SenderEmits() {
		if sd.Socket != nil {
			sd.Socket.Emit(emit.Event, emit.Payload)
		}
	}

	for _, b := range res.Broadcasts() {
		s.emitToRoom(b.RoomID, b.Event, b.Payload, b.SkipSocketID)
	}

	if instr := res.Execution(); instr != nil {
		go s.runExecution(instr)
	}
}

// runExecution performs the bridge call off the event-handling path and
// routes the result into the room. Overlapping executions for the same
// room both broadcast independently, in whatever order they complete.
func (s *SocketIOServer) runExecution(instr *handlers.ExecInstruction) {
	logger.Infof("executing %s code in room %s", instr.Request.Language, instr.RoomID)

	// The bridge client carries its own round-trip timeout.
	result := s.exec.Execute(context.Background(), instr.Request)
	if result.IsError {
		logger.Warnf("execution in room %s failed: %s", instr.RoomID, result.Output)
	}

	s.emitToRoom(instr.RoomID, "codeResponse", handlers.CodeResponsePayload{
		Run: handlers.RunOutput{
			Output:   result.Output,
			ExitCode: result.ExitCode,
		},
	}, "")
}
