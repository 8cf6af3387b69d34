package handlers

import (
	"github.com/collabide/server/internal/room"
)

// ChatMessage delivers a chat line to everyone in the room, sender
// included, so all participants observe one consistent ordering through
// the same channel. The message is also recorded in the session log and
// the log entry is broadcast alongside.
func ChatMessage(deps Deps, req ChatMessagePayload) EventResult {
	var res EventResult

	if req.RoomID == "" || req.Message == "" {
		return res
	}

	res = res.withBroadcast(Broadcast{
		RoomID: req.RoomID,
		Event:  "chatMessage",
		Payload: ChatMessageEvent{
			UserName:  req.UserName,
			Message:   req.Message,
			Timestamp: deps.Now().UnixMilli(),
		},
	})

	entry := deps.Rooms().Record(req.RoomID, room.KindChat, req.UserName, req.Message)
	res = res.withBroadcast(Broadcast{
		RoomID:  req.RoomID,
		Event:   "sessionLog",
		Payload: entry,
	})

	return res
}

// RunExecuted records that someone triggered a run and fans the log entry
// out to the room. It does not itself start an execution; that is the
// compileCode flow.
func RunExecuted(deps Deps, req RunExecutedPayload) EventResult {
	if req.RoomID == "" {
		return EventResult{}
	}

	entry := deps.Rooms().Record(req.RoomID, room.KindRun, req.UserName, "")
	return EventResult{}.withBroadcast(Broadcast{
		RoomID:  req.RoomID,
		Event:   "sessionLog",
		Payload: entry,
	})
}
