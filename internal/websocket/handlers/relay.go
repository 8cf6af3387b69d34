package handlers

// Editor relay events: fire-and-forget fan-out to the room with the
// sender excluded. No payload validation beyond the presence of a room id,
// and no shared state is touched; staleness self-heals on the next event.

// CodeChange relays a buffer update to the sender's peers.
func CodeChange(socketID string, req CodeChangePayload) EventResult {
	if req.RoomID == "" {
		return EventResult{}
	}
	return EventResult{}.withBroadcast(Broadcast{
		RoomID:       req.RoomID,
		Event:        "codeUpdate",
		Payload:      req.Code,
		SkipSocketID: socketID,
	})
}

// Typing relays an editor typing indicator to the sender's peers.
func Typing(socketID string, req TypingPayload) EventResult {
	if req.RoomID == "" {
		return EventResult{}
	}
	return EventResult{}.withBroadcast(Broadcast{
		RoomID:       req.RoomID,
		Event:        "userTyping",
		Payload:      req.UserName,
		SkipSocketID: socketID,
	})
}

// LanguageChange relays a language switch to the sender's peers.
func LanguageChange(socketID string, req LanguageChangePayload) EventResult {
	if req.RoomID == "" {
		return EventResult{}
	}
	return EventResult{}.withBroadcast(Broadcast{
		RoomID:       req.RoomID,
		Event:        "languageUpdate",
		Payload:      req.Language,
		SkipSocketID: socketID,
	})
}

// CursorMove relays a cursor position to the sender's peers.
func CursorMove(socketID string, req CursorMovePayload) EventResult {
	if req.RoomID == "" {
		return EventResult{}
	}
	return EventResult{}.withBroadcast(Broadcast{
		RoomID: req.RoomID,
		Event:  "cursorUpdate",
		Payload: CursorUpdatePayload{
			UserName: req.UserName,
			Position: req.Position,
		},
		SkipSocketID: socketID,
	})
}

// SelectionChange relays a selection range to the sender's peers.
func SelectionChange(socketID string, req SelectionChangePayload) EventResult {
	if req.RoomID == "" {
		return EventResult{}
	}
	return EventResult{}.withBroadcast(Broadcast{
		RoomID: req.RoomID,
		Event:  "selectionUpdate",
		Payload: SelectionUpdatePayload{
			UserName:  req.UserName,
			Selection: req.Selection,
		},
		SkipSocketID: socketID,
	})
}

// ChatTyping relays a chat typing indicator to the sender's peers.
func ChatTyping(socketID string, req ChatTypingPayload) EventResult {
	if req.RoomID == "" {
		return EventResult{}
	}
	return EventResult{}.withBroadcast(Broadcast{
		RoomID: req.RoomID,
		Event:  "chatTyping",
		Payload: ChatTypingEvent{
			UserName: req.UserName,
		},
		SkipSocketID: socketID,
	})
}
