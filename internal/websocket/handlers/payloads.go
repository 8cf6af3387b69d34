package handlers

// Client-to-server payloads. Field names are the wire contract shared with
// the frontend and must not change.

type JoinPayload struct {
	RoomID   string `json:"roomId"`
	UserName string `json:"userName"`
}

type CodeChangePayload struct {
	RoomID string `json:"roomId"`
	Code   string `json:"code"`
}

type TypingPayload struct {
	RoomID   string `json:"roomId"`
	UserName string `json:"userName"`
}

type LanguageChangePayload struct {
	RoomID   string `json:"roomId"`
	Language string `json:"language"`
}

type CursorMovePayload struct {
	RoomID   string `json:"roomId"`
	UserName string `json:"userName"`
	Position any    `json:"position"`
}

type SelectionChangePayload struct {
	RoomID    string `json:"roomId"`
	UserName  string `json:"userName"`
	Selection any    `json:"selection"`
}

type ChatMessagePayload struct {
	RoomID   string `json:"roomId"`
	UserName string `json:"userName"`
	Message  string `json:"message"`
}

type ChatTypingPayload struct {
	RoomID   string `json:"roomId"`
	UserName string `json:"userName"`
}

type RunExecutedPayload struct {
	RoomID   string `json:"roomId"`
	UserName string `json:"userName"`
}

type CompileCodePayload struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Input    string `json:"input"`
	RoomID   string `json:"roomId"`
}

// Server-to-client payloads.

type CursorUpdatePayload struct {
	UserName string `json:"userName"`
	Position any    `json:"position"`
}

type SelectionUpdatePayload struct {
	UserName  string `json:"userName"`
	Selection any    `json:"selection"`
}

type ChatMessageEvent struct {
	UserName  string `json:"userName"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

type ChatTypingEvent struct {
	UserName string `json:"userName"`
}

// RunOutput is the run section of a codeResponse event.
type RunOutput struct {
	Output   string `json:"output"`
	ExitCode int    `json:"exitCode"`
}

// CodeResponsePayload is broadcast to the whole room when an execution
// completes, successfully or not.
type CodeResponsePayload struct {
	Run RunOutput `json:"run"`
}
