package handlers

import (
	"github.com/collabide/server/internal/execution"
)

// Broadcast instructs the socket layer to deliver an event to every
// connection currently in a room, optionally skipping the sender.
type Broadcast struct {
	RoomID       string
	Event        string
	Payload      any
	SkipSocketID string
}

// Emit instructs the socket layer to deliver an event to the sending
// connection only (log replay on join).
type Emit struct {
	Event   string
	Payload any
}

// ExecInstruction asks the socket layer to run the execution bridge
// asynchronously and route the result back into the room.
type ExecInstruction struct {
	RoomID  string
	Request execution.Request
}

// EventResult collects the effects of one handled event. A zero
// EventResult means the event was silently dropped.
type EventResult struct {
	broadcasts []Broadcast
	sender     []Emit
	exec       *ExecInstruction
}

func (r EventResult) Broadcasts() []Broadcast     { return r.broadcasts }
func (r EventResult) SenderEmits() []Emit         { return r.sender }
func (r EventResult) Execution() *ExecInstruction { return r.exec }

func (r EventResult) withBroadcast(b Broadcast) EventResult {
	r.broadcasts = append(r.broadcasts, b)
	return r
}

func (r EventResult) withSenderEmit(e Emit) EventResult {
	r.sender = append(r.sender, e)
	return r
}
