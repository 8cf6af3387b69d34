package handlers

import (
	"sync"
)

// Session is the per-connection state machine. A connection is either
// unjoined or in exactly one room; the session exclusively owns that
// pointer while the room registry owns the per-room name sets.
type Session struct {
	mu       sync.Mutex
	roomID   string
	userName string
}

// NewSession creates a session in the unjoined state.
func NewSession() *Session {
	return &Session{}
}

// Current returns the room and name the connection occupies. ok is false
// while unjoined.
func (s *Session) Current() (roomID, userName string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomID, s.userName, s.roomID != ""
}

func (s *Session) enterRoom(roomID, userName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roomID = roomID
	s.userName = userName
}

func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roomID = ""
	s.userName = ""
}
