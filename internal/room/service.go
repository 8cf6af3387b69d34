package room

import (
	"time"
)

// Service bundles the registry and session log behind one handle. It is
// constructed once in the composition root and passed by reference to
// every connection handler; nothing reaches it through package globals.
type Service struct {
	registry *Registry
	log      *SessionLog
	now      func() time.Time
	newID    func() string
}

// NewService builds a room service. now and newID are injectable for
// tests; nil selects the real clock and id source.
func NewService(now func() time.Time, newID func() string) *Service {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = func() string { return "" }
	}
	return &Service{
		registry: NewRegistry(),
		log:      NewSessionLog(),
		now:      now,
		newID:    newID,
	}
}

// Join adds name to roomID and returns the updated member snapshot.
func (s *Service) Join(roomID, name string) []string {
	return s.registry.Join(roomID, name)
}

// Leave removes name from roomID. When the last member leaves the room's
// log is dropped along with the registry entry.
func (s *Service) Leave(roomID, name string) (members []string, removed bool) {
	members, removed = s.registry.Leave(roomID, name)
	if removed {
		s.log.Drop(roomID)
	}
	return members, removed
}

// Members returns a snapshot of the names present in roomID.
func (s *Service) Members(roomID string) []string {
	return s.registry.Members(roomID)
}

// Contains reports whether roomID currently exists.
func (s *Service) Contains(roomID string) bool {
	return s.registry.Contains(roomID)
}

// Rooms returns the number of live rooms.
func (s *Service) Rooms() int {
	return s.registry.Rooms()
}

// Record appends a session log entry for roomID and returns it for
// broadcasting.
func (s *Service) Record(roomID string, kind EntryKind, user, message string) Entry {
	entry := Entry{
		ID:        s.newID(),
		Kind:      kind,
		User:      user,
		Message:   message,
		Timestamp: s.now().UnixMilli(),
	}
	s.log.Append(roomID, entry)
	return entry
}

// LogEntries returns a newest-first snapshot of the room's retained log.
func (s *Service) LogEntries(roomID string) []Entry {
	return s.log.Entries(roomID)
}
