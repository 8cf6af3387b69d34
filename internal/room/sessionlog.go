package room

import (
	"sync"
)

// logCapacity caps how many entries are retained per room before the
// oldest are discarded.
const logCapacity = 100

// EntryKind classifies a session log entry.
type EntryKind string

const (
	KindJoin  EntryKind = "join"
	KindLeave EntryKind = "leave"
	KindChat  EntryKind = "chat"
	KindRun   EntryKind = "run"
)

// Entry is one notable room event retained for late joiners. Entries are
// ephemeral: they live only as long as the room does.
type Entry struct {
	ID        string    `json:"id"`
	Kind      EntryKind `json:"type"`
	User      string    `json:"user"`
	Message   string    `json:"message,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// SessionLog keeps a bounded newest-first record of recent activity per
// room. Insertion order is preserved and nothing is deduplicated; on
// overflow the oldest entry is dropped.
type SessionLog struct {
	mu      sync.Mutex
	entries map[string][]Entry
}

// NewSessionLog creates an empty log.
func NewSessionLog() *SessionLog {
	return &SessionLog{
		entries: make(map[string][]Entry),
	}
}

// Append records an entry for roomID, evicting the oldest entry if the
// room is at capacity.
func (l *SessionLog) Append(roomID string, entry Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.entries[roomID]
	updated := make([]Entry, 0, len(current)+1)
	updated = append(updated, entry)
	updated = append(updated, current...)
	if len(updated) > logCapacity {
		updated = updated[:logCapacity]
	}
	l.entries[roomID] = updated
}

// Entries returns a newest-first snapshot of the room's retained entries.
func (l *SessionLog) Entries(roomID string) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.entries[roomID]
	if len(current) == 0 {
		return nil
	}
	out := make([]Entry, len(current))
	copy(out, current)
	return out
}

// Drop discards all retained entries for roomID. Called when the room is
// evicted from the registry.
func (l *SessionLog) Drop(roomID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, roomID)
}
