// Package room owns the in-memory room state: which display names are
// present in which room, and a bounded per-room activity log.
package room

import (
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Registry maps room ids to the set of display names currently present.
//
// Rooms are created implicitly on first join and evicted as soon as the
// last member leaves; a room id present in the registry always has a
// non-empty member set. All snapshots are sorted copies, so callers never
// observe a torn read and iteration order is deterministic.
type Registry struct {
	mu    sync.Mutex
	rooms map[string]map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]map[string]struct{}),
	}
}

// Join adds name to roomID and returns the updated member snapshot.
//
// Adding is idempotent: a name already present keeps its single slot. Two
// connections joining under the same name collapse to one entry; this is
// set semantics by design, not a bug.
func (r *Registry) Join(roomID, name string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[roomID]
	if !ok {
		members = make(map[string]struct{})
		r.rooms[roomID] = members
	}
	members[name] = struct{}{}

	return snapshot(members)
}

// Leave removes name from roomID. It returns the updated member snapshot
// and whether the room entry was evicted because it became empty. Leaving
// a room one is not a member of (or a room that does not exist) is a no-op
// returning (nil, false).
func (r *Registry) Leave(roomID, name string) (members []string, removed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.rooms[roomID]
	if !ok {
		return nil, false
	}
	delete(set, name)
	if len(set) == 0 {
		delete(r.rooms, roomID)
		return nil, true
	}
	return snapshot(set), false
}

// Members returns a snapshot of the names present in roomID, or nil if the
// room does not exist.
func (r *Registry) Members(roomID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.rooms[roomID]
	if !ok {
		return nil
	}
	return snapshot(set)
}

// Contains reports whether roomID currently exists in the registry.
func (r *Registry) Contains(roomID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.rooms[roomID]
	return ok
}

// Rooms returns the number of live rooms.
func (r *Registry) Rooms() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.rooms)
}

func snapshot(set map[string]struct{}) []string {
	names := lo.Keys(set)
	sort.Strings(names)
	return names
}
