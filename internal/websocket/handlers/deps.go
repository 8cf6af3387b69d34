// Package handlers contains the per-event room logic, kept free of any
// transport dependency so every event can be tested without sockets.
// Handlers take their inputs, mutate the room service through an explicit
// handle, and return broadcast instructions for the socket layer to
// execute.
package handlers

import (
	"time"

	"github.com/collabide/server/internal/room"
)

// Deps holds the narrow dependencies required by event handlers.
type Deps struct {
	rooms *room.Service
	now   func() time.Time
}

// NewDeps builds a dependency bundle for handler calls.
func NewDeps(rooms *room.Service, now func() time.Time) Deps {
	return Deps{
		rooms: rooms,
		now:   now,
	}
}

func (d Deps) Rooms() *room.Service { return d.rooms }

func (d Deps) Now() time.Time {
	if d.now != nil {
		return d.now()
	}
	return time.Now()
}
