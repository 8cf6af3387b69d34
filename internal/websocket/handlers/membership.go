package handlers

import (
	"github.com/collabide/server/internal/room"
	"github.com/collabide/server/pkg/logger"
)

// Join moves the connection into a room. Joining while in a different
// room first performs an implicit leave, broadcasting the old room's
// shrunken roster before the new room's grows. The joiner always receives
// the full member set itself, plus a replay of the room's retained session
// log so late joiners see recent activity.
func Join(deps Deps, sess *Session, req JoinPayload) EventResult {
	var res EventResult

	if req.RoomID == "" || req.UserName == "" {
		logger.Debugf("join rejected: missing roomId or userName (roomId=%q userName=%q)", req.RoomID, req.UserName)
		return res
	}

	if oldRoom, oldName, ok := sess.Current(); ok && oldRoom != req.RoomID {
		members, _ := deps.Rooms().Leave(oldRoom, oldName)
		if len(members) > 0 {
			res = res.withBroadcast(Broadcast{
				RoomID:  oldRoom,
				Event:   "userJoined",
				Payload: members,
			})
		}
	}

	members := deps.Rooms().Join(req.RoomID, req.UserName)
	sess.enterRoom(req.RoomID, req.UserName)
	deps.Rooms().Record(req.RoomID, room.KindJoin, req.UserName, "")

	logger.Infof("user %s joined room %s (members: %v)", req.UserName, req.RoomID, members)

	res = res.withBroadcast(Broadcast{
		RoomID:  req.RoomID,
		Event:   "userJoined",
		Payload: members,
	})

	// Replay retained log entries oldest-first to the joining connection
	// only; peers already saw them live.
	entries := deps.Rooms().LogEntries(req.RoomID)
	for i := len(entries) - 1; i >= 0; i-- {
		res = res.withSenderEmit(Emit{
			Event:   "sessionLog",
			Payload: entries[i],
		})
	}

	return res
}

// LeaveRoom removes the connection from its current room. A no-op while
// unjoined.
func LeaveRoom(deps Deps, sess *Session) EventResult {
	var res EventResult

	roomID, userName, ok := sess.Current()
	if !ok {
		return res
	}

	members, _ := deps.Rooms().Leave(roomID, userName)
	sess.clear()

	logger.Infof("user %s left room %s", userName, roomID)

	if len(members) > 0 {
		res = res.withBroadcast(Broadcast{
			RoomID:  roomID,
			Event:   "userJoined",
			Payload: members,
		})
	}

	return res
}

// Disconnect handles a transport-level drop: same membership removal as an
// explicit leave, plus a session log entry so remaining peers see the
// departure in the room's activity feed.
func Disconnect(deps Deps, sess *Session) EventResult {
	var res EventResult

	roomID, userName, ok := sess.Current()
	if !ok {
		return res
	}

	members, removed := deps.Rooms().Leave(roomID, userName)
	sess.clear()

	logger.Infof("user %s disconnected from room %s", userName, roomID)

	if removed || len(members) == 0 {
		return res
	}

	res = res.withBroadcast(Broadcast{
		RoomID:  roomID,
		Event:   "userJoined",
		Payload: members,
	})

	entry := deps.Rooms().Record(roomID, room.KindLeave, userName, "")
	res = res.withBroadcast(Broadcast{
		RoomID:  roomID,
		Event:   "sessionLog",
		Payload: entry,
	})

	return res
}
