package room

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionLog_NewestFirst(t *testing.T) {
	l := NewSessionLog()

	l.Append("room-1", Entry{ID: "1", Kind: KindJoin, User: "alice"})
	l.Append("room-1", Entry{ID: "2", Kind: KindChat, User: "alice", Message: "hi"})
	l.Append("room-1", Entry{ID: "3", Kind: KindRun, User: "bob"})

	entries := l.Entries("room-1")
	require.Len(t, entries, 3)
	require.Equal(t, "3", entries[0].ID)
	require.Equal(t, "2", entries[1].ID)
	require.Equal(t, "1", entries[2].ID)
}

func TestSessionLog_CapsAtCapacity(t *testing.T) {
	l := NewSessionLog()

	for i := 0; i < logCapacity+25; i++ {
		l.Append("room-1", Entry{ID: fmt.Sprintf("%d", i), Kind: KindChat, User: "alice"})
	}

	entries := l.Entries("room-1")
	require.Len(t, entries, logCapacity)

	// Newest entry at index 0, oldest surviving entry at the tail.
	require.Equal(t, fmt.Sprintf("%d", logCapacity+24), entries[0].ID)
	require.Equal(t, "25", entries[logCapacity-1].ID)
}

func TestSessionLog_RoomsAreIndependent(t *testing.T) {
	l := NewSessionLog()

	l.Append("room-1", Entry{ID: "a", Kind: KindJoin, User: "alice"})
	l.Append("room-2", Entry{ID: "b", Kind: KindJoin, User: "bob"})

	require.Len(t, l.Entries("room-1"), 1)
	require.Len(t, l.Entries("room-2"), 1)
	require.Equal(t, "a", l.Entries("room-1")[0].ID)
}

func TestSessionLog_DropDiscardsEntries(t *testing.T) {
	l := NewSessionLog()
	l.Append("room-1", Entry{ID: "a", Kind: KindJoin, User: "alice"})

	l.Drop("room-1")

	require.Nil(t, l.Entries("room-1"))
}

func TestSessionLog_EntriesIsACopy(t *testing.T) {
	l := NewSessionLog()
	l.Append("room-1", Entry{ID: "a", Kind: KindJoin, User: "alice"})

	snap := l.Entries("room-1")
	snap[0].ID = "mutated"

	require.Equal(t, "a", l.Entries("room-1")[0].ID)
}

func TestService_LeaveDropsLogWithRoom(t *testing.T) {
	s := NewService(nil, func() string { return "id" })

	s.Join("room-1", "alice")
	s.Record("room-1", KindChat, "alice", "hi")
	require.Len(t, s.LogEntries("room-1"), 1)

	_, removed := s.Leave("room-1", "alice")
	require.True(t, removed)
	require.Nil(t, s.LogEntries("room-1"))
}

func TestService_RecordStampsEntries(t *testing.T) {
	var seq int
	s := NewService(nil, func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	})

	s.Join("room-1", "alice")
	entry := s.Record("room-1", KindRun, "alice", "")

	require.Equal(t, "id-1", entry.ID)
	require.Equal(t, KindRun, entry.Kind)
	require.Equal(t, "alice", entry.User)
	require.NotZero(t, entry.Timestamp)
}
