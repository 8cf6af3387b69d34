package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeChange_ExcludesSender(t *testing.T) {
	res := CodeChange("sock-1", CodeChangePayload{RoomID: "room-1", Code: "x := 1"})

	require.Len(t, res.Broadcasts(), 1)
	b := res.Broadcasts()[0]
	require.Equal(t, "codeUpdate", b.Event)
	require.Equal(t, "x := 1", b.Payload)
	require.Equal(t, "sock-1", b.SkipSocketID)
}

func TestCodeChange_RequiresRoomID(t *testing.T) {
	require.Empty(t, CodeChange("sock-1", CodeChangePayload{Code: "x"}).Broadcasts())
}

func TestTyping_RelaysUserName(t *testing.T) {
	res := Typing("sock-1", TypingPayload{RoomID: "room-1", UserName: "alice"})

	require.Len(t, res.Broadcasts(), 1)
	require.Equal(t, "userTyping", res.Broadcasts()[0].Event)
	require.Equal(t, "alice", res.Broadcasts()[0].Payload)
	require.Equal(t, "sock-1", res.Broadcasts()[0].SkipSocketID)
}

func TestLanguageChange_RelaysLanguage(t *testing.T) {
	res := LanguageChange("sock-1", LanguageChangePayload{RoomID: "room-1", Language: "go"})

	require.Len(t, res.Broadcasts(), 1)
	require.Equal(t, "languageUpdate", res.Broadcasts()[0].Event)
	require.Equal(t, "go", res.Broadcasts()[0].Payload)
}

func TestCursorMove_WrapsUserAndPosition(t *testing.T) {
	position := map[string]any{"line": 3, "column": 14}
	res := CursorMove("sock-1", CursorMovePayload{RoomID: "room-1", UserName: "alice", Position: position})

	require.Len(t, res.Broadcasts(), 1)
	b := res.Broadcasts()[0]
	require.Equal(t, "cursorUpdate", b.Event)
	require.Equal(t, CursorUpdatePayload{UserName: "alice", Position: position}, b.Payload)
	require.Equal(t, "sock-1", b.SkipSocketID)
}

func TestSelectionChange_WrapsUserAndSelection(t *testing.T) {
	selection := map[string]any{"from": 1, "to": 9}
	res := SelectionChange("sock-1", SelectionChangePayload{RoomID: "room-1", UserName: "alice", Selection: selection})

	require.Len(t, res.Broadcasts(), 1)
	b := res.Broadcasts()[0]
	require.Equal(t, "selectionUpdate", b.Event)
	require.Equal(t, SelectionUpdatePayload{UserName: "alice", Selection: selection}, b.Payload)
}

func TestChatTyping_ExcludesSender(t *testing.T) {
	res := ChatTyping("sock-1", ChatTypingPayload{RoomID: "room-1", UserName: "alice"})

	require.Len(t, res.Broadcasts(), 1)
	require.Equal(t, "chatTyping", res.Broadcasts()[0].Event)
	require.Equal(t, ChatTypingEvent{UserName: "alice"}, res.Broadcasts()[0].Payload)
	require.Equal(t, "sock-1", res.Broadcasts()[0].SkipSocketID)
}

func TestRelays_RequireRoomID(t *testing.T) {
	require.Empty(t, Typing("s", TypingPayload{UserName: "alice"}).Broadcasts())
	require.Empty(t, LanguageChange("s", LanguageChangePayload{Language: "go"}).Broadcasts())
	require.Empty(t, CursorMove("s", CursorMovePayload{UserName: "alice"}).Broadcasts())
	require.Empty(t, SelectionChange("s", SelectionChangePayload{UserName: "alice"}).Broadcasts())
	require.Empty(t, ChatTyping("s", ChatTypingPayload{UserName: "alice"}).Broadcasts())
}
