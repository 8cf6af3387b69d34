package websocket

import (
	"testing"

	"github.com/collabide/server/internal/websocket/handlers"
	"github.com/stretchr/testify/require"
)

func TestDecodeAny_MapToStruct(t *testing.T) {
	input := map[string]any{
		"roomId":   "room-1",
		"userName": "alice",
	}

	var payload handlers.JoinPayload
	require.NoError(t, decodeAny(input, &payload))
	require.Equal(t, "room-1", payload.RoomID)
	require.Equal(t, "alice", payload.UserName)
}

func TestDecodeAny_MissingFieldsDecodeToZero(t *testing.T) {
	var payload handlers.CompileCodePayload
	require.NoError(t, decodeAny(map[string]any{"roomId": "r"}, &payload))

	require.Equal(t, "r", payload.RoomID)
	require.Empty(t, payload.Code)
	require.Empty(t, payload.Language)
}

func TestDecodeFirst_EmptyDataIsDropped(t *testing.T) {
	var payload handlers.JoinPayload
	require.False(t, decodeFirst(nil, &payload))
}

func TestDecodeFirst_UndecodablePayloadIsDropped(t *testing.T) {
	var payload handlers.JoinPayload
	require.False(t, decodeFirst([]any{make(chan int)}, &payload))
}

func TestDecodeFirst_PassthroughPosition(t *testing.T) {
	input := map[string]any{
		"roomId":   "room-1",
		"userName": "alice",
		"position": map[string]any{"lineNumber": float64(3), "column": float64(7)},
	}

	var payload handlers.CursorMovePayload
	require.True(t, decodeFirst([]any{input}, &payload))
	require.Equal(t, map[string]any{"lineNumber": float64(3), "column": float64(7)}, payload.Position)
}
