package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileCode_ProducesExecutionInstruction(t *testing.T) {
	res := CompileCode(CompileCodePayload{
		Code:     "print(42)",
		Language: "python",
		Input:    "stdin text",
		RoomID:   "room-1",
	})

	require.Empty(t, res.Broadcasts())

	instr := res.Execution()
	require.NotNil(t, instr)
	require.Equal(t, "room-1", instr.RoomID)
	require.Equal(t, "python", instr.Request.Language)
	require.Equal(t, "print(42)", instr.Request.Code)
	require.Equal(t, "stdin text", instr.Request.Stdin)
}

func TestCompileCode_RejectsMissingParameters(t *testing.T) {
	require.Nil(t, CompileCode(CompileCodePayload{Language: "python", RoomID: "r"}).Execution())
	require.Nil(t, CompileCode(CompileCodePayload{Code: "x", RoomID: "r"}).Execution())
	require.Nil(t, CompileCode(CompileCodePayload{Code: "x", Language: "python"}).Execution())
}

func TestCompileCode_EmptyStdinIsAllowed(t *testing.T) {
	res := CompileCode(CompileCodePayload{Code: "x", Language: "go", RoomID: "r"})

	require.NotNil(t, res.Execution())
	require.Empty(t, res.Execution().Request.Stdin)
}
