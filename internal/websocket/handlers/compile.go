package handlers

import (
	"github.com/collabide/server/internal/execution"
	"github.com/collabide/server/pkg/logger"
)

// CompileCode validates an execution request and hands it to the socket
// layer as an instruction. The bridge call itself runs on its own
// goroutine so an in-flight execution never blocks the event path; the
// result is broadcast to the whole room when it completes.
func CompileCode(req CompileCodePayload) EventResult {
	if req.Code == "" || req.Language == "" || req.RoomID == "" {
		logger.Debugf("compileCode rejected: missing parameters (roomId=%q language=%q)", req.RoomID, req.Language)
		return EventResult{}
	}

	return EventResult{
		exec: &ExecInstruction{
			RoomID: req.RoomID,
			Request: execution.Request{
				Language: req.Language,
				Code:     req.Code,
				Stdin:    req.Input,
			},
		},
	}
}
