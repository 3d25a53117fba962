package response

import (
	"chatorder/internal/domain/chat"
	"chatorder/internal/usecase/commands"

	"github.com/google/uuid"
)

type SessionCreatedResponse struct {
	SessionID string `json:"session_id"`
}

func FromSessionID(id uuid.UUID) *SessionCreatedResponse {
	return &SessionCreatedResponse{SessionID: id.String()}
}

type TurnResponse struct {
	Reply     string `json:"reply"`
	Concluded bool   `json:"concluded"`
}

func FromTurnResult(r *commands.TurnResult) *TurnResponse {
	return &TurnResponse{Reply: r.Reply, Concluded: r.Concluded}
}

type TranscriptEntryResponse struct {
	Customer string `json:"customer"`
	Agent    string `json:"agent"`
}

type TranscriptResponse struct {
	Turns []TranscriptEntryResponse `json:"turns"`
}

func FromTranscript(turns []chat.Turn) *TranscriptResponse {
	entries := make([]TranscriptEntryResponse, len(turns))
	for i, t := range turns {
		entries[i] = TranscriptEntryResponse{Customer: t.Customer, Agent: t.Agent}
	}
	return &TranscriptResponse{Turns: entries}
}
