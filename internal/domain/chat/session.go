package chat

import (
	"time"

	"github.com/google/uuid"
)

// StopSentinel is the literal turn text that tells the agent service to
// conclude the ordering dialogue. By convention it replaces whatever the
// operator had typed when the stop action is used; below the session boundary
// it travels as a normal turn.
const StopSentinel = "stop"

// Turn is one customer/agent exchange. Immutable once appended; slice order
// is the conversation transcript.
type Turn struct {
	Customer string
	Agent    string
}

// Session owns the conversation history and the agent continuation token.
// The token is opaque: it is stored and echoed back verbatim, never parsed.
type Session struct {
	id           uuid.UUID
	turns        []Turn
	historyToken string
	concluded    bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewSession(id uuid.UUID, now time.Time) *Session {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Session{
		id:        id,
		createdAt: now,
		updatedAt: now,
	}
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) HistoryToken() string { return s.historyToken }
func (s *Session) Concluded() bool      { return s.concluded }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }

// AppendTurn records a completed exchange and advances the continuation
// token. It must only be called after the agent call succeeded; a failed call
// leaves the session untouched so a retry resends the same message.
func (s *Session) AppendTurn(customer, agent, nextToken string, concluded bool, now time.Time) {
	s.turns = append(s.turns, Turn{Customer: customer, Agent: agent})
	s.historyToken = nextToken
	if concluded {
		s.concluded = true
	}
	s.updatedAt = now
}

// Transcript returns the full ordered history as a copy.
func (s *Session) Transcript() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *Session) TurnCount() int { return len(s.turns) }
