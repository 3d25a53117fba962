package session

import (
	"context"
	"sync"

	"chatorder/internal/domain/chat"
	"chatorder/internal/pkg/errs"

	"github.com/google/uuid"
)

// Store keeps chat sessions in process memory. Conversation state is
// deliberately not persisted anywhere: a session lives as long as the
// process and is owned by one logical flow at a time, so a mutex-guarded map
// is the whole implementation.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*chat.Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*chat.Session)}
}

func (s *Store) Create(_ context.Context, sess *chat.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sess.ID()]; ok {
		return errs.New("session already exists")
	}
	s.sessions[sess.ID()] = sess
	return nil
}

func (s *Store) Get(_ context.Context, id uuid.UUID) (*chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	return sess, nil
}

func (s *Store) Save(_ context.Context, sess *chat.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sess.ID()]; !ok {
		return errs.ErrSessionNotFound
	}
	s.sessions[sess.ID()] = sess
	return nil
}
