package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// Store holds live sessions in memory. There is no persistence: a session
// lives from creation until process exit, matching the single-session model.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewStore() *Store {
	return &Store{sessions: map[uuid.UUID]*Session{}}
}

func (st *Store) Create() (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := New()
	st.sessions[s.ID] = s
	return s.Clone()
}

// Get returns a deep copy of the session, taken under the store lock.
// Callers never see live state, so reads need no further synchronization.
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.Clone()
}

func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Update runs fn against the live session under the store lock, preserving
// the single-writer rule for aggregate mutation. The returned copy is taken
// before the lock is released, so responses built from it cannot race a
// later writer. On a fn error the copy still reflects the session state.
func (st *Store) Update(id uuid.UUID, fn func(*Session) error) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	ferr := fn(s)
	out, err := s.Clone()
	if err != nil {
		return nil, err
	}
	return out, ferr
}
