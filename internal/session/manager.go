package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/apperr"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/model"
)

// Manager owns all live sessions. It hands out session handles by ID,
// replaces a session on retake and stops countdowns when sessions are
// abandoned or the service shuts down.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	log      zerolog.Logger
}

// NewManager creates an empty session manager.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		log:      log.With().Str("component", "session_manager").Logger(),
	}
}

// Create builds a new session in the mode-selection phase and registers it.
func (m *Manager) Create(quiz *model.Quiz, opts Options) (*Session, error) {
	sess, err := New(quiz, opts)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[sess.ID()] = sess
	m.mu.Unlock()

	m.log.Debug().
		Str("session_id", sess.ID().String()).
		Str("quiz_id", quiz.ID.String()).
		Msg("Session created")
	return sess, nil
}

// Get returns the live session with the given ID.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return sess, nil
}

// Retake discards the given session and registers a fresh one against the
// same quiz, back in the mode-selection phase. The old session's countdown is
// stopped; its options (finish hook, tick pacing) carry over.
func (m *Manager) Retake(id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	old, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return nil, apperr.ErrNotFound
	}
	delete(m.sessions, id)
	m.mu.Unlock()

	old.Stop()

	fresh, err := New(old.quiz, old.opts)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[fresh.ID()] = fresh
	m.mu.Unlock()

	m.log.Debug().
		Str("old_session_id", id.String()).
		Str("session_id", fresh.ID().String()).
		Msg("Session retaken")
	return fresh, nil
}

// Abandon removes a session and stops its countdown. Removing an unknown ID
// reports not-found.
func (m *Manager) Abandon(id uuid.UUID) error {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return apperr.ErrNotFound
	}
	delete(m.sessions, id)
	m.mu.Unlock()

	sess.Stop()
	m.log.Debug().Str("session_id", id.String()).Msg("Session abandoned")
	return nil
}

// Shutdown stops every live countdown. Called during graceful shutdown so no
// timer goroutine outlives the server.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		sessions = append(sessions, sess)
	}
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()

	for _, sess := range sessions {
		sess.Stop()
	}
	m.log.Info().Int("stopped", len(sessions)).Msg("Session manager drained")
}
