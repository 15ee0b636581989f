package repository

import (
	"sync"

	"github.com/google/uuid"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/model"
)

// UserStatsStore keeps per-user activity counters. Session finishes push a
// StatsUpdate through Apply; the merge semantics are overwrite, matching the
// dashboard's "latest session" view rather than a lifetime aggregate.
type UserStatsStore struct {
	mu    sync.RWMutex
	stats map[uuid.UUID]model.UserStats
}

// NewUserStatsStore creates an empty stats store.
func NewUserStatsStore() *UserStatsStore {
	return &UserStatsStore{
		stats: make(map[uuid.UUID]model.UserStats),
	}
}

// Get returns the stats for a user; zero values for an unknown user.
func (s *UserStatsStore) Get(userID uuid.UUID) model.UserStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats[userID]
}

// Apply merges a session-finish update into the user's stats.
func (s *UserStatsStore) Apply(userID uuid.UUID, update model.StatsUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.stats[userID]
	st.QuestionsAnswered = update.QuestionsAnswered
	st.Accuracy = update.Accuracy
	s.stats[userID] = st
}

// IncrementQuizzesCreated bumps the created-quiz counter for a user.
func (s *UserStatsStore) IncrementQuizzesCreated(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.stats[userID]
	st.QuizzesCreated++
	s.stats[userID] = st
}
