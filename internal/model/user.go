package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the demo account profile. Authentication here is simulated: a single
// account is seeded at startup and every login issues a short-lived JWT.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Tier      string    `json:"tier"`
	AvatarURL string    `json:"avatar"`
	JoinDate  time.Time `json:"join_date"`
	Stats     UserStats `json:"stats"`
}

// UserStats aggregates per-user activity counters shown on the dashboard.
type UserStats struct {
	QuizzesCreated    int `json:"quizzes_created"`
	QuestionsAnswered int `json:"questions_answered"`
	Accuracy          int `json:"accuracy"`
	Streak            int `json:"streak"`
}

// StatsUpdate is the outbound payload pushed to the user-stats store when a
// session finishes.
type StatsUpdate struct {
	QuestionsAnswered int `json:"questions_answered"`
	Accuracy          int `json:"accuracy"`
}

// LoginRequest is the payload for the demo login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
