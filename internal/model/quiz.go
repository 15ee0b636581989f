package model

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty enumerates the supported quiz difficulty levels.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// CreationMethod records how a quiz came into existence. Informational only.
type CreationMethod string

const (
	CreationMethodAIGenerated CreationMethod = "ai_generated"
	CreationMethodCopyPaste   CreationMethod = "copy_paste"
	CreationMethodManual      CreationMethod = "manual"
)

// Quiz represents a playable quiz with its running statistics.
type Quiz struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Subject        string         `json:"subject"`
	ExamType       string         `json:"exam_type"`
	Difficulty     Difficulty     `json:"difficulty"`
	Questions      []Question     `json:"questions"`
	CreationMethod CreationMethod `json:"creation_method"`
	IsPublic       bool           `json:"is_public"`
	IsFavorited    bool           `json:"is_favorited"`
	Attempts       int            `json:"attempts"`
	AverageScore   int            `json:"average_score"`
	CreatedAt      time.Time      `json:"created_at"`
	LastAccessed   time.Time      `json:"last_accessed"`
}

// CreateQuizRequest is the payload for manually creating a quiz.
type CreateQuizRequest struct {
	Title       string          `json:"title" binding:"required,min=3,max=255"`
	Description string          `json:"description" binding:"omitempty,max=2000"`
	Subject     string          `json:"subject" binding:"required,min=1,max=255"`
	ExamType    string          `json:"exam_type" binding:"required,min=1,max=50"`
	Difficulty  string          `json:"difficulty" binding:"required,oneof=basic intermediate advanced"`
	Questions   []QuestionInput `json:"questions" binding:"required,min=1,dive"`
	IsPublic    bool            `json:"is_public"`
}

// GenerateQuizRequest is the payload for the simulated AI generation flow.
type GenerateQuizRequest struct {
	Topic         string `json:"topic" binding:"required,min=1,max=255"`
	ExamType      string `json:"exam_type" binding:"omitempty,max=50"`
	Difficulty    string `json:"difficulty" binding:"required,oneof=basic intermediate advanced"`
	QuestionCount int    `json:"question_count" binding:"required,gte=1,lte=20"`
}

// ImportQuizRequest is the payload for the copy-paste creation flow.
type ImportQuizRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	ExamType    string `json:"exam_type" binding:"omitempty,max=50"`
	Difficulty  string `json:"difficulty" binding:"required,oneof=basic intermediate advanced"`
	Content     string `json:"content" binding:"required,min=1"`
}
