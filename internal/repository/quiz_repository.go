package repository

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/apperr"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/model"
)

// QuizRepository is the owned in-memory quiz collection. All mutations run
// under a single lock, so the read-mutate-write pattern of
// RecordSessionResult can never lose an update between concurrent finishers.
type QuizRepository struct {
	mu      sync.RWMutex
	quizzes map[uuid.UUID]*model.Quiz
}

// NewQuizRepository creates an empty repository.
func NewQuizRepository() *QuizRepository {
	return &QuizRepository{
		quizzes: make(map[uuid.UUID]*model.Quiz),
	}
}

// Create validates and stores a quiz, assigning its identity, timestamps and
// zeroed statistics. The caller provides metadata and questions only.
func (r *QuizRepository) Create(quiz *model.Quiz) error {
	if err := validateQuiz(quiz); err != nil {
		return err
	}

	now := time.Now()
	quiz.ID = uuid.New()
	quiz.CreatedAt = now
	quiz.LastAccessed = now
	quiz.Attempts = 0
	quiz.AverageScore = 0
	quiz.IsFavorited = false
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == uuid.Nil {
			quiz.Questions[i].ID = uuid.New()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.quizzes[quiz.ID] = cloneQuiz(quiz)
	return nil
}

// Get returns a copy of the quiz with the given ID.
func (r *QuizRepository) Get(id uuid.UUID) (*model.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, fmt.Errorf("quiz %s: %w", id, apperr.ErrNotFound)
	}
	return cloneQuiz(quiz), nil
}

// List returns all quizzes, most recently created first.
func (r *QuizRepository) List() []*model.Quiz {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Quiz, 0, len(r.quizzes))
	for _, quiz := range r.quizzes {
		out = append(out, cloneQuiz(quiz))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Delete removes a quiz. Idempotent: deleting an unknown ID is not an error.
func (r *QuizRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.quizzes, id)
}

// ToggleFavorite flips the favorite flag and returns the new state.
func (r *QuizRepository) ToggleFavorite(id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return false, fmt.Errorf("quiz %s: %w", id, apperr.ErrNotFound)
	}
	quiz.IsFavorited = !quiz.IsFavorited
	return quiz.IsFavorited, nil
}

// RecordSessionResult folds one finished session into the quiz's running
// statistics: attempts increments once, the average score is recomputed
// incrementally and lastAccessed is bumped. Atomic under the repository lock.
func (r *QuizRepository) RecordSessionResult(id uuid.UUID, score int, timeSpentMs int64) error {
	if score < 0 || score > 100 {
		return apperr.Validationf("score %d outside [0,100]", score)
	}
	if timeSpentMs < 0 {
		return apperr.Validationf("negative time spent")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return fmt.Errorf("quiz %s: %w", id, apperr.ErrNotFound)
	}

	newAttempts := quiz.Attempts + 1
	sum := float64(quiz.AverageScore)*float64(quiz.Attempts) + float64(score)
	quiz.AverageScore = int(math.Round(sum / float64(newAttempts)))
	quiz.Attempts = newAttempts
	quiz.LastAccessed = time.Now()
	return nil
}

// validateQuiz enforces the playable-quiz invariants: at least one question,
// every prompt non-empty, exactly four non-empty options and a correct-answer
// index inside the option range.
func validateQuiz(quiz *model.Quiz) error {
	if quiz == nil {
		return apperr.Validationf("quiz is required")
	}
	if quiz.Title == "" {
		return apperr.Validationf("quiz title is required")
	}
	if len(quiz.Questions) == 0 {
		return apperr.Validationf("quiz must have at least one question")
	}
	for i, q := range quiz.Questions {
		if q.Prompt == "" {
			return apperr.Validationf("question %d has an empty prompt", i)
		}
		if len(q.Options) != model.OptionsPerQuestion {
			return apperr.Validationf("question %d has %d options, want %d", i, len(q.Options), model.OptionsPerQuestion)
		}
		for j, opt := range q.Options {
			if opt == "" {
				return apperr.Validationf("question %d option %d is empty", i, j)
			}
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return apperr.Validationf("question %d correct answer index %d out of range", i, q.CorrectAnswer)
		}
	}
	return nil
}

// cloneQuiz copies a quiz deeply enough that callers can never mutate stored
// state through a returned pointer.
func cloneQuiz(quiz *model.Quiz) *model.Quiz {
	cp := *quiz
	cp.Questions = make([]model.Question, len(quiz.Questions))
	copy(cp.Questions, quiz.Questions)
	for i := range cp.Questions {
		opts := make([]string, len(quiz.Questions[i].Options))
		copy(opts, quiz.Questions[i].Options)
		cp.Questions[i].Options = opts
	}
	return &cp
}
