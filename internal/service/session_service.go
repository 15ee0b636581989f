package service

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/apperr"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/model"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/repository"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/scoring"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/session"
)

// SessionService wires the session state machine to the quiz repository and
// the user-stats store. When a session finishes — explicitly or through
// countdown expiry — the quiz's running statistics and the user's activity
// counters are updated exactly once.
type SessionService struct {
	manager  *session.Manager
	quizRepo *repository.QuizRepository
	stats    *repository.UserStatsStore
	log      zerolog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(manager *session.Manager, quizRepo *repository.QuizRepository, stats *repository.UserStatsStore, log zerolog.Logger) *SessionService {
	return &SessionService{
		manager:  manager,
		quizRepo: quizRepo,
		stats:    stats,
		log:      log.With().Str("component", "session_service").Logger(),
	}
}

// Start creates a session for a quiz, in the mode-selection phase.
func (s *SessionService) Start(userID, quizID uuid.UUID) (*session.Session, error) {
	quiz, err := s.quizRepo.Get(quizID)
	if err != nil {
		return nil, err
	}

	return s.manager.Create(quiz, session.Options{
		OnFinish: s.finishHook(userID, quizID),
	})
}

// finishHook builds the per-session completion callback: quiz stats first,
// then the outbound user-stats update.
func (s *SessionService) finishHook(userID, quizID uuid.UUID) func(scoring.Result) {
	return func(result scoring.Result) {
		if err := s.quizRepo.RecordSessionResult(quizID, result.Score, result.TimeSpentMs); err != nil {
			s.log.Error().Err(err).
				Str("quiz_id", quizID.String()).
				Msg("Failed to record session result")
		}
		s.stats.Apply(userID, model.StatsUpdate{
			QuestionsAnswered: result.AnsweredCount(),
			Accuracy:          result.Score,
		})
		s.log.Info().
			Str("quiz_id", quizID.String()).
			Int("score", result.Score).
			Int64("time_spent_ms", result.TimeSpentMs).
			Msg("Session finished")
	}
}

// Get returns the live session with the given ID.
func (s *SessionService) Get(id uuid.UUID) (*session.Session, error) {
	return s.manager.Get(id)
}

// SelectMode chooses practice or exam for a session.
func (s *SessionService) SelectMode(id uuid.UUID, mode session.Mode) (session.Snapshot, error) {
	sess, err := s.manager.Get(id)
	if err != nil {
		return session.Snapshot{}, err
	}
	if err := sess.SelectMode(mode); err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// SelectAnswer records an answer on a session.
func (s *SessionService) SelectAnswer(id uuid.UUID, questionIndex, optionIndex int) (session.Snapshot, error) {
	sess, err := s.manager.Get(id)
	if err != nil {
		return session.Snapshot{}, err
	}
	if err := sess.SelectAnswer(questionIndex, optionIndex); err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// Navigate applies a direction step or a direct jump.
func (s *SessionService) Navigate(id uuid.UUID, req model.NavigateRequest) (session.Snapshot, error) {
	sess, err := s.manager.Get(id)
	if err != nil {
		return session.Snapshot{}, err
	}

	switch {
	case req.Index != nil:
		err = sess.JumpTo(*req.Index)
	case req.Direction == "next":
		err = sess.Next()
	case req.Direction == "previous":
		err = sess.Previous()
	default:
		err = apperr.Validationf("navigate requires a direction or an index")
	}
	if err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// ToggleFlag flips the review flag on a question.
func (s *SessionService) ToggleFlag(id uuid.UUID, questionIndex int) (session.Snapshot, error) {
	sess, err := s.manager.Get(id)
	if err != nil {
		return session.Snapshot{}, err
	}
	if err := sess.ToggleFlag(questionIndex); err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// RequestExplanation reveals the current question's explanation (practice mode).
func (s *SessionService) RequestExplanation(id uuid.UUID) (session.Snapshot, error) {
	sess, err := s.manager.Get(id)
	if err != nil {
		return session.Snapshot{}, err
	}
	if err := sess.RequestExplanation(); err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// Finish completes a session and returns the results payload.
func (s *SessionService) Finish(id uuid.UUID) (scoring.Result, error) {
	sess, err := s.manager.Get(id)
	if err != nil {
		return scoring.Result{}, err
	}
	return sess.Finish()
}

// Retake replaces a session with a fresh one against the same quiz.
func (s *SessionService) Retake(id uuid.UUID) (*session.Session, error) {
	return s.manager.Retake(id)
}

// Abandon discards a session and stops its countdown.
func (s *SessionService) Abandon(id uuid.UUID) error {
	return s.manager.Abandon(id)
}
