package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/apperr"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/model"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/repository"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/service"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	svc    *service.SessionService
	repo   *repository.QuizRepository
	stats  *repository.UserStatsStore
	quiz   *model.Quiz
	userID uuid.UUID
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	log := zerolog.Nop()
	repo := repository.NewQuizRepository()
	stats := repository.NewUserStatsStore()
	manager := session.NewManager(log)
	t.Cleanup(manager.Shutdown)

	quiz := &model.Quiz{
		Title: "Pharmacology Review",
		Questions: []model.Question{
			{
				Prompt:        "Which receptor does atropine block?",
				Options:       []string{"Muscarinic", "Nicotinic", "Beta-1", "Alpha-2"},
				CorrectAnswer: 0,
			},
			{
				Prompt:        "Which drug class ends in -olol?",
				Options:       []string{"ACE inhibitors", "Beta blockers", "Statins", "Diuretics"},
				CorrectAnswer: 1,
			},
		},
	}
	require.NoError(t, repo.Create(quiz))

	return &sessionFixture{
		svc:    service.NewSessionService(manager, repo, stats, log),
		repo:   repo,
		stats:  stats,
		quiz:   quiz,
		userID: uuid.New(),
	}
}

func TestStart_UnknownQuizIsNotFound(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.svc.Start(f.userID, uuid.New())

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStart_BeginsInModeSelection(t *testing.T) {
	f := newSessionFixture(t)

	sess, err := f.svc.Start(f.userID, f.quiz.ID)

	require.NoError(t, err)
	snap := sess.Snapshot()
	assert.Equal(t, session.PhaseModeSelection, snap.Phase)
	assert.Equal(t, f.quiz.ID, snap.QuizID)
	assert.Equal(t, 2, snap.TotalQuestions)
}

func TestFinish_RecordsQuizStatsAndUserStats(t *testing.T) {
	f := newSessionFixture(t)
	sess, err := f.svc.Start(f.userID, f.quiz.ID)
	require.NoError(t, err)

	_, err = f.svc.SelectMode(sess.ID(), session.ModePractice)
	require.NoError(t, err)
	_, err = f.svc.SelectAnswer(sess.ID(), 0, 0) // correct
	require.NoError(t, err)
	_, err = f.svc.SelectAnswer(sess.ID(), 1, 2) // incorrect
	require.NoError(t, err)

	result, err := f.svc.Finish(sess.ID())
	require.NoError(t, err)
	assert.Equal(t, 50, result.Score)

	stored, err := f.repo.Get(f.quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Attempts)
	assert.Equal(t, 50, stored.AverageScore)

	userStats := f.stats.Get(f.userID)
	assert.Equal(t, 2, userStats.QuestionsAnswered)
	assert.Equal(t, 50, userStats.Accuracy)
}

func TestFinish_SecondCallDoesNotDoubleCount(t *testing.T) {
	f := newSessionFixture(t)
	sess, err := f.svc.Start(f.userID, f.quiz.ID)
	require.NoError(t, err)

	_, err = f.svc.SelectMode(sess.ID(), session.ModeExam)
	require.NoError(t, err)

	_, err = f.svc.Finish(sess.ID())
	require.NoError(t, err)
	_, err = f.svc.Finish(sess.ID())
	require.NoError(t, err)

	stored, err := f.repo.Get(f.quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Attempts)
}

func TestNavigate(t *testing.T) {
	f := newSessionFixture(t)
	sess, err := f.svc.Start(f.userID, f.quiz.ID)
	require.NoError(t, err)
	_, err = f.svc.SelectMode(sess.ID(), session.ModeExam)
	require.NoError(t, err)

	snap, err := f.svc.Navigate(sess.ID(), model.NavigateRequest{Direction: "next"})
	require.NoError(t, err)
	assert.Equal(t, 1, snap.CurrentIndex)

	snap, err = f.svc.Navigate(sess.ID(), model.NavigateRequest{Direction: "previous"})
	require.NoError(t, err)
	assert.Equal(t, 0, snap.CurrentIndex)

	index := 1
	snap, err = f.svc.Navigate(sess.ID(), model.NavigateRequest{Index: &index})
	require.NoError(t, err)
	assert.Equal(t, 1, snap.CurrentIndex)

	_, err = f.svc.Navigate(sess.ID(), model.NavigateRequest{})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRetake_ReplacesSession(t *testing.T) {
	f := newSessionFixture(t)
	sess, err := f.svc.Start(f.userID, f.quiz.ID)
	require.NoError(t, err)
	_, err = f.svc.SelectMode(sess.ID(), session.ModePractice)
	require.NoError(t, err)
	_, err = f.svc.SelectAnswer(sess.ID(), 0, 0)
	require.NoError(t, err)
	_, err = f.svc.Finish(sess.ID())
	require.NoError(t, err)

	fresh, err := f.svc.Retake(sess.ID())
	require.NoError(t, err)

	snap := fresh.Snapshot()
	assert.NotEqual(t, sess.ID(), fresh.ID())
	assert.Equal(t, session.PhaseModeSelection, snap.Phase)
	assert.Empty(t, snap.Answers)

	// The old session ID is gone.
	_, err = f.svc.Get(sess.ID())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAbandon_RemovesSession(t *testing.T) {
	f := newSessionFixture(t)
	sess, err := f.svc.Start(f.userID, f.quiz.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Abandon(sess.ID()))

	assert.ErrorIs(t, f.svc.Abandon(sess.ID()), apperr.ErrNotFound)
	_, err = f.svc.Get(sess.ID())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// Abandonment records nothing.
	stored, err := f.repo.Get(f.quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Attempts)
}
