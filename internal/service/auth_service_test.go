package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/config"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/model"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/repository"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:    "test-secret",
		JWTExpiry:    time.Hour,
		BcryptCost:   4, // bcrypt.MinCost keeps the test fast
		DemoEmail:    "student@medquiz.test",
		DemoPassword: "password123",
	}
}

func newAuthService(t *testing.T) (*service.AuthService, *repository.UserStatsStore) {
	t.Helper()
	stats := repository.NewUserStatsStore()
	auth, err := service.NewAuthService(testConfig(), stats)
	require.NoError(t, err)
	return auth, stats
}

func TestLogin_Success(t *testing.T) {
	auth, _ := newAuthService(t)

	token, user, err := auth.Login("student@medquiz.test", "password123")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "student@medquiz.test", user.Email)
	assert.Equal(t, "student", user.Name)
	assert.Equal(t, "free", user.Tier)
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	auth, _ := newAuthService(t)

	_, _, err := auth.Login("Student@MedQuiz.Test", "password123")

	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth, _ := newAuthService(t)

	_, _, err := auth.Login("student@medquiz.test", "wrong-password")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	auth, _ := newAuthService(t)

	_, _, err := auth.Login("nobody@medquiz.test", "password123")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateToken_Roundtrip(t *testing.T) {
	auth, _ := newAuthService(t)

	token, user, err := auth.Login("student@medquiz.test", "password123")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.ValidateToken("not.a.token")

	assert.Error(t, err)
}

func TestValidateToken_RejectsForeignSignature(t *testing.T) {
	auth, _ := newAuthService(t)

	otherCfg := testConfig()
	otherCfg.JWTSecret = "a-different-secret"
	other, err := service.NewAuthService(otherCfg, repository.NewUserStatsStore())
	require.NoError(t, err)

	token, _, err := other.Login("student@medquiz.test", "password123")
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}

func TestProfile_ReflectsStats(t *testing.T) {
	auth, stats := newAuthService(t)
	_, user, err := auth.Login("student@medquiz.test", "password123")
	require.NoError(t, err)

	stats.Apply(user.ID, model.StatsUpdate{QuestionsAnswered: 7, Accuracy: 86})
	stats.IncrementQuizzesCreated(user.ID)

	profile := auth.Profile(user.ID)
	assert.Equal(t, 7, profile.Stats.QuestionsAnswered)
	assert.Equal(t, 86, profile.Stats.Accuracy)
	assert.Equal(t, 1, profile.Stats.QuizzesCreated)

	// A different user ID sees zeroed stats on the shared demo profile.
	assert.Equal(t, model.UserStats{}, auth.Profile(uuid.New()).Stats)
}
