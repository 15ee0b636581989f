package scoring_test

import (
	"testing"
	"time"

	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/apperr"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/model"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeQuestions(correctAnswers ...int) []model.Question {
	questions := make([]model.Question, len(correctAnswers))
	for i, ans := range correctAnswers {
		questions[i] = model.Question{
			Prompt:        "question",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: ans,
		}
	}
	return questions
}

func TestScore_AllCorrect(t *testing.T) {
	questions := makeQuestions(0, 1, 2)
	answers := map[int]int{0: 0, 1: 1, 2: 2}

	score, err := scoring.Score(questions, answers)

	require.NoError(t, err)
	assert.Equal(t, 100, score)
}

func TestScore_RoundsHalfUp(t *testing.T) {
	// 1 of 8 correct = 12.5% which rounds up to 13.
	questions := makeQuestions(0, 0, 0, 0, 0, 0, 0, 0)
	answers := map[int]int{0: 0}

	score, err := scoring.Score(questions, answers)

	require.NoError(t, err)
	assert.Equal(t, 13, score)
}

func TestScore_OneThird(t *testing.T) {
	questions := makeQuestions(0, 0, 0)

	score, err := scoring.Score(questions, map[int]int{0: 0, 1: 1, 2: 1})
	require.NoError(t, err)
	assert.Equal(t, 33, score)

	score, err = scoring.Score(questions, map[int]int{0: 0, 1: 0, 2: 1})
	require.NoError(t, err)
	assert.Equal(t, 67, score)
}

func TestScore_UnansweredCountAsIncorrect(t *testing.T) {
	questions := makeQuestions(0, 1)

	score, err := scoring.Score(questions, map[int]int{0: 0})

	require.NoError(t, err)
	assert.Equal(t, 50, score)
}

func TestScore_NoAnswersIsZero(t *testing.T) {
	questions := makeQuestions(0, 1, 2)

	score, err := scoring.Score(questions, map[int]int{})

	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestScore_ZeroQuestionsIsError(t *testing.T) {
	_, err := scoring.Score(nil, map[int]int{})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestClassify(t *testing.T) {
	questions := makeQuestions(0, 1, 2)
	answers := map[int]int{0: 0, 1: 3}

	outcomes := scoring.Classify(questions, answers)

	require.Len(t, outcomes, 3)
	assert.Equal(t, scoring.OutcomeCorrect, outcomes[0])
	assert.Equal(t, scoring.OutcomeIncorrect, outcomes[1])
	assert.Equal(t, scoring.OutcomeSkipped, outcomes[2])
}

func TestBuildResult(t *testing.T) {
	questions := makeQuestions(0, 1, 2, 3)
	answers := map[int]int{0: 0, 1: 0, 3: 3}

	result, err := scoring.BuildResult(questions, answers, 90*time.Second)

	require.NoError(t, err)
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, 2, result.CorrectCount)
	assert.Equal(t, 1, result.IncorrectCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.Equal(t, int64(90000), result.TimeSpentMs)
	assert.Equal(t, 3, result.AnsweredCount())

	require.Len(t, result.Breakdown, 4)
	assert.Equal(t, scoring.OutcomeCorrect, result.Breakdown[0].Outcome)
	require.NotNil(t, result.Breakdown[0].SelectedOption)
	assert.Equal(t, 0, *result.Breakdown[0].SelectedOption)
	assert.Equal(t, scoring.OutcomeIncorrect, result.Breakdown[1].Outcome)
	assert.Equal(t, scoring.OutcomeSkipped, result.Breakdown[2].Outcome)
	assert.Nil(t, result.Breakdown[2].SelectedOption)
	assert.Equal(t, 2, result.Breakdown[2].CorrectOption)
	assert.Equal(t, scoring.OutcomeCorrect, result.Breakdown[3].Outcome)
}
