// Package scoring computes quiz scores and per-question outcome
// classifications. All functions are pure: no clock, no locks, no I/O.
package scoring

import (
	"math"
	"time"

	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/apperr"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/model"
)

// Outcome classifies a single question at scoring time.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeSkipped   Outcome = "skipped"
)

// QuestionResult is one row of the per-question results breakdown.
type QuestionResult struct {
	QuestionIndex  int     `json:"question_index"`
	Outcome        Outcome `json:"outcome"`
	SelectedOption *int    `json:"selected_option,omitempty"`
	CorrectOption  int     `json:"correct_option"`
}

// Result is the final payload of a completed session.
type Result struct {
	Score          int              `json:"score"`
	CorrectCount   int              `json:"correct_count"`
	IncorrectCount int              `json:"incorrect_count"`
	SkippedCount   int              `json:"skipped_count"`
	TimeSpentMs    int64            `json:"time_spent_ms"`
	Breakdown      []QuestionResult `json:"per_question_breakdown"`
}

// AnsweredCount returns how many questions received an answer.
func (r Result) AnsweredCount() int {
	return r.CorrectCount + r.IncorrectCount
}

// Score computes the integer percentage score for an answer set.
// Unanswered questions count as incorrect, never as excluded. Rounding is
// half-up to the nearest integer. A quiz with zero questions is a validation
// error; the repository invariant makes this unreachable for stored quizzes.
func Score(questions []model.Question, answers map[int]int) (int, error) {
	if len(questions) == 0 {
		return 0, apperr.Validationf("cannot score a quiz with no questions")
	}

	correct := 0
	for i, q := range questions {
		if selected, ok := answers[i]; ok && selected == q.CorrectAnswer {
			correct++
		}
	}

	return int(math.Round(100 * float64(correct) / float64(len(questions)))), nil
}

// Classify returns the per-question outcome for each question index in order.
func Classify(questions []model.Question, answers map[int]int) []Outcome {
	outcomes := make([]Outcome, len(questions))
	for i, q := range questions {
		selected, ok := answers[i]
		switch {
		case !ok:
			outcomes[i] = OutcomeSkipped
		case selected == q.CorrectAnswer:
			outcomes[i] = OutcomeCorrect
		default:
			outcomes[i] = OutcomeIncorrect
		}
	}
	return outcomes
}

// BuildResult assembles the full results payload for a finished answer set.
func BuildResult(questions []model.Question, answers map[int]int, timeSpent time.Duration) (Result, error) {
	score, err := Score(questions, answers)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Score:       score,
		TimeSpentMs: timeSpent.Milliseconds(),
		Breakdown:   make([]QuestionResult, len(questions)),
	}

	for i, q := range questions {
		row := QuestionResult{
			QuestionIndex: i,
			CorrectOption: q.CorrectAnswer,
		}
		if selected, ok := answers[i]; ok {
			sel := selected
			row.SelectedOption = &sel
			if selected == q.CorrectAnswer {
				row.Outcome = OutcomeCorrect
				result.CorrectCount++
			} else {
				row.Outcome = OutcomeIncorrect
				result.IncorrectCount++
			}
		} else {
			row.Outcome = OutcomeSkipped
			result.SkippedCount++
		}
		result.Breakdown[i] = row
	}

	return result, nil
}
