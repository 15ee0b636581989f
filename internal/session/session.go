// Package session implements the quiz-taking state machine: mode selection,
// answer capture, navigation, flagging, the exam countdown and the transition
// into a terminal results phase.
package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/apperr"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/model"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/scoring"
)

// Mode selects the feedback behavior of a session.
type Mode string

const (
	// ModePractice reveals explanations immediately after each answer.
	ModePractice Mode = "practice"
	// ModeExam defers all feedback until completion and runs a countdown.
	ModeExam Mode = "exam"
)

// Phase is the lifecycle state of a session.
type Phase string

const (
	PhaseModeSelection Phase = "mode_selection"
	PhaseInProgress    Phase = "in_progress"
	PhaseCompleted     Phase = "completed"
)

// ExamTimePerQuestion is the fixed time budget granted per question in exam mode.
const ExamTimePerQuestion = 2 * time.Minute

// Snapshot is the outbound read-only view of a session handed to callers.
type Snapshot struct {
	SessionID        uuid.UUID   `json:"session_id"`
	QuizID           uuid.UUID   `json:"quiz_id"`
	QuizTitle        string      `json:"quiz_title"`
	Mode             Mode        `json:"mode,omitempty"`
	Phase            Phase       `json:"phase"`
	CurrentIndex     int         `json:"current_index"`
	TotalQuestions   int         `json:"total_questions"`
	Answers          map[int]int `json:"answers"`
	FlaggedQuestions []int       `json:"flagged_questions"`
	TimeRemainingMs  *int64      `json:"time_remaining_ms,omitempty"`
	ShowExplanation  bool        `json:"show_explanation"`
	StartedAt        *time.Time  `json:"started_at,omitempty"`
}

// StreamEvent is one frame of the live session stream.
type StreamEvent struct {
	Type     string          `json:"type"` // "snapshot" or "result"
	Snapshot *Snapshot       `json:"snapshot,omitempty"`
	Result   *scoring.Result `json:"result,omitempty"`
}

// Options configures a session at creation time.
type Options struct {
	// OnFinish is invoked exactly once when the session completes, by either
	// an explicit finish or countdown expiry.
	OnFinish func(scoring.Result)
	// TickInterval overrides the real-time pacing of the exam countdown.
	// Zero means one second.
	TickInterval time.Duration
}

// Session is a single quiz-taking attempt. All methods are safe for
// concurrent use; the countdown goroutine and HTTP callers share it.
type Session struct {
	mu   sync.Mutex
	id   uuid.UUID
	quiz *model.Quiz
	opts Options

	phase         Phase
	mode          Mode
	current       int
	answers       map[int]int
	flagged       map[int]bool
	explained     map[int]bool
	startedAt     time.Time
	timeRemaining time.Duration
	timer         *Countdown
	result        *scoring.Result

	subscribers map[chan StreamEvent]struct{}
}

// New creates a session in the mode-selection phase against the given quiz.
// The quiz must have at least one question.
func New(quiz *model.Quiz, opts Options) (*Session, error) {
	if quiz == nil || len(quiz.Questions) == 0 {
		return nil, apperr.Validationf("session requires a quiz with at least one question")
	}
	return &Session{
		id:          uuid.New(),
		quiz:        quiz,
		opts:        opts,
		phase:       PhaseModeSelection,
		answers:     make(map[int]int),
		flagged:     make(map[int]bool),
		explained:   make(map[int]bool),
		subscribers: make(map[chan StreamEvent]struct{}),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// QuizID returns the identifier of the quiz being taken.
func (s *Session) QuizID() uuid.UUID { return s.quiz.ID }

// SelectMode transitions ModeSelection → InProgress, captures the start time
// and, in exam mode, fixes the countdown budget from the question count
// exactly once. A second call is a state error; the clock never restarts.
func (s *Session) SelectMode(mode Mode) error {
	if mode != ModePractice && mode != ModeExam {
		return apperr.Validationf("unknown mode %q", mode)
	}

	s.mu.Lock()
	if s.phase != PhaseModeSelection {
		s.mu.Unlock()
		return apperr.Transitionf("mode already selected")
	}

	s.mode = mode
	s.phase = PhaseInProgress
	s.startedAt = time.Now()

	if mode == ModeExam {
		s.timeRemaining = time.Duration(len(s.quiz.Questions)) * ExamTimePerQuestion
		s.timer = NewCountdown(s.timeRemaining, s.opts.TickInterval, s.handleTick, s.handleExpiry)
		s.timer.Start()
	}
	s.mu.Unlock()
	return nil
}

// SelectAnswer records an answer for a question. In practice mode the first
// answer latches the explanation for that question; latched questions reject
// further selections, including after navigating away and back. Exam mode
// permits re-selection until the session finishes.
func (s *Session) SelectAnswer(questionIndex, optionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseInProgress {
		return apperr.Transitionf("cannot answer in phase %s", s.phase)
	}
	if questionIndex < 0 || questionIndex >= len(s.quiz.Questions) {
		return apperr.Validationf("question index %d out of range", questionIndex)
	}
	if optionIndex < 0 || optionIndex >= model.OptionsPerQuestion {
		return apperr.Validationf("option index %d out of range", optionIndex)
	}
	if s.mode == ModePractice && s.explained[questionIndex] {
		return apperr.Transitionf("question %d is locked after its explanation was shown", questionIndex)
	}

	s.answers[questionIndex] = optionIndex
	if s.mode == ModePractice {
		s.explained[questionIndex] = true
	}
	return nil
}

// Next advances the current question by one; a no-op at the last question.
func (s *Session) Next() error {
	return s.moveTo(func(cur, max int) int {
		if cur < max {
			return cur + 1
		}
		return cur
	})
}

// Previous moves the current question back by one; a no-op at the first.
func (s *Session) Previous() error {
	return s.moveTo(func(cur, _ int) int {
		if cur > 0 {
			return cur - 1
		}
		return cur
	})
}

func (s *Session) moveTo(next func(cur, max int) int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseInProgress {
		return apperr.Transitionf("cannot navigate in phase %s", s.phase)
	}
	s.current = next(s.current, len(s.quiz.Questions)-1)
	return nil
}

// JumpTo navigates directly to the given question index.
func (s *Session) JumpTo(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseInProgress {
		return apperr.Transitionf("cannot navigate in phase %s", s.phase)
	}
	if index < 0 || index >= len(s.quiz.Questions) {
		return apperr.Validationf("question index %d out of range", index)
	}
	s.current = index
	return nil
}

// ToggleFlag adds or removes a review flag on a question. Flags are advisory
// and never affect scoring.
func (s *Session) ToggleFlag(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseInProgress {
		return apperr.Transitionf("cannot flag in phase %s", s.phase)
	}
	if index < 0 || index >= len(s.quiz.Questions) {
		return apperr.Validationf("question index %d out of range", index)
	}
	if s.flagged[index] {
		delete(s.flagged, index)
	} else {
		s.flagged[index] = true
	}
	return nil
}

// RequestExplanation reveals the explanation for the current question.
// Practice mode only, and only once the question is answered. Idempotent.
func (s *Session) RequestExplanation() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseInProgress {
		return apperr.Transitionf("cannot reveal explanation in phase %s", s.phase)
	}
	if s.mode != ModePractice {
		return apperr.Transitionf("explanations are deferred until completion in exam mode")
	}
	if _, answered := s.answers[s.current]; !answered {
		return apperr.Transitionf("question %d has no answer yet", s.current)
	}
	s.explained[s.current] = true
	return nil
}

// Finish transitions InProgress → Completed, computes the final results and
// fires the finish hook. The transition is terminal and idempotent: a second
// call returns the cached results without re-firing the hook. Countdown
// expiry calls this too, so the guard is the second line of defense against a
// dangling tick.
func (s *Session) Finish() (scoring.Result, error) {
	s.mu.Lock()
	if s.phase == PhaseCompleted {
		result := *s.result
		s.mu.Unlock()
		return result, nil
	}
	if s.phase != PhaseInProgress {
		s.mu.Unlock()
		return scoring.Result{}, apperr.Transitionf("cannot finish before a mode is selected")
	}

	result, err := scoring.BuildResult(s.quiz.Questions, s.answers, time.Since(s.startedAt))
	if err != nil {
		s.mu.Unlock()
		return scoring.Result{}, err
	}

	s.phase = PhaseCompleted
	s.result = &result
	if s.timer != nil {
		s.timer.Stop()
	}
	hook := s.opts.OnFinish
	s.broadcastLocked(StreamEvent{Type: "result", Result: &result})
	s.closeSubscribersLocked()
	s.mu.Unlock()

	if hook != nil {
		hook(result)
	}
	return result, nil
}

// Results returns the final payload of a completed session.
func (s *Session) Results() (scoring.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseCompleted {
		return scoring.Result{}, apperr.Transitionf("session is not completed")
	}
	return *s.result, nil
}

// Stop cancels the countdown without completing the session. Used when a
// session is abandoned or replaced by a retake.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.closeSubscribersLocked()
}

// Snapshot returns the current outbound view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		SessionID:      s.id,
		QuizID:         s.quiz.ID,
		QuizTitle:      s.quiz.Title,
		Mode:           s.mode,
		Phase:          s.phase,
		CurrentIndex:   s.current,
		TotalQuestions: len(s.quiz.Questions),
		Answers:        make(map[int]int, len(s.answers)),
	}
	for k, v := range s.answers {
		snap.Answers[k] = v
	}

	snap.FlaggedQuestions = make([]int, 0, len(s.flagged))
	for idx := range s.flagged {
		snap.FlaggedQuestions = append(snap.FlaggedQuestions, idx)
	}
	sort.Ints(snap.FlaggedQuestions)

	if s.phase != PhaseModeSelection {
		started := s.startedAt
		snap.StartedAt = &started
	}
	if s.mode == ModeExam && s.phase == PhaseInProgress {
		ms := s.timeRemaining.Milliseconds()
		if ms < 0 {
			ms = 0
		}
		snap.TimeRemainingMs = &ms
	}
	snap.ShowExplanation = s.mode == ModePractice && s.explained[s.current]
	return snap
}

// Subscribe registers a live stream consumer. Events are dropped rather than
// blocking when the consumer is slow; the channel is closed on completion or
// abandonment.
func (s *Session) Subscribe() chan StreamEvent {
	ch := make(chan StreamEvent, 16)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subscribers == nil {
		// Already closed out; hand back a closed channel so consumers exit.
		close(ch)
		return ch
	}
	s.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a live stream consumer.
func (s *Session) Unsubscribe(ch chan StreamEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscribers[ch]; ok {
		delete(s.subscribers, ch)
		close(ch)
	}
}

func (s *Session) broadcastLocked(ev StreamEvent) {
	for ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (s *Session) closeSubscribersLocked() {
	for ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
}

// handleTick runs on the countdown goroutine once per second in exam mode.
func (s *Session) handleTick(remaining time.Duration) {
	s.mu.Lock()
	if s.phase != PhaseInProgress {
		s.mu.Unlock()
		return
	}
	s.timeRemaining = remaining
	snap := s.snapshotLocked()
	s.broadcastLocked(StreamEvent{Type: "snapshot", Snapshot: &snap})
	s.mu.Unlock()
}

// handleExpiry runs once when the exam budget reaches zero.
func (s *Session) handleExpiry() {
	s.mu.Lock()
	s.timeRemaining = 0
	s.mu.Unlock()
	_, _ = s.Finish()
}
