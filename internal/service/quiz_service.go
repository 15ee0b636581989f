package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/model"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/repository"
)

// QuizService handles quiz lifecycle business logic: manual creation, the two
// simulated generation flows, listing, favorites and deletion.
type QuizService struct {
	quizRepo *repository.QuizRepository
	stats    *repository.UserStatsStore
	log      zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(quizRepo *repository.QuizRepository, stats *repository.UserStatsStore, log zerolog.Logger) *QuizService {
	return &QuizService{
		quizRepo: quizRepo,
		stats:    stats,
		log:      log.With().Str("component", "quiz_service").Logger(),
	}
}

// Create stores a manually authored quiz.
func (s *QuizService) Create(userID uuid.UUID, req model.CreateQuizRequest) (*model.Quiz, error) {
	questions := make([]model.Question, len(req.Questions))
	for i, q := range req.Questions {
		difficulty := model.Difficulty(q.Difficulty)
		if difficulty == "" {
			difficulty = model.Difficulty(req.Difficulty)
		}
		questions[i] = model.Question{
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Difficulty:    difficulty,
		}
	}

	quiz := &model.Quiz{
		Title:          req.Title,
		Description:    req.Description,
		Subject:        req.Subject,
		ExamType:       req.ExamType,
		Difficulty:     model.Difficulty(req.Difficulty),
		Questions:      questions,
		CreationMethod: model.CreationMethodManual,
		IsPublic:       req.IsPublic,
	}

	return s.store(userID, quiz)
}

// GenerateAI builds a quiz from the canned generation template. The AI is
// simulated: the questions are fixed shapes parameterized by topic and
// difficulty, as in the frontend prototype this service replaces.
func (s *QuizService) GenerateAI(userID uuid.UUID, req model.GenerateQuizRequest) (*model.Quiz, error) {
	examType := req.ExamType
	if examType == "" {
		examType = "NEET-UG"
	}
	difficulty := model.Difficulty(req.Difficulty)

	questions := sampleAIQuestions(req.Topic, difficulty)
	if req.QuestionCount < len(questions) {
		questions = questions[:req.QuestionCount]
	}

	quiz := &model.Quiz{
		Title:          fmt.Sprintf("AI Generated: %s Quiz", req.Topic),
		Description:    fmt.Sprintf("AI-generated quiz covering %s concepts at %s difficulty level", req.Topic, req.Difficulty),
		Subject:        req.Topic,
		ExamType:       examType,
		Difficulty:     difficulty,
		Questions:      questions,
		CreationMethod: model.CreationMethodAIGenerated,
	}

	return s.store(userID, quiz)
}

// ImportFromText builds a quiz from pasted study material using the canned
// analysis template. Content presence is validated by request binding.
func (s *QuizService) ImportFromText(userID uuid.UUID, req model.ImportQuizRequest) (*model.Quiz, error) {
	examType := req.ExamType
	if examType == "" {
		examType = "NEET-UG"
	}
	description := req.Description
	if description == "" {
		description = "Quiz created from your study materials"
	}
	difficulty := model.Difficulty(req.Difficulty)

	quiz := &model.Quiz{
		Title:          req.Title,
		Description:    description,
		Subject:        "Custom Content",
		ExamType:       examType,
		Difficulty:     difficulty,
		Questions:      samplePastedQuestions(difficulty),
		CreationMethod: model.CreationMethodCopyPaste,
	}

	return s.store(userID, quiz)
}

// Get returns a quiz by ID.
func (s *QuizService) Get(id uuid.UUID) (*model.Quiz, error) {
	return s.quizRepo.Get(id)
}

// List returns all quizzes, newest first.
func (s *QuizService) List() []*model.Quiz {
	return s.quizRepo.List()
}

// Delete removes a quiz. Idempotent.
func (s *QuizService) Delete(id uuid.UUID) {
	s.quizRepo.Delete(id)
}

// ToggleFavorite flips a quiz's favorite flag and returns the new state.
func (s *QuizService) ToggleFavorite(id uuid.UUID) (bool, error) {
	return s.quizRepo.ToggleFavorite(id)
}

func (s *QuizService) store(userID uuid.UUID, quiz *model.Quiz) (*model.Quiz, error) {
	if err := s.quizRepo.Create(quiz); err != nil {
		return nil, err
	}
	s.stats.IncrementQuizzesCreated(userID)
	s.log.Info().
		Str("quiz_id", quiz.ID.String()).
		Str("method", string(quiz.CreationMethod)).
		Int("questions", len(quiz.Questions)).
		Msg("Quiz created")
	return quiz, nil
}

func sampleAIQuestions(topic string, difficulty model.Difficulty) []model.Question {
	return []model.Question{
		{
			Prompt: fmt.Sprintf("Which of the following is the primary function of the heart in %s?", topic),
			Options: []string{
				"Pumping blood throughout the body",
				"Filtering toxins from blood",
				"Producing red blood cells",
				"Storing oxygen",
			},
			CorrectAnswer: 0,
			Explanation:   "The heart's primary function is to pump blood throughout the body, delivering oxygen and nutrients to tissues.",
			Difficulty:    difficulty,
		},
		{
			Prompt: fmt.Sprintf("In %s, what is the normal resting heart rate for adults?", topic),
			Options: []string{
				"40-60 bpm",
				"60-100 bpm",
				"100-120 bpm",
				"120-140 bpm",
			},
			CorrectAnswer: 1,
			Explanation:   "The normal resting heart rate for adults is 60-100 beats per minute.",
			Difficulty:    difficulty,
		},
	}
}

func samplePastedQuestions(difficulty model.Difficulty) []model.Question {
	return []model.Question{
		{
			Prompt: "Based on your study material, which of the following best describes the main concept?",
			Options: []string{
				"Option A from your text",
				"Option B from your text",
				"Option C from your text",
				"Option D from your text",
			},
			CorrectAnswer: 0,
			Explanation:   "This answer is correct based on the content you provided.",
			Difficulty:    difficulty,
		},
		{
			Prompt: "According to your study material, what is the key relationship mentioned?",
			Options: []string{
				"Relationship A",
				"Relationship B",
				"Relationship C",
				"Relationship D",
			},
			CorrectAnswer: 1,
			Explanation:   "This relationship is clearly outlined in your provided text.",
			Difficulty:    difficulty,
		},
	}
}
