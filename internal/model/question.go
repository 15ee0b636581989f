package model

import "github.com/google/uuid"

// OptionsPerQuestion is the fixed number of answer options every question carries.
const OptionsPerQuestion = 4

// Question represents a single multiple-choice question.
// CorrectAnswer is a zero-based index into Options.
type Question struct {
	ID            uuid.UUID  `json:"id"`
	Prompt        string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correct_answer"`
	Explanation   string     `json:"explanation"`
	Difficulty    Difficulty `json:"difficulty"`
}

// QuestionInput is the payload shape for a question inside a create request.
type QuestionInput struct {
	Prompt        string   `json:"question" binding:"required,min=1,max=2000"`
	Options       []string `json:"options" binding:"required,len=4,dive,required"`
	CorrectAnswer int      `json:"correct_answer" binding:"gte=0,lte=3"`
	Explanation   string   `json:"explanation" binding:"omitempty,max=2000"`
	Difficulty    string   `json:"difficulty" binding:"omitempty,oneof=basic intermediate advanced"`
}
