package model

// SelectModeRequest is the payload for choosing a session mode.
type SelectModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=practice exam"`
}

// SelectAnswerRequest is the payload for recording an answer.
// Index bounds beyond the binding range are enforced by the session engine.
type SelectAnswerRequest struct {
	QuestionIndex int `json:"question_index" binding:"gte=0"`
	OptionIndex   int `json:"option_index" binding:"gte=0,lte=3"`
}

// NavigateRequest moves the current question either by direction or by jump.
// Exactly one of Direction or Index must be provided.
type NavigateRequest struct {
	Direction string `json:"direction" binding:"omitempty,oneof=next previous"`
	Index     *int   `json:"index" binding:"omitempty,gte=0"`
}

// ToggleFlagRequest is the payload for flagging a question for review.
type ToggleFlagRequest struct {
	QuestionIndex int `json:"question_index" binding:"gte=0"`
}
