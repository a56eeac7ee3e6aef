package entity

// NextQuestionRequest is the POST /api/ai/generate-next-question payload.
// AskedCount is tracked by the client: the engine is stateless across calls.
type NextQuestionRequest struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	PreviousAnswer *string `json:"previousAnswer,omitempty"`
	AskedCount     int     `json:"askedCount,omitempty"`
}

// NextQuestionOutcome is the single result shape of the session engine.
// Done collapses every stop cause (cap reached, sentinel response, empty
// response) into one explicit value; Question is meaningful only when Done
// is false.
type NextQuestionOutcome struct {
	Question string
	Done     bool
}

// NextQuestionResponse carries a null question when the session is done.
type NextQuestionResponse struct {
	Question *string `json:"question"`
}

// SummaryResponse is the report preview payload.
type SummaryResponse struct {
	Summary string `json:"summary"`
}
