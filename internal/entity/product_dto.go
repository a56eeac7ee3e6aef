package entity

// CreateProductRequest is the POST /api/products payload.
type CreateProductRequest struct {
	Name        string               `json:"name"`
	Category    string               `json:"category"`
	Description string               `json:"description"`
	Questions   []QuestionWithAnswer `json:"questions,omitempty"`
	Submitted   bool                 `json:"submitted,omitempty"`
}

// QuestionWithAnswer is one question/answer pair as supplied by the client.
type QuestionWithAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AppendQuestionRequest appends one transcript entry to a stored product.
type AppendQuestionRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
