package validator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sumanth-github/form-backend/internal/entity"
)

// Validator checks request payloads before they reach a use case.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateProduct(req *entity.CreateProductRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name", entity.ErrMissingField)
	}
	if req.Category == "" {
		return fmt.Errorf("%w: category", entity.ErrMissingField)
	}
	if req.Description == "" {
		return fmt.Errorf("%w: description", entity.ErrMissingField)
	}

	for i, q := range req.Questions {
		if q.Question == "" {
			return fmt.Errorf("%w: questions[%d].question", entity.ErrMissingField, i)
		}
	}

	return nil
}

func (v *Validator) ValidateNextQuestion(req *entity.NextQuestionRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name", entity.ErrMissingField)
	}
	if req.Category == "" {
		return fmt.Errorf("%w: category", entity.ErrMissingField)
	}
	if req.Description == "" {
		return fmt.Errorf("%w: description", entity.ErrMissingField)
	}
	if req.AskedCount < 0 {
		return fmt.Errorf("%w: askedCount must not be negative", entity.ErrInvalidParameter)
	}

	return nil
}

func (v *Validator) ValidateAppendQuestion(req *entity.AppendQuestionRequest) error {
	if req.Question == "" {
		return fmt.Errorf("%w: question", entity.ErrMissingField)
	}

	return nil
}

// SanitizeFilename sanitizes a product name for use in a download filename
func SanitizeFilename(filename string) string {
	filename = filepath.Base(filename)
	replacer := strings.NewReplacer(
		" ", "_",
		"(", "",
		")", "",
		"[", "",
		"]", "",
		"{", "",
		"}", "",
		"/", "",
		"\\", "",
		"\"", "",
		";", "",
	)
	return replacer.Replace(filename)
}
