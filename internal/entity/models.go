package entity

import (
	"fmt"
	"time"
)

// NotAnswered is rendered in place of an empty answer in summaries and reports.
const NotAnswered = "Not answered"

// Product is the persisted unit: the registered product plus its
// follow-up question transcript.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Questions   []*Question `json:"questions"`
	Submitted   bool        `json:"submitted"`
	ReportURL   *string     `json:"reportUrl,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Question is one entry of a product's transcript. Position carries the
// conversation order; entries are append-only and never reordered.
type Question struct {
	ID        string    `json:"id"`
	ProductID string    `json:"-"`
	Position  int       `json:"-"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}

// Line renders the question as "N. question: answer" with the NotAnswered
// placeholder for empty answers. The summary fallback, the generation
// directive, and every report format use this one shape so the report layout
// does not depend on which path produced the text.
func (q *Question) Line(number int) string {
	answer := q.Answer
	if answer == "" {
		answer = NotAnswered
	}
	return fmt.Sprintf("%d. %s: %s", number, q.Question, answer)
}

// TranscriptLines renders the full ordered Q&A transcript, one line per entry.
func (p *Product) TranscriptLines() []string {
	lines := make([]string, 0, len(p.Questions))
	for i, q := range p.Questions {
		lines = append(lines, q.Line(i+1))
	}
	return lines
}
