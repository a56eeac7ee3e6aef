package entity

import (
	"reflect"
	"testing"
)

func TestQuestionLine(t *testing.T) {
	cases := []struct {
		question Question
		number   int
		want     string
	}{
		{Question{Question: "Where is it made?", Answer: "Sweden"}, 1, "1. Where is it made?: Sweden"},
		{Question{Question: "Any certifications?", Answer: ""}, 2, "2. Any certifications?: Not answered"},
		{Question{Question: "Shelf life?", Answer: "   "}, 3, "3. Shelf life?:    "},
	}

	for _, tc := range cases {
		if got := tc.question.Line(tc.number); got != tc.want {
			t.Errorf("Line(%d) = %q, want %q", tc.number, got, tc.want)
		}
	}
}

func TestTranscriptLines(t *testing.T) {
	product := &Product{
		Questions: []*Question{
			{Question: "Where is it made?", Answer: "Sweden"},
			{Question: "Any certifications?"},
		},
	}

	want := []string{
		"1. Where is it made?: Sweden",
		"2. Any certifications?: Not answered",
	}
	if got := product.TranscriptLines(); !reflect.DeepEqual(got, want) {
		t.Errorf("TranscriptLines() = %v, want %v", got, want)
	}

	if got := (&Product{}).TranscriptLines(); len(got) != 0 {
		t.Errorf("empty transcript should render no lines, got %v", got)
	}
}

func TestReportFormatValidate(t *testing.T) {
	for _, format := range []ReportFormat{FormatPDF, FormatMarkdown, FormatDOCX} {
		if err := format.Validate(); err != nil {
			t.Errorf("Validate(%s): %v", format, err)
		}
	}

	if err := ReportFormat("xlsx").Validate(); err == nil {
		t.Error("expected error for unknown format")
	}
}
