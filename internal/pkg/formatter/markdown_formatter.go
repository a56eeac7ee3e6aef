package formatter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sumanth-github/form-backend/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (f *MarkdownFormatter) Format(product *entity.Product, summary string, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s\n\n", reportTitle)
	fmt.Fprintf(bw, "## Product: %s\n\n", product.Name)
	fmt.Fprintf(bw, "### Category: %s\n\n", product.Category)
	fmt.Fprintf(bw, "Description: %s\n\n", product.Description)

	fmt.Fprintf(bw, "Follow-Up Questions & Answers:\n\n")
	for i, q := range product.Questions {
		fmt.Fprintf(bw, "%s\n", q.Line(i+1))
	}

	fmt.Fprintf(bw, "\n__AI Summary:__\n\n%s\n", summary)

	return bw.Flush()
}

func (f *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (f *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
