package formatter

import (
	"fmt"
	"io"

	"github.com/sumanth-github/form-backend/internal/entity"
)

const reportTitle = "Product Summary Report"

// Formatter renders a product report to a caller-supplied sink. Format
// writes every section in order and finalizes the document before
// returning; the caller never closes the document itself.
type Formatter interface {
	Format(product *entity.Product, summary string, w io.Writer) error
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ReportFormat) (Formatter, error) {
	switch format {
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", entity.ErrInvalidParameter, format)
	}
}
