package entity

// ReportFormat selects the rendered report representation.
type ReportFormat string

const (
	FormatPDF      ReportFormat = "pdf"
	FormatMarkdown ReportFormat = "md"
	FormatDOCX     ReportFormat = "docx"
)

func (f ReportFormat) Validate() error {
	switch f {
	case FormatPDF, FormatMarkdown, FormatDOCX:
		return nil
	default:
		return ErrInvalidParameter
	}
}
