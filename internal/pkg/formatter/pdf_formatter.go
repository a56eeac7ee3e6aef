package formatter

import (
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/sumanth-github/form-backend/internal/entity"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	// pdfFontName is the internal name used by gofpdf
	// for the UTF-8 capable font.
	pdfFontName = "DejaVuSans"

	// Relative paths where the TTF font may live.
	// In Docker runtime we copy fonts to /app/ttf,
	// so for the compiled binary the path is ./ttf/DejaVuSans.ttf.
	pdfFontRuntimePath = "ttf/DejaVuSans.ttf"

	// Source-relative path (useful when running from repo root with `go run`).
	pdfFontSourcePath = "internal/pkg/formatter/ttf/DejaVuSans.ttf"
)

type PDFFormatter struct{}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

// resolveFontPath tries to find the DejaVuSans font in
// runtime layout (next to the binary) or source layout.
func resolveFontPath() string {
	if _, err := os.Stat(pdfFontRuntimePath); err == nil {
		return pdfFontRuntimePath
	}

	if _, err := os.Stat(pdfFontSourcePath); err == nil {
		return pdfFontSourcePath
	}

	return ""
}

func (f *PDFFormatter) Format(product *entity.Product, summary string, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Use the UTF-8 capable DejaVuSans font when bundled, core Arial
	// otherwise.
	fontName := "Arial"
	if fontPath := resolveFontPath(); fontPath != "" {
		pdf.AddUTF8Font(pdfFontName, "", fontPath)
		pdf.AddUTF8Font(pdfFontName, "B", fontPath)
		fontName = pdfFontName
	}

	pdf.SetFont(fontName, "B", 20)
	pdf.CellFormat(0, 10, reportTitle, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(fontName, "", 16)
	pdf.CellFormat(0, 8, "Product: "+product.Name, "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 14)
	pdf.CellFormat(0, 8, "Category: "+product.Category, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontName, "", 12)
	pdf.MultiCell(0, 6, "Description: "+product.Description, "", "L", false)
	pdf.Ln(4)

	pdf.MultiCell(0, 6, "Follow-Up Questions & Answers:", "", "L", false)
	for i, q := range product.Questions {
		pdf.MultiCell(0, 6, q.Line(i+1), "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont(fontName, "U", 12)
	pdf.CellFormat(0, 6, "AI Summary:", "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont(fontName, "", 12)
	pdf.MultiCell(0, 6, summary, "", "L", false)

	// Output writes the document trailer and finalizes the sink.
	return pdf.Output(w)
}

func (f *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (f *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
