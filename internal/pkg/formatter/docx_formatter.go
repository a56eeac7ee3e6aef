package formatter

import (
	"io"

	"github.com/sumanth-github/form-backend/internal/entity"
	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (f *DOCXFormatter) Format(product *entity.Product, summary string, w io.Writer) error {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Title")
	titlePar.AddRun().AddText(reportTitle)

	namePar := doc.AddParagraph()
	namePar.SetStyle("Heading1")
	namePar.AddRun().AddText("Product: " + product.Name)

	categoryPar := doc.AddParagraph()
	categoryPar.SetStyle("Heading2")
	categoryPar.AddRun().AddText("Category: " + product.Category)

	doc.AddParagraph().AddRun().AddText("Description: " + product.Description)
	doc.AddParagraph()

	doc.AddParagraph().AddRun().AddText("Follow-Up Questions & Answers:")
	for i, q := range product.Questions {
		doc.AddParagraph().AddRun().AddText(q.Line(i + 1))
	}
	doc.AddParagraph()

	labelPar := doc.AddParagraph()
	labelRun := labelPar.AddRun()
	labelRun.Properties().SetBold(true)
	labelRun.AddText("AI Summary:")

	doc.AddParagraph().AddRun().AddText(summary)

	return doc.Save(w)
}

func (f *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (f *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
