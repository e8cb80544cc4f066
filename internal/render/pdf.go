// File path: internal/render/pdf.go
package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// renderPDF produces a paginated PDF. Command text is set in a monospaced
// font; the reviews section, when present, starts on a fresh page.
func renderPDF(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, doc.MOP.Title, "", "C", false)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, doc.MOP.Description, "", "L", false)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, fmt.Sprintf("Status: %s", doc.MOP.Status), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Created: %s", formatTimestamp(doc.MOP.CreatedAt)), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Document ID: %s", doc.MOP.DocumentID), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "BU", 14)
	pdf.MultiCell(0, 8, "Procedure Steps", "", "L", false)
	pdf.Ln(2)

	for _, step := range doc.Steps {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, fmt.Sprintf("Step %d: %s", step.StepNumber, step.Description), "", "L", false)

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, "Command:", "", "L", false)
		pdf.SetFont("Courier", "", 9)
		pdf.MultiCell(0, 4.5, step.Command, "", "L", false)

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, "Verification:", "", "L", false)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 4.5, step.Verification, "", "L", false)

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, "Rollback:", "", "L", false)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 4.5, step.Rollback, "", "L", false)
		pdf.Ln(3)
	}

	if len(doc.Reviews) > 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "BU", 14)
		pdf.MultiCell(0, 8, "Reviews", "", "L", false)
		pdf.Ln(2)

		for i, review := range doc.Reviews {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, fmt.Sprintf("Review %d:", i+1), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, fmt.Sprintf("Status: %s", review.Status), "", "L", false)
			pdf.MultiCell(0, 5, fmt.Sprintf("Reviewer: %s", review.ReviewerID), "", "L", false)
			pdf.MultiCell(0, 5, fmt.Sprintf("Date: %s", formatTimestamp(review.CreatedAt)), "", "L", false)
			pdf.MultiCell(0, 5, fmt.Sprintf("Comments: %s", review.Comments), "", "L", false)
			pdf.Ln(3)
		}
	}

	return pdf.Output(w)
}
