// File path: internal/render/text.go
package render

import (
	"fmt"
	"io"
	"strings"
)

// renderText writes the plain-text encoding. Section order matches the other
// formats; headings are set off with underline rules instead of styling.
func renderText(w io.Writer, doc Document) error {
	var b strings.Builder

	b.WriteString(doc.MOP.Title + "\n")
	b.WriteString(strings.Repeat("=", len(doc.MOP.Title)) + "\n\n")
	b.WriteString(doc.MOP.Description + "\n\n")
	fmt.Fprintf(&b, "Status: %s\n", doc.MOP.Status)
	fmt.Fprintf(&b, "Created: %s\n", formatTimestamp(doc.MOP.CreatedAt))
	fmt.Fprintf(&b, "Document ID: %s\n\n", doc.MOP.DocumentID)

	b.WriteString("PROCEDURE STEPS\n")
	b.WriteString(strings.Repeat("-", len("PROCEDURE STEPS")) + "\n\n")
	for _, step := range doc.Steps {
		header := fmt.Sprintf("Step %d: %s", step.StepNumber, step.Description)
		b.WriteString(header + "\n")
		b.WriteString(strings.Repeat("-", len(header)) + "\n")
		b.WriteString("Command:\n")
		b.WriteString(step.Command + "\n\n")
		fmt.Fprintf(&b, "Verification: %s\n", step.Verification)
		fmt.Fprintf(&b, "Rollback: %s\n\n", step.Rollback)
	}

	if len(doc.Reviews) > 0 {
		b.WriteString("REVIEWS\n")
		b.WriteString(strings.Repeat("-", len("REVIEWS")) + "\n\n")
		for i, review := range doc.Reviews {
			fmt.Fprintf(&b, "Review %d:\n", i+1)
			fmt.Fprintf(&b, "Status: %s\n", review.Status)
			fmt.Fprintf(&b, "Reviewer: %s\n", review.ReviewerID)
			fmt.Fprintf(&b, "Date: %s\n", formatTimestamp(review.CreatedAt))
			fmt.Fprintf(&b, "Comments: %s\n\n", review.Comments)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
