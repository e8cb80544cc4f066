// File path: internal/render/render.go
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nicodishanthj/mopgen/internal/common"
	"github.com/nicodishanthj/mopgen/internal/model"
)

// Format identifies a supported export encoding.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
	FormatText Format = "txt"
)

// ParseFormat validates a requested format, matching case-insensitively.
// Unsupported values are rejected before any rendering work begins.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatText:
		return FormatText, nil
	default:
		return "", common.InvalidInputf("unsupported export format %q", raw)
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatHTML:
		return "text/html"
	default:
		return "text/plain"
	}
}

// Extension returns the file suffix for the format, without the dot.
func (f Format) Extension() string { return string(f) }

// Document bundles everything a renderer needs: the MOP record, its derived
// steps, and the review history.
type Document struct {
	MOP     model.MOP
	Steps   []model.ProcedureStep
	Reviews []model.Review
}

// Render encodes the document into the requested format and writes the result
// to w. Rendering is pure with respect to its inputs; every section (title,
// description, metadata, each step, each review) appears in order in every
// format, with nothing dropped or truncated.
func Render(w io.Writer, doc Document, format Format) error {
	var err error
	switch format {
	case FormatPDF:
		err = renderPDF(w, doc)
	case FormatDOCX:
		err = renderDOCX(w, doc)
	case FormatHTML:
		err = renderHTML(w, doc)
	case FormatText:
		err = renderText(w, doc)
	default:
		return common.InvalidInputf("unsupported export format %q", format)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrRender, format, err)
	}
	return nil
}

// formatTimestamp renders creation times the same way in every encoding.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("1/2/2006, 3:04:05 PM")
}
