// File path: internal/render/render_test.go
package render

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nicodishanthj/mopgen/internal/common"
	"github.com/nicodishanthj/mopgen/internal/model"
)

func sampleDocument() Document {
	created := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	return Document{
		MOP: model.MOP{
			ID:          "mop-1",
			DocumentID:  "doc-1",
			Title:       "Core Router Upgrade",
			Description: "Configuration procedure for the core router.",
			Status:      model.MOPApproved,
			CreatedAt:   created,
		},
		Steps: []model.ProcedureStep{
			{
				ID:           "step1",
				StepNumber:   1,
				Description:  "Connect to device",
				Command:      "ssh admin@10.0.0.1\nPassword: ******",
				Verification: "Verify successful login prompt",
				Rollback:     "exit",
			},
			{
				ID:           "step2",
				StepNumber:   2,
				Description:  "Save configuration",
				Command:      "write memory",
				Verification: "Verify configuration saved",
				Rollback:     "N/A",
			},
		},
		Reviews: []model.Review{
			{
				ID:         "rev-1",
				MOPID:      "mop-1",
				ReviewerID: "admin",
				Status:     model.ReviewApproved,
				Comments:   "Looks good",
				CreatedAt:  created.Add(time.Hour),
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		raw  string
		want Format
	}{
		{"pdf", FormatPDF},
		{"PDF", FormatPDF},
		{" docx ", FormatDOCX},
		{"html", FormatHTML},
		{"txt", FormatText},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.raw)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseFormatRejectsUnsupported(t *testing.T) {
	for _, raw := range []string{"xml", "md", "", "pdf2"} {
		if _, err := ParseFormat(raw); !errors.Is(err, common.ErrInvalidInput) {
			t.Fatalf("ParseFormat(%q) err = %v, want ErrInvalidInput", raw, err)
		}
	}
}

func TestFormatContentTypes(t *testing.T) {
	if got := FormatPDF.ContentType(); got != "application/pdf" {
		t.Fatalf("pdf content type %q", got)
	}
	if got := FormatDOCX.ContentType(); !strings.Contains(got, "wordprocessingml") {
		t.Fatalf("docx content type %q", got)
	}
	if got := FormatText.Extension(); got != "txt" {
		t.Fatalf("txt extension %q", got)
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleDocument(), FormatText); err != nil {
		t.Fatalf("render text: %v", err)
	}
	out := buf.String()

	title := "Core Router Upgrade"
	if !strings.Contains(out, title+"\n"+strings.Repeat("=", len(title))) {
		t.Fatalf("missing underlined title in:\n%s", out)
	}
	for _, want := range []string{
		"PROCEDURE STEPS",
		"Step 1: Connect to device",
		"ssh admin@10.0.0.1",
		"Verification: Verify successful login prompt",
		"REVIEWS",
		"Reviewer: admin",
		"Comments: Looks good",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("text output missing %q", want)
		}
	}
	if idx := strings.Index(out, "PROCEDURE STEPS"); idx > strings.Index(out, "REVIEWS") {
		t.Fatal("steps section should precede reviews")
	}
}

func TestRenderTextOmitsEmptyReviews(t *testing.T) {
	doc := sampleDocument()
	doc.Reviews = nil
	var buf bytes.Buffer
	if err := Render(&buf, doc, FormatText); err != nil {
		t.Fatalf("render text: %v", err)
	}
	if strings.Contains(buf.String(), "REVIEWS") {
		t.Fatal("reviews section rendered for a document with no reviews")
	}
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleDocument(), FormatHTML); err != nil {
		t.Fatalf("render html: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>Core Router Upgrade</title>",
		"<h1>Core Router Upgrade</h1>",
		"<h2>Procedure Steps</h2>",
		"Step 1: Connect to device",
		`<div class="review approved">`,
		"<h2>Reviews</h2>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("html output missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	doc := sampleDocument()
	doc.MOP.Title = `Router <"upgrade"> & more`
	var buf bytes.Buffer
	if err := Render(&buf, doc, FormatHTML); err != nil {
		t.Fatalf("render html: %v", err)
	}
	if strings.Contains(buf.String(), `<"upgrade">`) {
		t.Fatal("html output contains unescaped markup from the title")
	}
}

func TestRenderDOCX(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleDocument(), FormatDOCX); err != nil {
		t.Fatalf("render docx: %v", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("docx output is not a valid zip: %v", err)
	}

	parts := make(map[string]string, len(reader.File))
	for _, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		var part bytes.Buffer
		if _, err := part.ReadFrom(rc); err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		rc.Close()
		parts[f.Name] = part.String()
	}

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/document.xml",
	} {
		if _, ok := parts[name]; !ok {
			t.Fatalf("docx missing part %s", name)
		}
	}

	body := parts["word/document.xml"]
	for _, want := range []string{
		`<w:pStyle w:val="Heading1"/>`,
		`<w:pStyle w:val="StepTitle"/>`,
		`<w:pStyle w:val="CodeBlock"/>`,
		"Core Router Upgrade",
		"Step 1: Connect to device",
		`<w:br w:type="page"/>`,
		"Reviewer: admin",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("document.xml missing %q", want)
		}
	}
	// Multi-line commands become run breaks, never raw newlines in a text node.
	if !strings.Contains(body, "<w:br/>") {
		t.Fatal("document.xml missing run break for multi-line command")
	}
	if !strings.Contains(parts["word/styles.xml"], `w:styleId="CodeBlock"`) {
		t.Fatal("styles.xml missing CodeBlock style")
	}
}

func TestRenderDOCXEscapesXML(t *testing.T) {
	doc := sampleDocument()
	doc.Steps[0].Command = `show config | match "<vlan> & <trunk>"`
	var buf bytes.Buffer
	if err := Render(&buf, doc, FormatDOCX); err != nil {
		t.Fatalf("render docx: %v", err)
	}
	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reopen docx: %v", err)
	}
	for _, f := range reader.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, _ := f.Open()
		var body bytes.Buffer
		body.ReadFrom(rc)
		rc.Close()
		if strings.Contains(body.String(), "<vlan>") {
			t.Fatal("document.xml contains unescaped command markup")
		}
		if !strings.Contains(body.String(), "&lt;vlan&gt; &amp; &lt;trunk&gt;") {
			t.Fatal("document.xml missing escaped command text")
		}
	}
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleDocument(), FormatPDF); err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("pdf output missing %PDF header")
	}
	if buf.Len() < 500 {
		t.Fatalf("pdf output suspiciously small: %d bytes", buf.Len())
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleDocument(), Format("xml"))
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if buf.Len() != 0 {
		t.Fatal("unsupported format wrote output")
	}
}
