// File path: internal/render/docx.go
package render

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// renderDOCX produces a minimal WordprocessingML package: a zip holding the
// content-type map, the package relationships, a style sheet defining the
// Heading1/Heading2/StepTitle/CodeBlock styles, and the document body. No
// pack library covers DOCX authoring, and the format is plain zipped XML, so
// the parts are assembled directly.
func renderDOCX(w io.Writer, doc Document) error {
	archive := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxPackageRels},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/styles.xml", docxStyles},
		{"word/document.xml", buildDocumentXML(doc)},
	}
	for _, part := range parts {
		f, err := archive.Create(part.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := io.WriteString(f, part.content); err != nil {
			return fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	return archive.Close()
}

func buildDocumentXML(doc Document) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	writeStyledParagraph(&b, "Heading1", doc.MOP.Title)
	writeParagraph(&b, doc.MOP.Description)
	writeParagraph(&b, "Status: "+doc.MOP.Status)
	writeParagraph(&b, "Created: "+formatTimestamp(doc.MOP.CreatedAt))
	writeParagraph(&b, "Document ID: "+doc.MOP.DocumentID)

	writeStyledParagraph(&b, "Heading2", "Procedure Steps")
	for _, step := range doc.Steps {
		writeStyledParagraph(&b, "StepTitle", fmt.Sprintf("Step %d: %s", step.StepNumber, step.Description))
		writeParagraph(&b, "Command:")
		writeStyledParagraph(&b, "CodeBlock", step.Command)
		writeParagraph(&b, "Verification:")
		writeParagraph(&b, step.Verification)
		writeParagraph(&b, "Rollback:")
		writeParagraph(&b, step.Rollback)
	}

	if len(doc.Reviews) > 0 {
		// The reviews section always begins on a fresh page.
		b.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
		writeStyledParagraph(&b, "Heading2", "Reviews")
		for i, review := range doc.Reviews {
			writeParagraph(&b, fmt.Sprintf("Review %d:", i+1))
			writeParagraph(&b, "Status: "+review.Status)
			writeParagraph(&b, "Reviewer: "+review.ReviewerID)
			writeParagraph(&b, "Date: "+formatTimestamp(review.CreatedAt))
			writeParagraph(&b, "Comments: "+review.Comments)
		}
	}

	b.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr>`)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeParagraph(b *strings.Builder, text string) {
	writeStyledParagraph(b, "", text)
}

// writeStyledParagraph emits one paragraph, converting embedded newlines into
// run-level breaks so multi-line command text stays inside a single styled
// block.
func writeStyledParagraph(b *strings.Builder, style, text string) {
	b.WriteString("<w:p>")
	if style != "" {
		fmt.Fprintf(b, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, style)
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	b.WriteString("<w:r>")
	for i, line := range lines {
		if i > 0 {
			b.WriteString("<w:br/>")
		}
		fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(line))
	}
	b.WriteString("</w:r>")
	b.WriteString("</w:p>")
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string { return xmlReplacer.Replace(s) }

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const docxPackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const docxStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:style w:type="paragraph" w:styleId="Heading1">
<w:name w:val="Heading 1"/>
<w:pPr><w:spacing w:after="120"/><w:jc w:val="center"/></w:pPr>
<w:rPr><w:b/><w:sz w:val="28"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading2">
<w:name w:val="Heading 2"/>
<w:pPr><w:spacing w:before="240" w:after="120"/></w:pPr>
<w:rPr><w:b/><w:sz w:val="24"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="StepTitle">
<w:name w:val="Step Title"/>
<w:pPr><w:spacing w:before="240" w:after="120"/></w:pPr>
<w:rPr><w:b/><w:sz w:val="20"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="CodeBlock">
<w:name w:val="Code Block"/>
<w:pPr><w:spacing w:before="100" w:after="100"/><w:ind w:left="720"/></w:pPr>
<w:rPr><w:rFonts w:ascii="Courier New" w:hAnsi="Courier New"/><w:sz w:val="18"/></w:rPr>
</w:style>
</w:styles>`
