// File path: internal/render/html.go
package render

import (
	"html/template"
	"io"
)

// renderHTML emits a standalone page with inline styling so the export is
// readable without any external assets.
func renderHTML(w io.Writer, doc Document) error {
	data := struct {
		Document
		Created string
		Reviews []htmlReview
	}{Document: doc, Created: formatTimestamp(doc.MOP.CreatedAt)}
	for _, review := range doc.Reviews {
		data.Reviews = append(data.Reviews, htmlReview{
			Status:   review.Status,
			Reviewer: review.ReviewerID,
			Date:     formatTimestamp(review.CreatedAt),
			Comments: review.Comments,
		})
	}
	return htmlTemplate.Execute(w, data)
}

type htmlReview struct {
	Status   string
	Reviewer string
	Date     string
	Comments string
}

var htmlTemplate = template.Must(template.New("mop").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.MOP.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; color: #333; }
h1 { text-align: center; color: #2c3e50; }
h2 { color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 5px; }
.metadata { background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0; }
.step { margin: 20px 0; padding: 15px; border: 1px solid #ddd; border-radius: 5px; }
.step h3 { margin-top: 0; color: #2c3e50; }
pre { background: #2c3e50; color: #ecf0f1; padding: 10px; border-radius: 5px; overflow-x: auto; }
.review { margin: 15px 0; padding: 10px; border-left: 4px solid #95a5a6; background: #f8f9fa; }
.review.approved { border-left-color: #27ae60; }
.review.rejected { border-left-color: #e74c3c; }
</style>
</head>
<body>
<h1>{{.MOP.Title}}</h1>
<p>{{.MOP.Description}}</p>
<div class="metadata">
<p><strong>Status:</strong> {{.MOP.Status}}</p>
<p><strong>Created:</strong> {{.Created}}</p>
<p><strong>Document ID:</strong> {{.MOP.DocumentID}}</p>
</div>
<h2>Procedure Steps</h2>
{{range .Steps}}<div class="step">
<h3>Step {{.StepNumber}}: {{.Description}}</h3>
<p><strong>Command:</strong></p>
<pre>{{.Command}}</pre>
<p><strong>Verification:</strong> {{.Verification}}</p>
<p><strong>Rollback:</strong> {{.Rollback}}</p>
</div>
{{end}}{{if .Reviews}}<h2>Reviews</h2>
{{range .Reviews}}<div class="review {{.Status}}">
<p><strong>Status:</strong> {{.Status}}</p>
<p><strong>Reviewer:</strong> {{.Reviewer}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Comments:</strong> {{.Comments}}</p>
</div>
{{end}}{{end}}</body>
</html>
`))
