// File path: internal/synth/extraction.go
package synth

import (
	"encoding/json"
	"strings"

	"github.com/nicodishanthj/mopgen/internal/model"
)

// ParseExtraction decodes a stored extraction payload. Empty or malformed
// input yields a zero value, which synthesizes the base procedure skeleton
// rather than failing. Both the enveloped form ({"extracted_data": {...}})
// and a bare data object are accepted.
func ParseExtraction(raw string) model.ExtractedData {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.ExtractedData{}
	}
	var envelope model.ExtractionEnvelope
	if err := json.Unmarshal([]byte(trimmed), &envelope); err == nil && envelope.ExtractedData != nil {
		return *envelope.ExtractedData
	}
	var data model.ExtractedData
	if err := json.Unmarshal([]byte(trimmed), &data); err != nil {
		return model.ExtractedData{}
	}
	return data
}
