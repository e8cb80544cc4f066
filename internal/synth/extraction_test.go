// File path: internal/synth/extraction_test.go
package synth

import "testing"

func TestParseExtractionEnvelope(t *testing.T) {
	raw := `{"extracted_data":{"device_type":"router","vendor":"cisco","interfaces":[{"name":"Gi0/0","ip":"10.0.0.1","subnet":"255.255.255.0"}]}}`
	data := ParseExtraction(raw)
	if data.Vendor != "cisco" || data.DeviceType != "router" {
		t.Fatalf("data = %+v", data)
	}
	if len(data.Interfaces) != 1 || data.Interfaces[0].Name != "Gi0/0" {
		t.Fatalf("interfaces = %+v", data.Interfaces)
	}
}

func TestParseExtractionBareObject(t *testing.T) {
	data := ParseExtraction(`{"device_type":"switch","vendor":"juniper"}`)
	if data.Vendor != "juniper" || data.DeviceType != "switch" {
		t.Fatalf("data = %+v", data)
	}
}

func TestParseExtractionTolerant(t *testing.T) {
	for _, raw := range []string{"", "   ", "not json", "[]", `{"extracted_data":null}`} {
		data := ParseExtraction(raw)
		if data.Vendor != "" || len(data.Interfaces) != 0 {
			t.Fatalf("ParseExtraction(%q) = %+v, want zero value", raw, data)
		}
	}
}
