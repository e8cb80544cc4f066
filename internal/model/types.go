// File path: internal/model/types.go
package model

import "time"

// Document statuses assigned by the upload and extraction flow.
const (
	DocumentUploaded   = "uploaded"
	DocumentProcessing = "processing"
	DocumentCompleted  = "completed"
	DocumentFailed     = "failed"
)

// MOP lifecycle statuses. Approved and rejected are terminal in the review
// workflow's model, though nothing forbids a later review from
// re-transitioning a MOP.
const (
	MOPDraft    = "draft"
	MOPPending  = "pending"
	MOPApproved = "approved"
	MOPRejected = "rejected"
)

// Review statuses. A review's own status never changes the meaning of the
// reviews recorded before it.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// Document is an uploaded specification document and the extraction state
// attached to it.
type Document struct {
	ID            string    `db:"id" json:"id"`
	UploadedBy    string    `db:"uploaded_by" json:"uploadedBy"`
	Filename      string    `db:"filename" json:"filename"`
	ObjectKey     string    `db:"object_key" json:"filePath"`
	Status        string    `db:"status" json:"status"`
	MetadataJSON  string    `db:"metadata_json" json:"-"`
	ExtractedJSON string    `db:"extracted_json" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// MOP is a Method of Procedure generated from a document's extracted data.
// Steps are a derived view recomputed from the extraction snapshot on every
// read; they are never persisted.
type MOP struct {
	ID          string    `db:"id" json:"id"`
	DocumentID  string    `db:"document_id" json:"documentId"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Status      string    `db:"status" json:"status"`
	CreatedBy   string    `db:"created_by" json:"createdBy"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Review records one reviewer's verdict on a MOP. Reviews reference a MOP;
// they never own it.
type Review struct {
	ID         string    `db:"id" json:"id"`
	MOPID      string    `db:"mop_id" json:"mopId"`
	ReviewerID string    `db:"reviewer_id" json:"reviewerId"`
	Status     string    `db:"status" json:"status"`
	Comments   string    `db:"comments" json:"comments"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// User is a seeded operator account used for login.
type User struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Email        string    `db:"email" json:"email"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// Interface is one configured network interface from the extraction payload.
type Interface struct {
	Name   string `json:"name"`
	IP     string `json:"ip"`
	Subnet string `json:"subnet"`
}

// VLAN is one VLAN definition from the extraction payload.
type VLAN struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ExtractedData is the normalized read-only device view produced by the
// external extraction service. Any field may be absent; consumers must fall
// back to documented defaults rather than fail.
type ExtractedData struct {
	DeviceType       string      `json:"device_type"`
	Vendor           string      `json:"vendor"`
	Model            string      `json:"model"`
	Interfaces       []Interface `json:"interfaces"`
	RoutingProtocols []string    `json:"routing_protocols"`
	VLANs            []VLAN      `json:"vlans"`
}

// ExtractionEnvelope is the payload shape returned by the extraction service
// and stored verbatim on the document row.
type ExtractionEnvelope struct {
	ExtractedData *ExtractedData `json:"extracted_data"`
}

// ProcedureStep is one ordered operation in a synthesized MOP. StepNumber is
// 1-based and contiguous over whichever steps were actually included.
type ProcedureStep struct {
	ID           string `json:"id"`
	StepNumber   int    `json:"stepNumber"`
	Description  string `json:"description"`
	Command      string `json:"command"`
	Verification string `json:"verification"`
	Rollback     string `json:"rollback"`
}
