package document

import (
	"io"
	"time"
)

// Category is the logical slot a document fills on an application.
type Category string

const (
	CategoryGovernmentID       Category = "governmentId"
	CategoryStudentID          Category = "studentId"
	CategoryIncomeVerification Category = "incomeVerification"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryGovernmentID, CategoryStudentID, CategoryIncomeVerification}

func (c Category) Valid() bool {
	switch c {
	case CategoryGovernmentID, CategoryStudentID, CategoryIncomeVerification:
		return true
	}

	return false
}

// Handle references a file held by the upload provider. The bytes never live here.
type Handle struct {
	UserID     string    `json:"-"`
	Category   Category  `json:"category"`
	ProviderID string    `json:"handle"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mimetype"`
	UploadedAt time.Time `json:"uploadedAt"`
	Scanned    bool      `json:"scanned"`
}

// Finalized reports whether the provider confirmed and scanned the upload.
// Only finalized handles count as present.
func (h Handle) Finalized() bool {
	return h.Scanned && h.ProviderID != ""
}

// Handles is the set of current documents for one applicant.
type Handles map[Category]Handle

// Finalized returns the subset of handles the provider has confirmed.
func (hs Handles) Finalized() Handles {
	out := make(Handles, len(hs))
	for c, h := range hs {
		if h.Finalized() {
			out[c] = h
		}
	}

	return out
}

func (hs Handles) Has(c Category) bool {
	h, ok := hs[c]
	return ok && h.Finalized()
}

// File is an upload in flight from the applicant to the provider.
type File struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// Receipt is what the provider returns for an accepted upload.
type Receipt struct {
	Handle   string `json:"handle"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimetype"`
}
