package document

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("document not found")
	ErrUnknownCategory = errors.New("unknown document category")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds size limit")
	ErrEmptyFile       = errors.New("file is empty")
)

// ProviderErrorType is the typed failure reported by the upload provider.
type ProviderErrorType string

const (
	ProviderSecurityThreat  ProviderErrorType = "security-threat"
	ProviderContentRejected ProviderErrorType = "content-rejected"
	ProviderGenericFailure  ProviderErrorType = "generic-failure"
)

type ProviderError struct {
	Type       ProviderErrorType
	Message    string
	StatusCode int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("upload provider %s (status %d): %s", e.Type, e.StatusCode, e.Message)
}

type RejectionKind string

const (
	RejectionThreat  RejectionKind = "security_threat"
	RejectionContent RejectionKind = "content_rejected"
)

// SecurityRejection means the provider refused the file after scanning it.
// It is never retried and never produces a Handle.
type SecurityRejection struct {
	Kind     RejectionKind
	Category Category
	Reason   string
}

func (e *SecurityRejection) Error() string {
	return fmt.Sprintf("%s upload rejected (%s): %s", e.Category, e.Kind, e.Reason)
}

// UserMessage is the wording shown to the applicant.
func (e *SecurityRejection) UserMessage() string {
	if e.Kind == RejectionThreat {
		return "Our security scan flagged this file as potentially harmful, so it was not saved. " +
			"Please upload a clean copy of the document."
	}

	return "This file was rejected because its content is not allowed. " +
		"Please upload a clear scan or photo of the requested document."
}
