package domain

import (
	"fmt"

	"github.com/oryxgate/realty_cms/internal/apperrors"
)

// Status is the publication state of a content entity.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// ParseStatus validates a raw status value. Anything outside the closed
// draft/published set is rejected with ErrValidation.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusDraft, StatusPublished:
		return Status(raw), nil
	default:
		return "", fmt.Errorf("%w: invalid status %q, must be %q or %q", apperrors.ErrValidation, raw, StatusDraft, StatusPublished)
	}
}

func (s Status) String() string {
	return string(s)
}
