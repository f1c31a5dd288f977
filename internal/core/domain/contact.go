package domain

import (
	"fmt"

	"github.com/oryxgate/realty_cms/internal/apperrors"
)

// ContactStatus tracks a contact message through the admin inbox.
type ContactStatus string

const (
	ContactStatusNew    ContactStatus = "new"
	ContactStatusRead   ContactStatus = "read"
	ContactStatusClosed ContactStatus = "closed"
)

// ParseContactStatus validates a raw inbox status value. Anything outside
// the closed new/read/closed set is rejected with ErrValidation.
func ParseContactStatus(raw string) (ContactStatus, error) {
	switch ContactStatus(raw) {
	case ContactStatusNew, ContactStatusRead, ContactStatusClosed:
		return ContactStatus(raw), nil
	default:
		return "", fmt.Errorf("%w: invalid contact status %q, must be %q, %q or %q",
			apperrors.ErrValidation, raw, ContactStatusNew, ContactStatusRead, ContactStatusClosed)
	}
}

func (s ContactStatus) String() string {
	return string(s)
}

// Contact is a message submitted through the public contact form. Messages
// are plain text in whatever language the visitor wrote them, so nothing
// here is Localized. Submissions land as "new" and administrators move them
// to "read" and eventually "closed".
type Contact struct {
	ContactID string        `json:"contactID"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	IPAddress string        `json:"ipAddress"`
	Status    ContactStatus `json:"status"`
	AuditFields
}
