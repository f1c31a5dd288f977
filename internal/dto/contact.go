package dto

import (
	"time"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// CreateContactRequest is a public contact form submission. Status is not
// accepted from the caller; every submission starts as "new".
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// UpdateContactStatusRequest moves a contact message through the inbox
// workflow. Validation of the value itself happens in the domain layer.
type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ContactResponse is the admin serialization of a contact message.
type ContactResponse struct {
	ContactID string    `json:"contact_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IPAddress string    `json:"ip_address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToContactResponse renders a contact message. Contact fields are plain
// text, so no RenderContext is involved.
func ToContactResponse(ct *domain.Contact) ContactResponse {
	return ContactResponse{
		ContactID: ct.ContactID,
		Name:      ct.Name,
		Email:     ct.Email,
		Phone:     ct.Phone,
		Subject:   ct.Subject,
		Message:   ct.Message,
		IPAddress: ct.IPAddress,
		Status:    ct.Status.String(),
		CreatedAt: ct.CreatedAt,
		UpdatedAt: ct.LastUpdatedAt,
	}
}

// ToListContactResponse renders a page of contact messages.
func ToListContactResponse(items []domain.Contact) []ContactResponse {
	res := make([]ContactResponse, len(items))
	for i, ct := range items {
		res[i] = ToContactResponse(&ct)
	}
	return res
}
