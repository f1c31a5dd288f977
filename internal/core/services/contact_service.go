package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	"github.com/oryxgate/realty_cms/internal/dto"
)

// ContactService implements the public contact form and the admin inbox.
type ContactService struct {
	contactRepo portsrepo.ContactRepositoryFacade
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo portsrepo.ContactRepositoryFacade) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// SubmitContact stores a public contact form submission. Every submission
// starts as "new" no matter what the caller sends, and the submitter's IP
// is captured for abuse follow-up. Submissions carry no authenticated
// user, so the audit actor stays empty.
func (s *ContactService) SubmitContact(ctx context.Context, req dto.CreateContactRequest, ipAddress string) (*domain.Contact, error) {
	now := time.Now()
	contact := domain.Contact{
		ContactID: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: ipAddress,
		Status:    domain.ContactStatusNew,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.contactRepo.SaveContact(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to submit contact: %w", err)
	}
	return &contact, nil
}

// GetContactByID retrieves a contact message by ID.
func (s *ContactService) GetContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

// ListContacts retrieves contact messages for the admin inbox.
func (s *ContactService) ListContacts(ctx context.Context, filter portsrepo.ContactFilter, page portsrepo.ListParams) ([]domain.Contact, int, error) {
	contacts, total, err := s.contactRepo.ListContacts(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	return contacts, total, nil
}

// UpdateContactStatus moves a contact message to an explicit inbox status.
func (s *ContactService) UpdateContactStatus(ctx context.Context, contactID string, status string, updaterUserID string) (*domain.Contact, error) {
	parsed, err := domain.ParseContactStatus(status)
	if err != nil {
		return nil, err
	}
	return s.setContactStatus(ctx, contactID, parsed, updaterUserID)
}

// MarkContactRead marks a contact message as read.
func (s *ContactService) MarkContactRead(ctx context.Context, contactID string, updaterUserID string) (*domain.Contact, error) {
	return s.setContactStatus(ctx, contactID, domain.ContactStatusRead, updaterUserID)
}

// MarkContactClosed marks a contact message as closed.
func (s *ContactService) MarkContactClosed(ctx context.Context, contactID string, updaterUserID string) (*domain.Contact, error) {
	return s.setContactStatus(ctx, contactID, domain.ContactStatusClosed, updaterUserID)
}

func (s *ContactService) setContactStatus(ctx context.Context, contactID string, status domain.ContactStatus, updaterUserID string) (*domain.Contact, error) {
	existing, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact for status update: %w", err)
	}

	if err := s.contactRepo.UpdateContactStatus(ctx, contactID, status, updaterUserID); err != nil {
		return nil, fmt.Errorf("failed to update contact status: %w", err)
	}

	updated := *existing
	updated.Status = status
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID
	return &updated, nil
}

// DeleteContact soft-deletes a contact message.
func (s *ContactService) DeleteContact(ctx context.Context, contactID string, deleterUserID string) error {
	if err := s.contactRepo.DeleteContact(ctx, contactID, deleterUserID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
