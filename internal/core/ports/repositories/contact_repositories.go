package repositories

import (
	"context"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// ContactFilter narrows admin inbox listings. Search matches name, email
// and subject; Email is an exact match.
type ContactFilter struct {
	Status *domain.ContactStatus
	Email  string
	Search string
}

// ContactRepositoryFacade covers contact message persistence.
type ContactRepositoryFacade interface {
	FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error)
	ListContacts(ctx context.Context, filter ContactFilter, page ListParams) ([]domain.Contact, int, error)
	SaveContact(ctx context.Context, contact domain.Contact) error
	UpdateContactStatus(ctx context.Context, contactID string, status domain.ContactStatus, updatedBy string) error
	DeleteContact(ctx context.Context, contactID string, deletedBy string) error
}
