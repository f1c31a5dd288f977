package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
)

type PgxContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgxContactRepository creates a new repository for contact messages.
func NewPgxContactRepository(pool *pgxpool.Pool) portsrepo.ContactRepositoryFacade {
	return &PgxContactRepository{pool: pool}
}

const contactColumns = `
	contact_id, name, email, phone, subject, message, ip_address, status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanContact(row pgx.Row) (domain.Contact, error) {
	var ct domain.Contact
	err := row.Scan(
		&ct.ContactID,
		&ct.Name,
		&ct.Email,
		&ct.Phone,
		&ct.Subject,
		&ct.Message,
		&ct.IPAddress,
		&ct.Status,
		&ct.CreatedAt,
		&ct.CreatedBy,
		&ct.LastUpdatedAt,
		&ct.LastUpdatedBy,
	)
	return ct, err
}

// FindContactByID retrieves a contact message by ID.
func (r *PgxContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + `
		FROM contacts
		WHERE contact_id = $1 AND deleted_at IS NULL;`

	ct, err := scanContact(r.pool.QueryRow(ctx, query, contactID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contact %s: %w", contactID, err)
	}
	return &ct, nil
}

// ListContacts retrieves contact messages, newest first, optionally
// filtered by status, sender email or a free-text search over name, email
// and subject.
func (r *PgxContactRepository) ListContacts(ctx context.Context, filter portsrepo.ContactFilter, page portsrepo.ListParams) ([]domain.Contact, int, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []any{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.Email != "" {
		args = append(args, filter.Email)
		where += ` AND email = $` + strconv.Itoa(len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		where += ` AND (name ILIKE $` + n + ` OR email ILIKE $` + n + ` OR subject ILIKE $` + n + `)`
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	query := `SELECT ` + contactColumns + ` FROM contacts` + where +
		` ORDER BY created_at DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, page.Limit, page.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Contact, error) {
		return scanContact(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to collect contacts: %w", err)
	}
	return contacts, total, nil
}

// SaveContact persists a new contact message.
func (r *PgxContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

	_, err := r.pool.Exec(ctx, query,
		contact.ContactID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Subject,
		contact.Message,
		contact.IPAddress,
		contact.Status,
		contact.CreatedAt,
		contact.CreatedBy,
		contact.LastUpdatedAt,
		contact.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact %s: %w", contact.ContactID, mapWriteError(err))
	}
	return nil
}

// UpdateContactStatus moves a contact message through the inbox workflow.
func (r *PgxContactRepository) UpdateContactStatus(ctx context.Context, contactID string, status domain.ContactStatus, updatedBy string) error {
	query := `
		UPDATE contacts SET
			status = $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE contact_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query, contactID, status, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update contact %s status: %w", contactID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteContact soft-deletes a contact message.
func (r *PgxContactRepository) DeleteContact(ctx context.Context, contactID string, deletedBy string) error {
	query := `
		UPDATE contacts SET
			deleted_at = $2,
			last_updated_at = $2,
			last_updated_by = $3
		WHERE contact_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query, contactID, time.Now(), deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete contact %s: %w", contactID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
