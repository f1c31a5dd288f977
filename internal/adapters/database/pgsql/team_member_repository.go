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

type PgxTeamMemberRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTeamMemberRepository creates a new repository for team member data.
func NewPgxTeamMemberRepository(pool *pgxpool.Pool) portsrepo.TeamMemberRepositoryFacade {
	return &PgxTeamMemberRepository{pool: pool}
}

const teamMemberColumns = `
	team_member_id, name, job_title, bio, image, email, phone, linkedin_url,
	status, sort_order, created_at, created_by, last_updated_at, last_updated_by
`

func scanTeamMember(row pgx.Row) (domain.TeamMember, error) {
	var m domain.TeamMember
	err := row.Scan(
		&m.TeamMemberID,
		&m.Name,
		&m.JobTitle,
		&m.Bio,
		&m.Image,
		&m.Email,
		&m.Phone,
		&m.LinkedinURL,
		&m.Status,
		&m.SortOrder,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindTeamMemberByID retrieves a team member by ID.
func (r *PgxTeamMemberRepository) FindTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + `
		FROM team_members
		WHERE team_member_id = $1 AND deleted_at IS NULL;`

	m, err := scanTeamMember(r.pool.QueryRow(ctx, query, teamMemberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find team member %s: %w", teamMemberID, err)
	}
	return &m, nil
}

// ListTeamMembers retrieves team members, optionally filtered by status.
func (r *PgxTeamMemberRepository) ListTeamMembers(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.TeamMember, int, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []any{}
	if status != nil {
		args = append(args, *status)
		where += ` AND status = $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM team_members`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count team members: %w", err)
	}

	query := `SELECT ` + teamMemberColumns + ` FROM team_members` + where +
		` ORDER BY sort_order, created_at` +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, page.Limit, page.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	members, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TeamMember, error) {
		return scanTeamMember(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to collect team members: %w", err)
	}
	return members, total, nil
}

// SaveTeamMember persists a new team member.
func (r *PgxTeamMemberRepository) SaveTeamMember(ctx context.Context, member domain.TeamMember) error {
	query := `
		INSERT INTO team_members (` + teamMemberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	_, err := r.pool.Exec(ctx, query,
		member.TeamMemberID,
		member.Name,
		member.JobTitle,
		member.Bio,
		member.Image,
		member.Email,
		member.Phone,
		member.LinkedinURL,
		member.Status,
		member.SortOrder,
		member.CreatedAt,
		member.CreatedBy,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save team member %s: %w", member.TeamMemberID, mapWriteError(err))
	}
	return nil
}

// UpdateTeamMember updates an existing team member by ID.
func (r *PgxTeamMemberRepository) UpdateTeamMember(ctx context.Context, member domain.TeamMember) error {
	query := `
		UPDATE team_members SET
			name = $2, job_title = $3, bio = $4, image = $5, email = $6,
			phone = $7, linkedin_url = $8, status = $9, sort_order = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE team_member_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query,
		member.TeamMemberID,
		member.Name,
		member.JobTitle,
		member.Bio,
		member.Image,
		member.Email,
		member.Phone,
		member.LinkedinURL,
		member.Status,
		member.SortOrder,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update team member %s: %w", member.TeamMemberID, mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTeamMember soft-deletes a team member.
func (r *PgxTeamMemberRepository) DeleteTeamMember(ctx context.Context, teamMemberID string, deletedBy string) error {
	query := `
		UPDATE team_members SET
			deleted_at = $2,
			last_updated_at = $2,
			last_updated_by = $3
		WHERE team_member_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query, teamMemberID, time.Now(), deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete team member %s: %w", teamMemberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
