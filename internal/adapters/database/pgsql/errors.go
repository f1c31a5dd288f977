package pgsql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oryxgate/realty_cms/internal/apperrors"
)

// mapWriteError translates driver errors on inserts and updates into
// application errors. Unique-index violations (per-locale slug indexes,
// currency code) surface as ErrDuplicate so services can regenerate and
// retry.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("constraint %s: %w", pgErr.ConstraintName, apperrors.ErrDuplicate)
	}
	return err
}
