package employee

import (
	"errors"
	"strings"

	employeeerrors "go-employees/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError translates a unique-index violation into the
// duplicate-email conflict. A race that slips past the pre-check still
// surfaces as the same failure.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeeerrors.ErrEmployeeEmailExists
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return employeeerrors.ErrEmployeeEmailExists
	}

	return err
}
