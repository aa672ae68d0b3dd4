package service

import (
	"errors"
	"testing"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func notFound(table string) error {
	return &repository.QueryError{Table: table, Op: "get", Err: pgx.ErrNoRows}
}

func intPtr(v int) *int { return &v }

func requireHTTPError(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T: %v", err, err)
	require.Equal(t, status, httpErr.Status)
	return httpErr
}
