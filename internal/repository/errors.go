package repository

import "fmt"

// QueryError records which table and operation a failed query ran against.
//
// It unwraps to the driver error, so errors.Is(err, pgx.ErrNoRows) and
// errors.As(err, **pgconn.PgError) keep working, and sqlerr reads the
// table through DatabaseTable to phrase not-found messages.
type QueryError struct {
	Table string
	Op    string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s table:%s: %v", e.Op, e.Table, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// DatabaseTable returns the table the query ran against.
func (e *QueryError) DatabaseTable() string {
	return e.Table
}

func wrapErr(table, op string, err error) error {
	if err == nil {
		return nil
	}
	return &QueryError{Table: table, Op: op, Err: err}
}
