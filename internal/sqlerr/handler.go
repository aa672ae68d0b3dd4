package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/lightbnb/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode returns the Code carried by err, mapping a raw *pgconn.PgError if
// needed. Anything else is Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}
	return Other
}

func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// errorCode builds <ENTITY>_<ACTION>, e.g. users + UniqueViolation
// becomes USER_ALREADY_EXISTS.
func errorCode(tableName string, code Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	action := "ERROR"
	switch code {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", singularize(strings.ToUpper(tableName)), action)
}

func clientMessage(sqlErr *Error) string {
	entity := entityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entity)
	case UniqueViolation:
		column := uniqueColumn(sqlErr.ConstraintName)
		if column == "" {
			return fmt.Sprintf("A %s with this identifier already exists", entity)
		}
		return fmt.Sprintf("A %s with this %s already exists", entity, humanize(column))
	case NotNullViolation:
		field := humanize(sqlErr.ColumnName)
		if field == "" {
			field = "field"
		}
		return fmt.Sprintf("The %s is required", field)
	case CheckViolation:
		if field := humanize(sqlErr.ColumnName); field != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", field)
		}
		return "One or more values do not meet required conditions"
	default:
		return "An error occurred while processing your request"
	}
}

// entityName prefers the base of an *_id column (owner_id -> Owner), then
// the singular table name.
func entityName(tableName, columnName string) string {
	lower := strings.ToLower(columnName)
	if strings.HasSuffix(lower, "_id") {
		return humanize(strings.TrimSuffix(lower, "_id"))
	}
	if tableName != "" {
		return humanize(singularize(tableName))
	}
	return "record"
}

// singularize turns a table name into an entity name, preserving case:
// "users" -> "user", "PROPERTIES" -> "PROPERTY", "property_reviews" -> "property_review".
func singularize(word string) string {
	lower := strings.ToLower(word)
	switch {
	case strings.HasSuffix(lower, "ies") && len(word) > 3:
		suffix := "y"
		if word[len(word)-1] == 'S' {
			suffix = "Y"
		}
		return word[:len(word)-3] + suffix
	case strings.HasSuffix(lower, "s") && len(word) > 1:
		return word[:len(word)-1]
	}
	return word
}

// humanize: "cost_per_night" -> "Cost Per Night".
func humanize(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

var constraintKeyRegex = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// uniqueColumn reads the column out of unique_<table>_<column> or
// <table>_<column>_key constraint names.
func uniqueColumn(constraintName string) string {
	if strings.HasPrefix(constraintName, "unique_") {
		if parts := strings.Split(constraintName, "_"); len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := constraintKeyRegex.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// HandleError maps a repository error to an *errs.HTTPError. HTTP errors pass
// through untouched; Postgres constraint errors become 400s, missing rows 404s,
// and everything else a 500 that leaks no details.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		code := errorCode(sqlErr.TableName, sqlErr.Code)
		message := clientMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(message, false, &code, nil, nil)
		case UniqueViolation, CheckViolation:
			return errs.NewBadRequestError(message, true, &code, nil, nil)
		case NotNullViolation:
			fieldErrors := []errs.FieldError{{Field: strings.ToLower(sqlErr.ColumnName), Error: "is required"}}
			return errs.NewBadRequestError(message, true, &code, fieldErrors, nil)
		case InvalidTextRep, NumericOutOfRange:
			invalid := "INVALID_INPUT"
			return errs.NewBadRequestError("One or more values have an invalid format", true, &invalid, nil, nil)
		case ConnectionFailure:
			return errs.NewServiceUnavailableError("Database is unavailable")
		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		if table := tableFromError(err); table != "" {
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", entityName(table, "")), true, nil)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}

// tableFromError finds the table a failed query ran against, either through
// a DatabaseTable() method (repository.QueryError) or a "table:<name>:"
// marker in the message.
func tableFromError(err error) string {
	var tabled interface{ DatabaseTable() string }
	if errors.As(err, &tabled) {
		return tabled.DatabaseTable()
	}

	if _, rest, ok := strings.Cut(err.Error(), "table:"); ok {
		table, _, _ := strings.Cut(rest, ":")
		return table
	}
	return ""
}
