// Package model holds the row types shared by the repository and
// service layers.
//
// Struct fields carry `db` tags matching the column names so pgx can
// scan rows by name, and `json` tags for whatever route layer serves them.
package model
