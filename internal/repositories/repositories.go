package repositories

import "database/sql"

// DBTX is the slice of database/sql shared by *sql.DB and *sql.Tx. Repository
// methods that must run inside the checkout transaction take it explicitly.
type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
