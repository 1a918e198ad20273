// Package duck provides a DuckDB backed account store.
package duck

import (
	_ "github.com/marcboeker/go-duckdb"

	nt "admintab/entity"
	"admintab/store"
)

// New opens a DuckDB database at path, in memory when path is empty.
func New(path, operator string, lgr nt.Logger) (*store.Accounts, error) {
	return store.Open("duckdb", path, operator, lgr)
}
