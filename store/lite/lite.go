// Package lite provides a pure-Go SQLite backed account store.
package lite

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	nt "admintab/entity"
	"admintab/store"
)

// New opens a SQLite database at path, in memory when path is empty.
func New(path, operator string, lgr nt.Logger) (acc *store.Accounts, err error) {

	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open sqlite at %s", path)
		return
	}

	// memory databases are per connection
	db.SetMaxOpenConns(1)

	acc, err = store.New(db, "sqlite", operator, lgr)
	if err != nil {
		db.Close()
	}
	return
}
