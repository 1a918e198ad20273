// Package store implements the account service over database/sql.
package store

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	nt "admintab/entity"
)

const schema = `
	CREATE TABLE IF NOT EXISTS accounts (
		account VARCHAR PRIMARY KEY,
		name    VARCHAR NOT NULL,
		role    VARCHAR NOT NULL
	)
`

// Accounts is an account service backed by a sql database.
type Accounts struct {
	db       *sql.DB
	name     string
	operator string
	logger   nt.Logger
}

// Open opens the database and ensures the schema.
// Operator is reported by WhoAmI.
func Open(driver, dsn, operator string, lgr nt.Logger) (acc *Accounts, err error) {

	db, err := sql.Open(driver, dsn)
	if err != nil {
		err = errors.Wrapf(err, "failed to open %s", driver)
		return
	}

	acc, err = New(db, driver, operator, lgr)
	if err != nil {
		db.Close()
	}
	return
}

// New wraps an open database and ensures the schema.
func New(db *sql.DB, name, operator string, lgr nt.Logger) (acc *Accounts, err error) {

	_, err = db.Exec(schema)
	if err != nil {
		err = errors.Wrapf(err, "failed to create accounts table")
		return
	}

	acc = &Accounts{
		db:       db,
		name:     name,
		operator: operator,
		logger:   lgr,
	}
	return
}

// Close closes the database.
func (acc *Accounts) Close() error {
	return acc.db.Close()
}

// Name returns the name of the backend
func (acc *Accounts) Name() string {
	return acc.name
}

// WhoAmI returns the operator's identity.
func (acc *Accounts) WhoAmI(ctx context.Context) (operator string, err error) {

	if acc.operator == "" {
		err = errors.New("no operator configured")
		return
	}
	operator = acc.operator
	return
}

// ListAccounts returns all account identifiers.
func (acc *Accounts) ListAccounts(ctx context.Context) (accounts []string, err error) {

	rows, err := acc.db.QueryContext(ctx, "SELECT account FROM accounts ORDER BY account")
	if err != nil {
		err = errors.Wrapf(err, "failed to query accounts")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var account string
		if err = rows.Scan(&account); err != nil {
			err = errors.Wrapf(err, "failed to scan account")
			return
		}
		accounts = append(accounts, account)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating accounts")
	return
}

// AccountInfo returns the named account, or all accounts when account is empty.
// A missing account yields no error and no result.
func (acc *Accounts) AccountInfo(ctx context.Context, account string) (infos []nt.Account, err error) {

	query := "SELECT account, name, role FROM accounts ORDER BY account"
	args := []any{}
	if account != "" {
		query = "SELECT account, name, role FROM accounts WHERE account = ?"
		args = append(args, account)
	}

	rows, err := acc.db.QueryContext(ctx, query, args...)
	if err != nil {
		err = errors.Wrapf(err, "failed to query account info")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var info nt.Account
		var role string
		if err = rows.Scan(&info.Account, &info.Name, &role); err != nil {
			err = errors.Wrapf(err, "failed to scan account info")
			return
		}
		info.Role = nt.Role(role)
		infos = append(infos, info)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating account info")
	return
}

// AddAccount creates an account.
func (acc *Accounts) AddAccount(ctx context.Context, info nt.Account) (err error) {

	err = check(info)
	if err != nil {
		return
	}

	exists, err := acc.exists(ctx, info.Account)
	if err != nil {
		return
	}
	if exists {
		err = errors.Errorf("account %s already exists", info.Account)
		return
	}

	_, err = acc.db.ExecContext(ctx,
		"INSERT INTO accounts (account, name, role) VALUES (?, ?, ?)",
		info.Account, info.Name, string(info.Role))
	if err != nil {
		err = errors.Wrapf(err, "failed to insert account %s", info.Account)
		return
	}

	acc.logger.Info(ctx, "account added", "account", info.Account, "role", info.Role, "by", acc.operator)
	return
}

// ChangeAccount updates the name and role of an existing account.
func (acc *Accounts) ChangeAccount(ctx context.Context, info nt.Account) (err error) {

	err = check(info)
	if err != nil {
		return
	}

	result, err := acc.db.ExecContext(ctx,
		"UPDATE accounts SET name = ?, role = ? WHERE account = ?",
		info.Name, string(info.Role), info.Account)
	if err != nil {
		err = errors.Wrapf(err, "failed to update account %s", info.Account)
		return
	}

	err = affected(result, info.Account)
	if err != nil {
		return
	}

	acc.logger.Info(ctx, "account changed", "account", info.Account, "role", info.Role, "by", acc.operator)
	return
}

// RemoveAccount deletes an account.
func (acc *Accounts) RemoveAccount(ctx context.Context, account string) (err error) {

	result, err := acc.db.ExecContext(ctx, "DELETE FROM accounts WHERE account = ?", account)
	if err != nil {
		err = errors.Wrapf(err, "failed to delete account %s", account)
		return
	}

	err = affected(result, account)
	if err != nil {
		return
	}

	acc.logger.Info(ctx, "account removed", "account", account, "by", acc.operator)
	return
}

// unexported

func (acc *Accounts) exists(ctx context.Context, account string) (exists bool, err error) {

	var count int
	err = acc.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM accounts WHERE account = ?", account).Scan(&count)
	if err != nil {
		err = errors.Wrapf(err, "failed to count account %s", account)
		return
	}

	exists = count > 0
	return
}

func check(info nt.Account) error {

	switch {
	case info.Account == "":
		return errors.New("account is required")
	case info.Name == "":
		return errors.New("name is required")
	}

	for _, role := range nt.Roles {
		if info.Role == role {
			return nil
		}
	}
	return errors.Errorf("unknown role %q", info.Role)
}

func affected(result sql.Result, account string) error {

	count, err := result.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "failed to get rows affected")
	}
	if count == 0 {
		return errors.Errorf("account %s not found", account)
	}
	return nil
}
