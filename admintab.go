// Package admintab is the account administration dashboard.
package admintab

import (
	"context"

	"admintab/editor"
)

// Service specifies the account service backing the dashboard.
type Service interface {
	editor.Service

	// RemoveAccount deletes an account
	RemoveAccount(ctx context.Context, account string) error
	// Name returns the name of the backend
	Name() string
}
