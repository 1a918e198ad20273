package entity

// Role is the single role an account holds.
type Role string

const (
	Updater Role = "updater"
	Builder Role = "builder"
)

// Roles lists the assignable roles in display order.
var Roles = []Role{Updater, Builder}

// Label returns a display label for the role.
func (role Role) Label() string {
	switch role {
	case Updater:
		return "Updater"
	case Builder:
		return "Builder"
	}
	return string(role)
}

// Account is a service account as known to the account service.
type Account struct {
	Account string `yaml:"account"`
	Name    string `yaml:"name"`
	Role    Role   `yaml:"role"`
}
