package admintab

import (
	"admintab/edible"
	nt "admintab/entity"
)

const (
	accountCol = "account"
	nameCol    = "name"
	roleCol    = "role"
)

// roster holds the account identifiers last loaded.
// Shared with the account column's validator.
type roster struct {
	known map[string]bool
}

func (rst *roster) set(accounts []nt.Account) {
	rst.known = map[string]bool{}
	for _, acc := range accounts {
		rst.known[acc.Account] = true
	}
}

func (rst *roster) has(account string) bool {
	return rst.known[account]
}

// accountColumns describes the accounts table.
// The account is only entered when adding and must be new.
func accountColumns(rst *roster, layout Layout) []nt.Column {

	roles := []string{}
	for _, role := range nt.Roles {
		roles = append(roles, string(role))
	}

	columns := []nt.Column{
		{
			Name:   accountCol,
			Header: "Account",
			Kind:   nt.KindText,
			Width:  16,
			Validate: func(val nt.Value, key string) bool {
				account := val.String()
				if key != edible.DraftKey {
					return account == key
				}
				return account != "" && !rst.has(account)
			},
		},
		{
			Name:     nameCol,
			Header:   "Name",
			Kind:     nt.KindText,
			Editable: true,
			Width:    24,
			Validate: required,
		},
		{
			Name:     roleCol,
			Header:   "Role",
			Kind:     nt.KindSelect,
			Editable: true,
			Options:  roles,
			Width:    12,
			Validate: required,
		},
	}

	return layout.apply(columns)
}

func required(val nt.Value, key string) bool {
	return val.String() != ""
}

func accountRows(accounts []nt.Account) []nt.Row {

	rows := make([]nt.Row, 0, len(accounts))
	for _, acc := range accounts {
		rows = append(rows, nt.Row{
			Key: acc.Account,
			Values: nt.Values{
				accountCol: nt.Text(acc.Account),
				nameCol:    nt.Text(acc.Name),
				roleCol:    nt.Text(string(acc.Role)),
			},
		})
	}
	return rows
}

func accountOf(vals nt.Values) nt.Account {
	return nt.Account{
		Account: vals.Get(accountCol).String(),
		Name:    vals.Get(nameCol).String(),
		Role:    nt.Role(vals.Get(roleCol).String()),
	}
}
