package entity

// Kind selects how a column's cells are rendered and edited.
type Kind string

const (
	KindText     Kind = "text"
	KindNumber   Kind = "number"
	KindCheckbox Kind = "checkbox"
	KindSelect   Kind = "select"
)

// Validator accepts or rejects a scratch value.
// Key identifies the row, empty for the new-row draft.
type Validator func(val Value, key string) bool

// Column describes one table column.
// Immutable for the life of a table.
type Column struct {
	Name     string   `yaml:"name"`
	Header   string   `yaml:"header"`
	Kind     Kind     `yaml:"kind,omitempty"`
	Editable bool     `yaml:"editable,omitempty"`
	Options  []string `yaml:"options,omitempty"`
	Width    int      `yaml:"width,omitempty"`

	Validate Validator `yaml:"-"`
}

// Valid applies the validator, if any.
func (col Column) Valid(val Value, key string) bool {
	if col.Validate == nil {
		return true
	}
	return col.Validate(val, key)
}

// HasOption reports whether opt is among the select options.
func (col Column) HasOption(opt string) bool {
	for _, o := range col.Options {
		if o == opt {
			return true
		}
	}
	return false
}
