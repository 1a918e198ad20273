package admintab

import (
	nt "admintab/entity"
)

// Layout adjusts how the accounts table is shown.
type Layout struct {
	Columns []LayoutColumn `yaml:"columns"`
}

// LayoutColumn overrides the header and width of a named column.
type LayoutColumn struct {
	Name   string `yaml:"name"`
	Header string `yaml:"header,omitempty"`
	Width  int    `yaml:"width,omitempty"`
}

// apply returns columns with any overrides from layout.
func (layout Layout) apply(columns []nt.Column) []nt.Column {

	adjusted := make([]nt.Column, len(columns))
	copy(adjusted, columns)

	for _, lc := range layout.Columns {
		for i := range adjusted {
			if adjusted[i].Name != lc.Name {
				continue
			}
			if lc.Header != "" {
				adjusted[i].Header = lc.Header
			}
			if lc.Width > 0 {
				adjusted[i].Width = lc.Width
			}
		}
	}

	return adjusted
}
