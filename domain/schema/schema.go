package schema

import (
	"painel/domain/core"
)

// ColumnType is the declared runtime type of a column's values.
type ColumnType string

const (
	TypeInteger ColumnType = "integer"
	TypeDecimal ColumnType = "decimal"
	TypeText    ColumnType = "text"
	TypeEnum    ColumnType = "enum"
)

// Column declares one named column and its constraints.
type Column struct {
	Name        string     `json:"name"`
	Type        ColumnType `json:"type"`
	NonNegative bool       `json:"non_negative,omitempty"`
	Percent     bool       `json:"percent,omitempty"` // value must fall in [0, 100]
	Allowed     []string   `json:"allowed,omitempty"` // enum membership, exact match
}

// AllowsValue checks enum membership. Non-enum columns accept any text.
func (c Column) AllowsValue(v string) bool {
	if c.Type != TypeEnum {
		return true
	}
	for _, a := range c.Allowed {
		if a == v {
			return true
		}
	}
	return false
}

// Descriptor is the static declaration of one dashboard module: its
// spreadsheet file, primary sheet and column contract. Defined once at
// process start, immutable afterward.
type Descriptor struct {
	Name      string   `json:"name"`
	FileName  string   `json:"file_name"`
	SheetName string   `json:"sheet_name"`
	Required  []Column `json:"required_columns"`
	Optional  []Column `json:"optional_columns,omitempty"`
}

// Column looks a column up by exact name, required columns first.
func (d Descriptor) Column(name string) (Column, bool) {
	for _, c := range d.Required {
		if c.Name == name {
			return c, true
		}
	}
	for _, c := range d.Optional {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// RequiredNames returns the required column names in declaration order.
func (d Descriptor) RequiredNames() []string {
	names := make([]string, len(d.Required))
	for i, c := range d.Required {
		names[i] = c.Name
	}
	return names
}

// Registry is the static module name → descriptor mapping.
type Registry struct {
	byName map[string]Descriptor
	order  []string
}

// NewRegistry builds the registry with every dashboard module declared.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Descriptor)}
	for _, d := range moduleDescriptors() {
		r.byName[d.Name] = d
		r.order = append(r.order, d.Name)
	}
	return r
}

// Lookup resolves a module name to its descriptor.
func (r *Registry) Lookup(name string) (Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return Descriptor{}, core.NewUnknownModuleError(name)
	}
	return d, nil
}

// Modules lists module names in declaration order.
func (r *Registry) Modules() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
