// Package dashboard holds the static field metadata driving the admin
// account dashboard: which attributes exist, which are searchable, which
// appear on the collection/show/form surfaces, and how they render.
package dashboard

// FieldType describes how a dashboard field is typed and rendered.
type FieldType string

const (
	FieldNumber   FieldType = "number"
	FieldString   FieldType = "string"
	FieldDateTime FieldType = "datetime"
	FieldSelect   FieldType = "select"
	FieldCount    FieldType = "count"
)

// Field describes one dashboard attribute.
type Field struct {
	Name       string    `json:"name"`
	Type       FieldType `json:"type"`
	Searchable bool      `json:"searchable"`
	Editable   bool      `json:"editable"`
	RenderHint string    `json:"render_hint,omitempty"`
	Options    []string  `json:"options,omitempty"`
}

// Schema is a declarative dashboard description for one resource.
type Schema struct {
	Resource             string   `json:"resource"`
	Fields               []Field  `json:"fields"`
	CollectionAttributes []string `json:"collection_attributes"`
	ShowAttributes       []string `json:"show_attributes"`
	FormAttributes       []string `json:"form_attributes"`
}

// AccountSchema describes the operator dashboard for accounts.
var AccountSchema = Schema{
	Resource: "accounts",
	Fields: []Field{
		{Name: "id", Type: FieldNumber, Searchable: true},
		{Name: "name", Type: FieldString, Searchable: true, Editable: true},
		{Name: "locale", Type: FieldSelect, Editable: true, Options: []string{"en", "de", "es", "fr", "it", "ja", "pt"}},
		{Name: "status", Type: FieldSelect, Editable: true, Options: []string{"active", "suspended"}},
		{Name: "portals", Type: FieldCount, RenderHint: "badge"},
		{Name: "created_at", Type: FieldDateTime},
		{Name: "updated_at", Type: FieldDateTime},
	},
	CollectionAttributes: []string{"id", "name", "locale", "status", "portals"},
	ShowAttributes:       []string{"id", "name", "created_at", "updated_at", "locale", "status", "portals"},
	FormAttributes:       []string{"name", "locale", "status"},
}

// SearchableFields returns the names of fields flagged searchable.
func (s Schema) SearchableFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Searchable {
			names = append(names, f.Name)
		}
	}
	return names
}

// IsFormAttribute reports whether a field may be written through the
// dashboard form.
func (s Schema) IsFormAttribute(name string) bool {
	for _, attr := range s.FormAttributes {
		if attr == name {
			return true
		}
	}
	return false
}

// Field returns the descriptor for a named field.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
