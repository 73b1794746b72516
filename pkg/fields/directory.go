package fields

import (
	"github.com/arthur-debert/fieldptr/pkg/errors"
	"github.com/arthur-debert/fieldptr/pkg/registry"
)

// Directory resolves field handles. Both lookups return nil when the field
// does not exist.
type Directory interface {
	ByNameTry(name string) *Field
	ByID(id int) *Field
}

// Catalog is an in-memory Directory. Field ids are assigned in insertion
// order starting at 0.
type Catalog struct {
	fields registry.Registry[*Field]
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{fields: registry.New[*Field]()}
}

// Add creates a field and returns it
func (c *Catalog) Add(name string, loc Location, dim int) (*Field, error) {
	if !loc.Valid() {
		return nil, errors.Newf(errors.ErrFieldInvalid, "field %q has unknown location %q", name, loc).
			WithDetail("field", name)
	}
	if dim < 1 {
		return nil, errors.Newf(errors.ErrFieldInvalid, "field %q has dimension %d", name, dim).
			WithDetail("field", name)
	}

	f := &Field{Name: name, Location: loc, Dim: dim}
	id, err := c.fields.Register(name, f)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "cannot add field %q", name)
	}
	f.ID = id
	return f, nil
}

// ByNameTry returns the named field or nil
func (c *Catalog) ByNameTry(name string) *Field {
	f, err := c.fields.Get(name)
	if err != nil {
		return nil
	}
	return f
}

// ByID returns the field with the given id or nil
func (c *Catalog) ByID(id int) *Field {
	f, _ := c.fields.At(id)
	return f
}

// IDOf returns the id of the named field, or -1
func (c *Catalog) IDOf(name string) int {
	return c.fields.Position(name)
}

// Len returns the number of fields
func (c *Catalog) Len() int {
	return c.fields.Count()
}

// Fields returns all fields in id order
func (c *Catalog) Fields() []*Field {
	out := make([]*Field, 0, c.fields.Count())
	for _, name := range c.fields.Names() {
		out = append(out, c.ByNameTry(name))
	}
	return out
}
