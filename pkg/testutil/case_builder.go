package testutil

import (
	"testing"

	"github.com/arthur-debert/fieldptr/pkg/config"
	"github.com/arthur-debert/fieldptr/pkg/fields"
)

// CaseBuilder builds a config.Case. Base and boundary models start
// enabled, as in the embedded defaults.
type CaseBuilder struct {
	c config.Case
}

// NewCase starts a case with the given name
func NewCase(name string) *CaseBuilder {
	return &CaseBuilder{c: config.Case{
		Name:   name,
		Models: config.Models{Base: true, Boundary: true},
	}}
}

// Fields declares cell fields of dimension 1
func (b *CaseBuilder) Fields(names ...string) *CaseBuilder {
	for _, name := range names {
		b.Field(name, fields.LocationCells, 1)
	}
	return b
}

// Field declares one field
func (b *CaseBuilder) Field(name string, loc fields.Location, dim int) *CaseBuilder {
	b.c.Fields = append(b.c.Fields, config.FieldSpec{Name: name, Location: string(loc), Dim: dim})
	return b
}

// WithoutBase disables the base model
func (b *CaseBuilder) WithoutBase() *CaseBuilder {
	b.c.Models.Base = false
	return b
}

// WithoutBoundary disables the boundary model
func (b *CaseBuilder) WithoutBoundary() *CaseBuilder {
	b.c.Models.Boundary = false
	return b
}

// Atmospheric enables the atmospheric model with the given species fields
func (b *CaseBuilder) Atmospheric(species ...string) *CaseBuilder {
	b.c.Models.Atmospheric = config.Atmospheric{Enabled: true, Species: species}
	return b
}

// Bind adds an explicit binding
func (b *CaseBuilder) Bind(role, field string, index int) *CaseBuilder {
	b.c.Bindings = append(b.c.Bindings, config.BindingSpec{Role: role, Field: field, Index: index})
	return b
}

// Build returns the case. The builder can keep being used.
func (b *CaseBuilder) Build() *config.Case {
	c := b.c
	c.Fields = append([]config.FieldSpec(nil), b.c.Fields...)
	c.Bindings = append([]config.BindingSpec(nil), b.c.Bindings...)
	c.Models.Atmospheric.Species = append([]string(nil), b.c.Models.Atmospheric.Species...)
	return &c
}

// NewCatalog returns a catalog of cell fields with ids in the given order
func NewCatalog(t *testing.T, names ...string) *fields.Catalog {
	t.Helper()

	catalog := fields.NewCatalog()
	for _, name := range names {
		if _, err := catalog.Add(name, fields.LocationCells, 1); err != nil {
			t.Fatalf("Failed to add field %q: %v", name, err)
		}
	}
	return catalog
}
