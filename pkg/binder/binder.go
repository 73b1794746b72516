package binder

import (
	"fmt"

	"github.com/arthur-debert/fieldptr/pkg/fieldptr"
	"github.com/arthur-debert/fieldptr/pkg/fields"
	"github.com/arthur-debert/fieldptr/pkg/logging"
	"github.com/arthur-debert/fieldptr/pkg/roles"
	"github.com/rs/zerolog"
)

// Registry is the field-pointer registry instantiated for this project
type Registry = fieldptr.Registry[roles.ID, fields.Field]

// NewRegistry returns an uninitialized registry sized for roles.Count
func NewRegistry() *Registry {
	return fieldptr.New[roles.ID, fields.Field](int(roles.Count))
}

// Binding records one mapping made by a binder
type Binding struct {
	Role   roles.ID
	Index  int
	Source string // field name or "#<id>"
	Field  *fields.Field
}

// Found reports whether the source resolved to a field
func (b Binding) Found() bool {
	return b.Field != nil
}

type namedRole struct {
	role roles.ID
	name string
}

var baseFields = []namedRole{
	{roles.Dt, "dt"},
	{roles.HybridBlend, "hybrid_blend"},
	{roles.H, "enthalpy"},
	{roles.T, "temperature"},
	{roles.Cp, "specific_heat"},
	{roles.Lambda, "thermal_conductivity"},
	{roles.ThDiff, "thermal_diffusivity"},
	{roles.Vism, "mesh_viscosity"},
	{roles.Poro, "porosity"},
	{roles.TPoro, "tensorial_porosity"},
}

var boundaryFields = []namedRole{
	{roles.TB, "boundary_temperature"},
}

var atmosphericFields = []namedRole{
	{roles.PotT, "temperature"},
	{roles.YmW, "ym_water"},
	{roles.Ntdrp, "number_of_droplets"},
}

// Binder writes resolved fields into a registry
type Binder struct {
	reg    *Registry
	dir    fields.Directory
	logger zerolog.Logger
}

// New creates a binder over reg and dir
func New(reg *Registry, dir fields.Directory) *Binder {
	return &Binder{
		reg:    reg,
		dir:    dir,
		logger: logging.GetLogger("binder"),
	}
}

// MapBase maps the base fields
func (b *Binder) MapBase() []Binding {
	return b.mapNamed(baseFields)
}

// MapBoundary maps the boundary fields
func (b *Binder) MapBoundary() []Binding {
	return b.mapNamed(boundaryFields)
}

// MapAtmospheric maps the atmospheric fields, then one chemistry entry per
// species id at successive sublist indices.
func (b *Binder) MapAtmospheric(speciesIDs []int) []Binding {
	out := b.mapNamed(atmosphericFields)
	for i, id := range speciesIDs {
		out = append(out, b.record(roles.Chemistry, i, fmt.Sprintf("#%d", id), b.dir.ByID(id)))
	}
	b.logger.Debug().
		Int("species", len(speciesIDs)).
		Int("sublist", b.reg.SublistSize(roles.Chemistry)).
		Msg("Atmospheric chemistry mapped")
	return out
}

// MapNamed maps a single field by name at (role, index)
func (b *Binder) MapNamed(role roles.ID, index int, name string) Binding {
	return b.record(role, index, name, b.dir.ByNameTry(name))
}

func (b *Binder) mapNamed(table []namedRole) []Binding {
	out := make([]Binding, 0, len(table))
	for _, nr := range table {
		out = append(out, b.record(nr.role, 0, nr.name, b.dir.ByNameTry(nr.name)))
	}
	return out
}

func (b *Binder) record(role roles.ID, index int, source string, f *fields.Field) Binding {
	b.reg.MapIndexed(role, index, f)

	event := b.logger.Trace()
	if f == nil {
		event = b.logger.Debug()
	}
	event.Stringer("role", role).
		Int("index", index).
		Str("source", source).
		Bool("found", f != nil).
		Msg("Role mapped")

	return Binding{Role: role, Index: index, Source: source, Field: f}
}
