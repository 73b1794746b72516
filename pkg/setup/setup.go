package setup

import (
	"github.com/arthur-debert/fieldptr/pkg/binder"
	"github.com/arthur-debert/fieldptr/pkg/config"
	"github.com/arthur-debert/fieldptr/pkg/errors"
	"github.com/arthur-debert/fieldptr/pkg/fields"
	"github.com/arthur-debert/fieldptr/pkg/logging"
	"github.com/arthur-debert/fieldptr/pkg/roles"
)

// Session holds the result of a setup run
type Session struct {
	name     string
	catalog  *fields.Catalog
	reg      *binder.Registry
	bindings []binder.Binding
	closed   bool
}

// Run executes the setup phase for c
func Run(c *config.Case) (*Session, error) {
	if c == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no case to set up")
	}

	logger := logging.GetLogger("setup").With().Str("case", c.Name).Logger()
	done := logging.LogOperationStart(logger, "setup")
	defer done()

	catalog, err := buildCatalog(c.Fields)
	if err != nil {
		return nil, err
	}

	reg := binder.NewRegistry()
	reg.EnsureReady()

	b := binder.New(reg, catalog)
	var bindings []binder.Binding

	if c.Models.Base {
		bindings = append(bindings, b.MapBase()...)
	}
	if c.Models.Boundary {
		bindings = append(bindings, b.MapBoundary()...)
	}
	if c.Models.Atmospheric.Enabled {
		ids := make([]int, len(c.Models.Atmospheric.Species))
		for i, name := range c.Models.Atmospheric.Species {
			ids[i] = catalog.IDOf(name)
			if ids[i] < 0 {
				logger.Warn().Str("species", name).Msg("Species field not declared, mapping as absent")
			}
		}
		bindings = append(bindings, b.MapAtmospheric(ids)...)
	}

	for _, bs := range c.Bindings {
		role, err := roles.Parse(bs.Role)
		if err != nil {
			reg.Teardown()
			return nil, errors.Wrapf(err, errors.ErrBind, "cannot bind field %q", bs.Field).
				WithDetail("role", bs.Role)
		}
		if bs.Index < 0 {
			reg.Teardown()
			return nil, errors.Newf(errors.ErrRoleIndex, "negative index %d for role %s", bs.Index, role).
				WithDetail("role", bs.Role)
		}
		bindings = append(bindings, b.MapNamed(role, bs.Index, bs.Field))
	}

	missing := 0
	for _, bd := range bindings {
		if !bd.Found() {
			missing++
		}
	}
	logger.Info().
		Int("fields", catalog.Len()).
		Int("bindings", len(bindings)).
		Int("absent", missing).
		Msg("Setup complete")

	return &Session{
		name:     c.Name,
		catalog:  catalog,
		reg:      reg,
		bindings: bindings,
	}, nil
}

func buildCatalog(specs []config.FieldSpec) (*fields.Catalog, error) {
	catalog := fields.NewCatalog()
	for _, fs := range specs {
		loc := fields.Location(fs.Location)
		if fs.Location == "" {
			loc = fields.LocationCells
		}
		dim := fs.Dim
		if dim == 0 {
			dim = 1
		}
		if _, err := catalog.Add(fs.Name, loc, dim); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

// Name returns the case name
func (s *Session) Name() string { return s.name }

// Registry returns the populated registry. It is torn down by Close.
func (s *Session) Registry() *binder.Registry { return s.reg }

// Catalog returns the fields declared by the case
func (s *Session) Catalog() *fields.Catalog { return s.catalog }

// Bindings returns every mapping made during setup, in order
func (s *Session) Bindings() []binder.Binding { return s.bindings }

// Close tears the registry down. Closing twice does nothing.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.reg.Teardown()
	s.closed = true
}
