package roles

import (
	"github.com/arthur-debert/fieldptr/pkg/errors"
	"github.com/arthur-debert/fieldptr/pkg/registry"
)

// ID identifies a role
type ID int

// Base, boundary and atmospheric roles
const (
	Dt          ID = iota // local time step
	HybridBlend           // hybrid convection blending factor
	H                     // enthalpy
	T                     // temperature
	Cp                    // isobaric specific heat
	Lambda                // thermal conductivity
	ThDiff                // thermal diffusivity
	Vism                  // mesh viscosity
	Poro                  // porosity
	TPoro                 // tensorial porosity
	TB                    // boundary temperature
	PotT                  // potential temperature
	YmW                   // total water mass fraction
	Ntdrp                 // number of droplets
	Chemistry             // chemical species (sublist)

	// Count is the number of roles; it is not a role itself.
	Count
)

type info struct {
	name        string
	description string
}

var infos = [Count]info{
	Dt:          {"dt", "Local time step"},
	HybridBlend: {"hybrid_blend", "Hybrid convection blending factor"},
	H:           {"h", "Enthalpy"},
	T:           {"t", "Temperature"},
	Cp:          {"cp", "Isobaric specific heat"},
	Lambda:      {"lambda", "Thermal conductivity"},
	ThDiff:      {"th_diff", "Thermal diffusivity"},
	Vism:        {"vism", "Mesh viscosity"},
	Poro:        {"poro", "Porosity"},
	TPoro:       {"t_poro", "Tensorial porosity"},
	TB:          {"t_b", "Boundary temperature"},
	PotT:        {"pot_t", "Potential temperature (atmospheric)"},
	YmW:         {"ym_w", "Total water mass fraction (atmospheric)"},
	Ntdrp:       {"ntdrp", "Number of droplets (atmospheric)"},
	Chemistry:   {"chemistry", "Atmospheric chemistry species, one per sublist index"},
}

var byName = registry.New[ID]()

func init() {
	for id := ID(0); id < Count; id++ {
		registry.MustRegister(byName, infos[id].name, id)
	}
}

// String returns the short role name, e.g. "t_b"
func (id ID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return infos[id].name
}

// Valid reports whether id is within [0, Count)
func (id ID) Valid() bool {
	return id >= 0 && id < Count
}

// Description returns a one-line description of the role
func Description(id ID) string {
	if !id.Valid() {
		return ""
	}
	return infos[id].description
}

// Parse resolves a short role name
func Parse(name string) (ID, error) {
	id, err := byName.Get(name)
	if err != nil {
		return -1, errors.Wrapf(err, errors.ErrRoleUnknown, "unknown role %q", name).
			WithDetail("role", name)
	}
	return id, nil
}

// All returns every role in enumeration order
func All() []ID {
	ids := make([]ID, Count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Names returns every role name in enumeration order
func Names() []string {
	return byName.Names()
}
