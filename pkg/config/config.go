package config

// Case is a loaded case configuration
type Case struct {
	Name     string        `koanf:"name"`
	Fields   []FieldSpec   `koanf:"fields"`
	Models   Models        `koanf:"models"`
	Bindings []BindingSpec `koanf:"bindings"`

	// Source is the file the case was loaded from
	Source string `koanf:"-"`
}

// FieldSpec declares a field of the case
type FieldSpec struct {
	Name     string `koanf:"name"`
	Location string `koanf:"location"`
	Dim      int    `koanf:"dim"`
}

// Models selects which binders run
type Models struct {
	Base        bool        `koanf:"base"`
	Boundary    bool        `koanf:"boundary"`
	Atmospheric Atmospheric `koanf:"atmospheric"`
}

// Atmospheric configures the atmospheric binder. Species are field names,
// mapped to successive chemistry sublist indices.
type Atmospheric struct {
	Enabled bool     `koanf:"enabled"`
	Species []string `koanf:"species"`
}

// BindingSpec maps a field by name to a role and sublist index
type BindingSpec struct {
	Role  string `koanf:"role"`
	Field string `koanf:"field"`
	Index int    `koanf:"index"`
}
