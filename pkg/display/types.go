package display

// Row is one slot of the role table. A role that was never mapped has a
// single row with Index -1.
type Row struct {
	Role     string `json:"role" yaml:"role" toml:"role"`
	Index    int    `json:"index" yaml:"index" toml:"index"`
	Field    string `json:"field,omitempty" yaml:"field,omitempty" toml:"field,omitempty"`
	FieldID  int    `json:"field_id" yaml:"field_id" toml:"field_id"`
	Location string `json:"location,omitempty" yaml:"location,omitempty" toml:"location,omitempty"`
	Present  bool   `json:"present" yaml:"present" toml:"present"`
}

// Summary counts the rows of a table
type Summary struct {
	Roles  int `json:"roles" yaml:"roles" toml:"roles"`
	Slots  int `json:"slots" yaml:"slots" toml:"slots"`
	Bound  int `json:"bound" yaml:"bound" toml:"bound"`
	Absent int `json:"absent" yaml:"absent" toml:"absent"`
	Empty  int `json:"empty" yaml:"empty" toml:"empty"`
}

// Table is the complete role table of a case
type Table struct {
	Case    string  `json:"case" yaml:"case" toml:"case"`
	Rows    []Row   `json:"rows" yaml:"rows" toml:"rows"`
	Summary Summary `json:"summary" yaml:"summary" toml:"summary"`
}
