package config

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/fieldptr/pkg/errors"
	"github.com/arthur-debert/fieldptr/pkg/fields"
	"github.com/arthur-debert/fieldptr/pkg/roles"
)

var validDims = map[int]bool{1: true, 3: true, 6: true, 9: true}

// Validate checks the case for problems that would make setup fail or
// silently map the wrong thing. All problems are reported together.
func (c *Case) Validate() error {
	var problems []string

	seen := make(map[string]bool)
	for i, f := range c.Fields {
		switch {
		case f.Name == "":
			problems = append(problems, fmt.Sprintf("fields[%d]: empty name", i))
		case seen[f.Name]:
			problems = append(problems, fmt.Sprintf("fields[%d]: duplicate name %q", i, f.Name))
		}
		seen[f.Name] = true

		if !fields.Location(f.Location).Valid() {
			problems = append(problems, fmt.Sprintf("field %q: unknown location %q", f.Name, f.Location))
		}
		if !validDims[f.Dim] {
			problems = append(problems, fmt.Sprintf("field %q: dimension %d not in {1,3,6,9}", f.Name, f.Dim))
		}
	}

	for i, s := range c.Models.Atmospheric.Species {
		if strings.TrimSpace(s) == "" {
			problems = append(problems, fmt.Sprintf("models.atmospheric.species[%d]: empty name", i))
		}
	}

	for i, b := range c.Bindings {
		if _, err := roles.Parse(b.Role); err != nil {
			problems = append(problems, fmt.Sprintf("bindings[%d]: unknown role %q", i, b.Role))
		}
		if b.Field == "" {
			problems = append(problems, fmt.Sprintf("bindings[%d]: empty field", i))
		}
		if b.Index < 0 {
			problems = append(problems, fmt.Sprintf("bindings[%d]: negative index %d", i, b.Index))
		}
	}

	if len(problems) > 0 {
		return errors.Newf(errors.ErrConfigValid, "invalid case %q:\n- %s", c.Name, strings.Join(problems, "\n- ")).
			WithDetail("problems", problems)
	}
	return nil
}
