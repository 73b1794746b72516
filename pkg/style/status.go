package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Status of a role slot in the field-pointer table
type Status string

const (
	StatusBound  Status = "bound"  // Slot points at a field
	StatusAbsent Status = "absent" // Slot was written with no field
	StatusEmpty  Status = "empty"  // Role was never mapped
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusBound:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusAbsent:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// SlotStatus describes one slot of a role
type SlotStatus struct {
	Role     string
	Index    int // -1 for an empty role
	Field    string
	Location string
	Status   Status
}

// RenderSlotStatus renders a single slot line
func RenderSlotStatus(s SlotStatus) string {
	role := s.Role
	if s.Index >= 0 {
		role = fmt.Sprintf("%s[%d]", s.Role, s.Index)
	}
	styledRole := StatusStyle(s.Status).Sprint(fmt.Sprintf("%-14s", role))

	var target string
	switch s.Status {
	case StatusBound:
		target = LocationStyle(s.Location).Render(s.Field)
		if s.Location != "" {
			target += " " + MutedStyle.Render("("+s.Location+")")
		}
	case StatusAbsent:
		target = WarningStyle.Render("<absent>")
	default:
		target = MutedStyle.Render("not mapped")
	}

	return fmt.Sprintf("    %s : %s", styledRole, target)
}

// RenderRoleStatus renders every slot of a role under a header line
func RenderRoleStatus(role string, slots []SlotStatus) string {
	var result strings.Builder

	header := role + ":"
	if AggregateStatus(slots) == StatusAbsent {
		header = StatusStyle(StatusAbsent).Sprint(header)
	}
	result.WriteString(header + "\n")

	for _, s := range slots {
		result.WriteString(RenderSlotStatus(s) + "\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// AggregateStatus is StatusAbsent if any slot is absent, StatusBound if at
// least one slot is bound, and StatusEmpty otherwise.
func AggregateStatus(slots []SlotStatus) Status {
	bound := false
	for _, s := range slots {
		switch s.Status {
		case StatusAbsent:
			return StatusAbsent
		case StatusBound:
			bound = true
		}
	}
	if bound {
		return StatusBound
	}
	return StatusEmpty
}
