package display

import (
	"github.com/arthur-debert/fieldptr/pkg/fieldptr"
	"github.com/arthur-debert/fieldptr/pkg/fields"
	"github.com/arthur-debert/fieldptr/pkg/roles"
	"github.com/arthur-debert/fieldptr/pkg/style"
)

// Rows flattens a registry snapshot into table rows, in role order and then
// sublist order.
func Rows(snapshot []fieldptr.Entry[roles.ID, fields.Field]) []Row {
	var rows []Row
	for _, e := range snapshot {
		if len(e.Handles) == 0 {
			rows = append(rows, Row{Role: e.Role.String(), Index: -1, FieldID: -1})
			continue
		}
		for i, h := range e.Handles {
			row := Row{Role: e.Role.String(), Index: i, FieldID: -1}
			if h != nil {
				row.Field = h.Name
				row.FieldID = h.ID
				row.Location = string(h.Location)
				row.Present = true
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// NewTable builds a table with its summary
func NewTable(caseName string, rows []Row) Table {
	t := Table{Case: caseName, Rows: rows}
	seen := make(map[string]bool)
	for _, r := range rows {
		seen[r.Role] = true
		switch rowStatus(r) {
		case style.StatusBound:
			t.Summary.Bound++
			t.Summary.Slots++
		case style.StatusAbsent:
			t.Summary.Absent++
			t.Summary.Slots++
		default:
			t.Summary.Empty++
		}
	}
	t.Summary.Roles = len(seen)
	return t
}

func rowStatus(r Row) style.Status {
	switch {
	case r.Present:
		return style.StatusBound
	case r.Index >= 0:
		return style.StatusAbsent
	default:
		return style.StatusEmpty
	}
}

// groupByRole returns rows grouped by role, keeping first-seen role order
func groupByRole(rows []Row) ([]string, map[string][]Row) {
	var order []string
	groups := make(map[string][]Row)
	for _, r := range rows {
		if _, ok := groups[r.Role]; !ok {
			order = append(order, r.Role)
		}
		groups[r.Role] = append(groups[r.Role], r)
	}
	return order, groups
}
