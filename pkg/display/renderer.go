package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/fieldptr/pkg/errors"
	"github.com/arthur-debert/fieldptr/pkg/style"
	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Renderer writes a table in one output format
type Renderer interface {
	Render(w io.Writer, t Table) error
}

// NewRenderer returns the renderer for f. FormatAuto must be resolved first.
func NewRenderer(f Format) (Renderer, error) {
	switch f {
	case FormatTerminal:
		return &RichRenderer{}, nil
	case FormatText:
		return &TextRenderer{}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatYAML:
		return &YAMLRenderer{}, nil
	case FormatTOML:
		return &TOMLRenderer{}, nil
	default:
		return nil, errors.Newf(errors.ErrRender, "no renderer for format %s", f)
	}
}

// Render writes t to w in format f
func Render(w io.Writer, f Format, t Table) error {
	r, err := NewRenderer(f)
	if err != nil {
		return err
	}
	if err := r.Render(w, t); err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to render %s output", f)
	}
	return nil
}

// RichRenderer renders grouped, colored role status for a terminal
type RichRenderer struct{}

// Render implements Renderer
func (r *RichRenderer) Render(w io.Writer, t Table) error {
	var output strings.Builder

	output.WriteString(style.TitleStyle.Render("Case "+t.Case) + "\n")

	order, groups := groupByRole(t.Rows)
	for _, role := range order {
		rows := groups[role]
		slots := make([]style.SlotStatus, 0, len(rows))
		for _, row := range rows {
			slots = append(slots, style.SlotStatus{
				Role:     row.Role,
				Index:    row.Index,
				Field:    row.Field,
				Location: row.Location,
				Status:   rowStatus(row),
			})
		}
		output.WriteString(style.RenderRoleStatus(role, slots) + "\n")
	}

	output.WriteString("\n" + r.renderSummary(t.Summary) + "\n")
	_, err := io.WriteString(w, output.String())
	return err
}

func (r *RichRenderer) renderSummary(s Summary) string {
	line := fmt.Sprintf("%d roles, %d slots: %d bound, %d absent, %d roles not mapped",
		s.Roles, s.Slots, s.Bound, s.Absent, s.Empty)
	if s.Absent > 0 {
		return pterm.Warning.Sprint(line)
	}
	return pterm.Success.Sprint(line)
}

// TextRenderer renders an aligned plain-text table
type TextRenderer struct{}

// Render implements Renderer
func (r *TextRenderer) Render(w io.Writer, t Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ROLE\tINDEX\tFIELD\tID\tLOCATION\n")
	for _, row := range t.Rows {
		index, field, id := "-", "-", "-"
		if row.Index >= 0 {
			index = fmt.Sprint(row.Index)
			field = "<absent>"
		}
		if row.Present {
			field = row.Field
			id = fmt.Sprint(row.FieldID)
		}
		location := row.Location
		if location == "" {
			location = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", row.Role, index, field, id, location)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d roles, %d slots: %d bound, %d absent, %d roles not mapped\n",
		t.Summary.Roles, t.Summary.Slots, t.Summary.Bound, t.Summary.Absent, t.Summary.Empty)
	return err
}

// JSONRenderer renders indented JSON
type JSONRenderer struct{}

// Render implements Renderer
func (r *JSONRenderer) Render(w io.Writer, t Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// YAMLRenderer renders YAML
type YAMLRenderer struct{}

// Render implements Renderer
func (r *YAMLRenderer) Render(w io.Writer, t Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}

// TOMLRenderer renders TOML with one [[rows]] table per slot
type TOMLRenderer struct{}

// Render implements Renderer
func (r *TOMLRenderer) Render(w io.Writer, t Table) error {
	return toml.NewEncoder(w).Encode(t)
}
