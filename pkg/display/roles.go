package display

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arthur-debert/fieldptr/pkg/errors"
	"github.com/arthur-debert/fieldptr/pkg/roles"
	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// RoleInfo describes one role of the enumeration
type RoleInfo struct {
	ID          int    `json:"id" yaml:"id" toml:"id"`
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

type roleList struct {
	Roles []RoleInfo `json:"roles" yaml:"roles" toml:"roles"`
}

// RoleInfos lists every role in enumeration order
func RoleInfos() []RoleInfo {
	out := make([]RoleInfo, 0, int(roles.Count))
	for _, id := range roles.All() {
		out = append(out, RoleInfo{ID: int(id), Name: id.String(), Description: roles.Description(id)})
	}
	return out
}

// RenderRoles writes the role list in format f
func RenderRoles(w io.Writer, f Format) error {
	infos := RoleInfos()

	var err error
	switch f {
	case FormatTerminal:
		data := pterm.TableData{{"ID", "ROLE", "MEANING"}}
		for _, ri := range infos {
			data = append(data, []string{fmt.Sprint(ri.ID), ri.Name, ri.Description})
		}
		var out string
		out, err = pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err == nil {
			_, err = fmt.Fprintln(w, out)
		}
	case FormatText:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "ID\tROLE\tMEANING\n")
		for _, ri := range infos {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", ri.ID, ri.Name, ri.Description)
		}
		err = tw.Flush()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(roleList{Roles: infos})
	case FormatYAML:
		err = yaml.NewEncoder(w).Encode(roleList{Roles: infos})
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(roleList{Roles: infos})
	default:
		return errors.Newf(errors.ErrRender, "no renderer for format %s", f)
	}

	if err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to render %s output", f)
	}
	return nil
}
