package display

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/arthur-debert/fieldptr/pkg/roles"
	"github.com/charmbracelet/glamour"
)

//go:embed embedded/roles.md
var rolesIntro string

// RoleReferenceMarkdown returns the role reference as markdown
func RoleReferenceMarkdown() string {
	var b strings.Builder
	b.WriteString(rolesIntro)
	b.WriteString("| ID | Role | Meaning |\n|---:|---|---|\n")
	for _, id := range roles.All() {
		fmt.Fprintf(&b, "| %d | `%s` | %s |\n", int(id), id, roles.Description(id))
	}
	return b.String()
}

// MarkdownRenderer renders markdown for the terminal with glamour
type MarkdownRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Terminal width (0 = glamour default)
}

// NewMarkdownRenderer creates a markdown renderer using glamour with auto-detection
func NewMarkdownRenderer(width int) *MarkdownRenderer {
	return &MarkdownRenderer{
		Style: "auto",
		Width: width,
	}
}

// Render converts markdown to styled terminal output, returning the
// markdown unchanged if glamour fails.
func (r *MarkdownRenderer) Render(content string) string {
	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}

// RenderRoleReference renders the role reference for a terminal of the
// given width
func RenderRoleReference(width int) string {
	return NewMarkdownRenderer(width).Render(RoleReferenceMarkdown())
}
