package style

import (
	"fmt"
	"strings"

	"github.com/jonas-elhs/metemplate/pkg/types"
)

// Tree branches used by project listings
const (
	BranchMiddle = "├─"
	BranchLast   = "└─"
)

// Renderer defines the interface for rendering metemplate output
type Renderer interface {
	// RenderProjectList renders project names, each followed by a tree of
	// its value sets when showValues is set
	RenderProjectList(projects []types.Project, showValues bool) string
	// RenderGenerated renders the notification for one finished template
	RenderGenerated(templateName string, dryRun bool) string
	RenderError(err error) string
}

// NewRenderer returns the renderer for a concrete format. FormatAuto and
// FormatText both give the plain renderer.
func NewRenderer(format Format) Renderer {
	if format == FormatTerminal {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// GeneratedMessage is the plain notification for one template
func GeneratedMessage(templateName string, dryRun bool) string {
	if dryRun {
		return fmt.Sprintf("Would generate template '%s'", templateName)
	}
	return fmt.Sprintf("Generated template '%s'", templateName)
}

// projectList lays out the listing; the decorate funcs style its parts
func projectList(projects []types.Project, showValues bool, project, branch, valueSet func(string) string) string {
	var result strings.Builder

	for i, p := range projects {
		if showValues && i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(project(p.Name) + "\n")

		if !showValues {
			continue
		}

		names := p.ValueSetNames()
		for j, name := range names {
			prefix := BranchMiddle
			if j == len(names)-1 {
				prefix = BranchLast
			}
			result.WriteString(fmt.Sprintf("  %s %s\n", branch(prefix), valueSet(name)))
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderProjectList implements Renderer
func (r *TerminalRenderer) RenderProjectList(projects []types.Project, showValues bool) string {
	return projectList(projects, showValues, ProjectStyle.Render, TreeStyle.Render, ValueSetStyle.Render)
}

// RenderGenerated implements Renderer
func (r *TerminalRenderer) RenderGenerated(templateName string, dryRun bool) string {
	if dryRun {
		return fmt.Sprintf("%s template '%s'", WarningStyle.Render("Would generate"), TemplateStyle.Render(templateName))
	}
	return fmt.Sprintf("%s template '%s'", SuccessStyle.Render("Generated"), TemplateStyle.Render(templateName))
}

// RenderError implements Renderer
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", ErrorStyle.Render("Error:"), err.Error())
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

func identity(s string) string { return s }

// RenderProjectList implements Renderer
func (r *PlainRenderer) RenderProjectList(projects []types.Project, showValues bool) string {
	return projectList(projects, showValues, identity, identity, identity)
}

// RenderGenerated implements Renderer
func (r *PlainRenderer) RenderGenerated(templateName string, dryRun bool) string {
	return GeneratedMessage(templateName, dryRun)
}

// RenderError implements Renderer
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}
