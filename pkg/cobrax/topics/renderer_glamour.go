package topics

import (
	"github.com/charmbracelet/glamour"
)

// Glamour style names understood by GlamourRenderer
const (
	StyleAuto  = "auto"
	StyleNoTTY = "notty"
)

// GlamourRenderer renders markdown topics with glamour
type GlamourRenderer struct {
	Style string // "auto", a standard style name such as "dark" or "notty", or a path to a style file
	Width int    // Word wrap width (0 = glamour default)
}

// NewGlamourRenderer creates a markdown renderer. Interactive terminals get
// the auto-detected style, anything else the escape-free notty style.
func NewGlamourRenderer(interactive bool) *GlamourRenderer {
	style := StyleAuto
	if !interactive {
		style = StyleNoTTY
	}
	return &GlamourRenderer{Style: style}
}

// Render converts markdown to terminal output. Other formats and rendering
// failures return content unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", StyleAuto:
		options = append(options, glamour.WithAutoStyle())
	case StyleNoTTY, "dark", "light", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
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
