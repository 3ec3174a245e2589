package topics

import "strings"

// Renderer formats topic content for the help command
type Renderer interface {
	// Render receives the raw topic text and its file extension, such as
	// ".md", and returns the text to print
	Render(content string, format string) string
}

var (
	_ Renderer = (*PlainRenderer)(nil)
	_ Renderer = (*GlamourRenderer)(nil)
)

// PlainRenderer prints topics verbatim, ending them with a newline so the
// shell prompt starts on its own line
type PlainRenderer struct{}

// Render returns content with exactly one trailing newline
func (r *PlainRenderer) Render(content string, format string) string {
	if content == "" {
		return ""
	}
	return strings.TrimRight(content, "\n") + "\n"
}
