package types

import (
	"fmt"
	"strings"
)

// TemplateMode decides how rendered content is combined with an existing
// destination file.
type TemplateMode int

const (
	// ModeReplace overwrites the destination with the rendered content
	ModeReplace TemplateMode = iota
	// ModeAppend places the rendered block after the retained file content
	ModeAppend
	// ModePrepend places the rendered block before the retained file content
	ModePrepend
)

// String returns the config spelling of the mode
func (m TemplateMode) String() string {
	switch m {
	case ModeReplace:
		return "replace"
	case ModeAppend:
		return "append"
	case ModePrepend:
		return "prepend"
	default:
		return "unknown"
	}
}

// ParseTemplateMode parses a config string into a TemplateMode.
// The empty string selects ModeReplace.
func ParseTemplateMode(s string) (TemplateMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replace":
		return ModeReplace, nil
	case "append":
		return ModeAppend, nil
	case "prepend":
		return ModePrepend, nil
	default:
		return ModeReplace, fmt.Errorf("unknown template mode: %s", s)
	}
}
