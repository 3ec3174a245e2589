// Package section combines freshly rendered template output with the current
// content of a destination file.
//
// In append and prepend mode a previously generated block is located by the
// rendered content's first and last line and cut out before the new content
// is placed after (append) or before (prepend) whatever remains. Running the
// same generation twice therefore leaves the file unchanged, and a run with
// different values swaps only the generated block.
package section

import (
	"strings"

	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/types"
)

// Synchronize returns the bytes to write for a destination whose current
// content is existing. A missing destination is passed as "".
func Synchronize(mode types.TemplateMode, existing, rendered, templateName string) (string, error) {
	switch mode {
	case types.ModeReplace:
		return rendered, nil
	case types.ModeAppend:
		remainder, err := Excise(existing, rendered, templateName)
		if err != nil {
			return "", err
		}
		return remainder + rendered, nil
	case types.ModePrepend:
		remainder, err := Excise(existing, rendered, templateName)
		if err != nil {
			return "", err
		}
		if remainder != "" && !strings.HasSuffix(rendered, "\n") {
			rendered += "\n"
		}
		return rendered + remainder, nil
	default:
		return "", errors.Newf(errors.ErrInternal, "unknown template mode %d for template '%s'", int(mode), templateName)
	}
}

// Excise removes every earlier copy of rendered from existing. A copy starts
// at a line equal to the first rendered line and runs through the next line
// equal to the last rendered line. Retained lines keep their order and each
// ends with a newline.
func Excise(existing, rendered, templateName string) (string, error) {
	first, last, err := Bounds(rendered, templateName)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	skipping := false

	for _, line := range lines(existing) {
		if !skipping && line == first {
			skipping = true
			continue
		}

		if skipping && line == last {
			skipping = false
			continue
		}

		if !skipping {
			result.WriteString(line)
			result.WriteByte('\n')
		}
	}

	return result.String(), nil
}

// Bounds returns the first and last line of rendered content. Content with
// fewer than two lines cannot delimit a block and is rejected.
func Bounds(rendered, templateName string) (first, last string, err error) {
	ls := lines(rendered)
	if len(ls) == 0 {
		return "", "", errors.Newf(errors.ErrRender, "template cannot be empty: %s", templateName).
			WithDetail("template", templateName)
	}
	if len(ls) == 1 {
		return "", "", errors.Newf(errors.ErrRender, "template has only one line: %s", templateName).
			WithDetail("template", templateName)
	}
	return ls[0], ls[len(ls)-1], nil
}

// lines splits text into lines. A final newline does not start another line
// and a carriage return before a newline is dropped.
func lines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}
