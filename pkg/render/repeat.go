package render

import (
	"regexp"
	"strings"

	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/logging"
	"github.com/jonas-elhs/metemplate/pkg/types"
)

// Pool names accepted by repeat markers
const (
	// PoolValues iterates the merged value table
	PoolValues = "values"
	// PoolVars iterates the raw vars table of the selected value set
	PoolVars = "vars"
)

// repeatValuesName labels the per-entry table in missing key errors
const repeatValuesName = "key,value"

var (
	repeatRegex    = regexp.MustCompile(`^<\{\s*repeat\s+([^\s]+)\s*\}>$`)
	endRepeatRegex = regexp.MustCompile(`^<\{\s*endrepeat\s*\}>$`)
)

// Pools maps repeat pool names to the table each one iterates
type Pools map[string]types.Values

// NewPools builds the standard pool set from the merged values and the raw vars
func NewPools(values, vars types.Values) Pools {
	return Pools{
		PoolValues: values,
		PoolVars:   vars,
	}
}

// ExpandRepeats expands every repeat block of text. The document is rescanned
// after each block until no opening marker is left. Blocks must not nest.
func ExpandRepeats(text string, pools Pools, templateName string) (string, error) {
	logger := logging.GetLogger("render.repeat")

	lines, trailingNewline := splitLines(text)
	blocks := 0

	for {
		start := findRepeat(lines)
		if start < 0 {
			break
		}

		expanded, err := expandBlock(lines, start, pools, templateName)
		if err != nil {
			return "", err
		}
		lines = expanded
		blocks++
	}

	logger.Trace().
		Str("template", templateName).
		Int("blocks", blocks).
		Msg("expanded repeat blocks")

	return joinLines(lines, trailingNewline), nil
}

// expandBlock replaces the block opened at line index start
func expandBlock(lines []string, start int, pools Pools, templateName string) ([]string, error) {
	poolName := repeatRegex.FindStringSubmatch(matchable(lines[start]))[1]

	pool, ok := pools[poolName]
	if !ok {
		return nil, errors.Newf(errors.ErrRender,
			"unknown repeat pool '%s' in line '%d' in template '%s'", poolName, start+1, templateName).
			WithDetail("template", templateName).
			WithDetail("line", start+1)
	}

	end := -1
	for i := start + 1; i < len(lines); i++ {
		line := matchable(lines[i])
		if repeatRegex.MatchString(line) {
			return nil, errors.Newf(errors.ErrRender,
				"repeat statement inside repeat statement not allowed. First in line '%d', second in line '%d' in template '%s'",
				start+1, i+1, templateName).
				WithDetail("template", templateName).
				WithDetail("line", start+1).
				WithDetail("nested_line", i+1)
		}
		if endRepeatRegex.MatchString(line) {
			end = i
			break
		}
	}

	if end < 0 {
		return nil, errors.Newf(errors.ErrRender,
			"no endrepeat statement found after repeat statement in line '%d' in template '%s'", start+1, templateName).
			WithDetail("template", templateName).
			WithDetail("line", start+1)
	}

	var inserted []string
	if end > start+1 {
		body := strings.Join(lines[start+1:end], "\n")
		for _, key := range pool.SortedKeys() {
			entry := types.Values{"key": key, "value": pool[key]}
			rendered, err := Fill(body, entry, repeatValuesName)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrRender,
					"failed to render repeat block in line '%d' in template '%s'", start+1, templateName).
					WithDetail("template", templateName)
			}
			inserted = append(inserted, strings.Split(rendered, "\n")...)
		}
	}

	result := make([]string, 0, len(lines)-(end-start+1)+len(inserted))
	result = append(result, lines[:start]...)
	result = append(result, inserted...)
	result = append(result, lines[end+1:]...)
	return result, nil
}

// findRepeat returns the index of the first opening marker, or -1
func findRepeat(lines []string) int {
	for i, line := range lines {
		if repeatRegex.MatchString(matchable(line)) {
			return i
		}
	}
	return -1
}

// matchable strips a carriage return left over from CRLF input
func matchable(line string) string {
	return strings.TrimSuffix(line, "\r")
}

// splitLines splits text on newlines and reports whether text ended in one
func splitLines(text string) ([]string, bool) {
	if text == "" {
		return nil, false
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		return lines[:len(lines)-1], true
	}
	return lines, false
}

func joinLines(lines []string, trailingNewline bool) string {
	if len(lines) == 0 {
		return ""
	}
	joined := strings.Join(lines, "\n")
	if trailingNewline {
		joined += "\n"
	}
	return joined
}
