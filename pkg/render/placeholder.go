package render

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/types"
)

var placeholderRegex = regexp.MustCompile(`\{\{\s*([^\s]+)\s*\}\}`)

// Resolve substitutes every placeholder in text from values. Unknown keys
// render as the empty string and are returned in missing, deduplicated and
// in order of first appearance.
func Resolve(text string, values types.Values) (rendered string, missing []string) {
	seen := make(map[string]bool)

	rendered = placeholderRegex.ReplaceAllStringFunc(text, func(match string) string {
		token := placeholderRegex.FindStringSubmatch(match)[1]

		key := strings.TrimLeft(token, "-")
		dashes := len(token) - len(key)

		value, ok := values[key]
		if !ok {
			if !seen[key] {
				seen[key] = true
				missing = append(missing, key)
			}
			return ""
		}

		return trimRunes(value, dashes)
	})

	return rendered, missing
}

// Fill resolves text against values and fails with a single RENDER error
// naming every missing key. valuesName identifies the table in the message.
func Fill(text string, values types.Values, valuesName string) (string, error) {
	rendered, missing := Resolve(text, values)
	if len(missing) > 0 {
		return "", errors.Newf(errors.ErrRender,
			"could not find keys in values '%s': %s", valuesName, strings.Join(missing, ", ")).
			WithDetail("values", valuesName).
			WithDetail("missing", missing)
	}
	return rendered, nil
}

// Placeholders returns the distinct lookup keys referenced by text, in order
// of first appearance.
func Placeholders(text string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, m := range placeholderRegex.FindAllStringSubmatch(text, -1) {
		key := strings.TrimLeft(m[1], "-")
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

// trimRunes drops the first n runes of s
func trimRunes(s string, n int) string {
	for i := 0; i < n; i++ {
		if s == "" {
			return ""
		}
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return s
}
