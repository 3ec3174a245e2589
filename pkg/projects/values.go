package projects

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// VarsKey is the table of raw variables inside a values file
const VarsKey = "vars"

// ValueSetName derives the value set name from a values file path
func ValueSetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseValueSet decodes a values file. path selects the format by extension
// and appears in error messages.
//
// Top-level scalars are the values. If a vars table is present each value
// names a var and is replaced by it.
func ParseValueSet(path string, data []byte) (types.ValueSet, error) {
	raw := map[string]interface{}{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return types.ValueSet{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse values file at path '%s'", path)
		}
	default:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return types.ValueSet{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse values file at path '%s'", path)
		}
	}

	vs := types.ValueSet{
		Name:   ValueSetName(path),
		Values: types.Values{},
	}

	rawVars, hasVars := raw[VarsKey]
	if hasVars {
		table, ok := toTable(rawVars)
		if !ok {
			return types.ValueSet{}, errors.Newf(errors.ErrConfigParse, "'%s' must be a table in values file at path '%s'", VarsKey, path)
		}
		vars, err := scalars(table, path)
		if err != nil {
			return types.ValueSet{}, err
		}
		vs.Vars = vars
		delete(raw, VarsKey)
	}

	values, err := scalars(raw, path)
	if err != nil {
		return types.ValueSet{}, err
	}

	if !hasVars {
		vs.Values = values
		return vs, nil
	}

	for key, ref := range values {
		resolved, ok := vs.Vars[ref]
		if !ok {
			return types.ValueSet{}, errors.Newf(errors.ErrConfigParse, "data '%s' not defined in values file at path '%s'", ref, path).
				WithDetail("key", key)
		}
		vs.Values[key] = resolved
	}

	return vs, nil
}

func scalars(table map[string]interface{}, path string) (types.Values, error) {
	out := make(types.Values, len(table))
	for key, value := range table {
		s, ok := scalarString(value)
		if !ok {
			return nil, errors.Newf(errors.ErrConfigParse, "value '%s' in values file at path '%s' is not a scalar", key, path)
		}
		out[key] = s
	}
	return out, nil
}

func scalarString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", true
	case string:
		return val, true
	case map[string]interface{}, map[interface{}]interface{}, []interface{}:
		return "", false
	default:
		return fmt.Sprint(val), true
	}
}

// toTable accepts both the TOML and the YAML decoding of a table
func toTable(v interface{}) (map[string]interface{}, bool) {
	switch t := v.(type) {
	case map[string]interface{}:
		return t, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
