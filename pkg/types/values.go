package types

import "sort"

// Values maps placeholder keys to their values. Wherever Values is iterated
// the order is ascending by key.
type Values map[string]string

// SortedKeys returns the keys in ascending order
func (v Values) SortedKeys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy. Cloning a nil Values yields an empty,
// writable map.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// ValueSet is a named value table of a project
type ValueSet struct {
	Name string
	// Values holds the resolved placeholder values
	Values Values
	// Vars holds the raw variable table of the values file, if any
	Vars Values
}

// Override is a caller supplied key/value pair that wins over the selected
// value set.
type Override struct {
	Key   string
	Value string
}

// ApplyOverrides returns a copy of base with every override applied in order
func ApplyOverrides(base Values, overrides []Override) Values {
	merged := base.Clone()
	for _, o := range overrides {
		merged[o.Key] = o.Value
	}
	return merged
}
