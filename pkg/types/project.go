package types

import "sort"

// Template is one renderable unit bound to its output paths
type Template struct {
	Name     string
	Contents string
	// Out lists every destination; the same rendered content goes to each
	Out  []string
	Mode TemplateMode
}

// Project owns templates and value sets. Templates are kept in generation
// order.
type Project struct {
	Name      string
	Path      string
	Templates []Template
	ValueSets map[string]ValueSet
}

// ValueSetNames returns the value set names in ascending order
func (p Project) ValueSetNames() []string {
	names := make([]string, 0, len(p.ValueSets))
	for name := range p.ValueSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValueSet looks up a value set by name
func (p Project) ValueSet(name string) (ValueSet, bool) {
	vs, ok := p.ValueSets[name]
	return vs, ok
}

// Template looks up a template by name
func (p Project) Template(name string) (Template, bool) {
	for _, t := range p.Templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// Projects indexes loaded projects by name
type Projects map[string]Project

// Names returns the project names in ascending order
func (p Projects) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
