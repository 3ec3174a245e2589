// Package render turns template contents into final text.
//
// Two passes run over a template. ExpandRepeats replaces every repeat block
//
//	<{ repeat values }>
//	{{key}} = {{value}}
//	<{ endrepeat }>
//
// with one copy of its body per entry of the chosen pool. Fill then replaces
// the remaining {{ key }} placeholders from the merged value table. A
// placeholder may start with dashes: {{-name}} drops the first rune of the
// value, {{--name}} the first two, and so on.
//
// Placeholders whose inner text contains whitespace, such as {{ not a key }},
// are not placeholders and pass through untouched.
package render
