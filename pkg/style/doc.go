// Package style renders metemplate's human-facing output.
//
// Two renderers share one interface: TerminalRenderer colors output with
// lipgloss for interactive terminals, PlainRenderer writes the same layout
// without escape codes. DetectFormat picks one for a given output file.
package style
