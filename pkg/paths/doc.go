// Package paths provides centralized path handling for metemplate.
//
// It locates the configuration root that holds every project and follows the
// XDG Base Directory specification for the defaults:
//
//   - METEMPLATE_CONFIG_DIR: overrides the config root
//     (default: $XDG_CONFIG_HOME/metemplate)
//   - XDG_STATE_HOME: location of the log file
//     (default: ~/.local/state/metemplate/metemplate.log)
//
// ExpandHome expands a leading ~ in user supplied paths such as template
// output destinations.
package paths
