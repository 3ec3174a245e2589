// Package config loads metemplate's own settings.
//
// Settings are layered with koanf: the embedded defaults come first, then an
// optional metemplate.toml in the config root, then METEMPLATE_* environment
// variables, then any overrides passed by the caller (the CLI flags). The
// first underscore after the prefix separates section and key, so
// METEMPLATE_OUTPUT_FILE_MODE sets output.file_mode.
//
// Project and value-set files are not settings; pkg/projects reads those.
package config
