// Package types defines the core data structures shared by the loader, the
// rendering engine and the generation orchestrator: Project, Template,
// ValueSet, Override and the closed TemplateMode variant, plus the FS
// interface every component performs file I/O through.
package types
