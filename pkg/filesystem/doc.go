// Package filesystem provides filesystem implementations for metemplate.
//
// This package contains implementations of the types.FS interface backed by
// afero: the OS filesystem for real runs and an in-memory filesystem for
// tests. AtomicWrite replaces a destination file in one rename so a reader
// never observes half-written template output.
package filesystem
