// Package testutil builds config roots and projects for tests.
//
// Most tests use NewMemoryRoot, which lays out projects on an in-memory
// afero filesystem. Tests that exercise the real OS filesystem use
// NewTempRoot instead.
package testutil
