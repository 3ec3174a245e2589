// Package generate renders a project's templates with a selected value set
// and writes the results to their output paths.
//
// A run selects one value set (by name, at random, or none when only
// overrides are given), applies the overrides, and then handles each
// template in project order: repeat blocks are expanded, placeholders are
// filled, and every output path is synchronized and written atomically. The
// first failure stops the run; files written before it are kept.
package generate
