// Package pagination selects a window of list positions for non-interactive
// output.
//
// Two mutually exclusive modes are supported:
//   - Offset-based: --limit and --offset
//   - Page-based: --page and --page-size
//
// The window is expressed as a half-open position range so renderers can bind
// only the rows that will be printed.
package pagination
