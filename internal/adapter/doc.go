// Package adapter binds an ordered list of string items to a bounded pool of
// reusable display rows.
//
// A Viewport (any host that virtualizes a scrolling list) talks to the adapter
// through three calls:
//   - ItemCount sizes the scrollable region
//   - CreateRow builds a fresh, unbound row when the Viewport's pool runs dry
//   - BindRow writes the labels for one position into a pooled row
//
// The adapter keeps no per-row or per-position state. Every bind recomputes the
// labels from the current Dataset, so replacing or mutating the Dataset never
// leaves stale cached state behind; the Viewport decides when visible rows are
// bound again.
package adapter
