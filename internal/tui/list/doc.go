// Package list provides a virtual scrolling viewport for Bubble Tea
// applications backed by an adapter.Source.
//
// The viewport never holds one row per item. It keeps a pool sized to the
// visible window plus a small buffer, asks the source to create rows only when
// the pool is too small, and binds a pooled row only when the position it
// shows changes. Key features:
//   - Row recycling with O(viewport_height) rows regardless of item count
//   - Keyboard navigation (up/down, pgup/pgdn, home/end, optional j/k)
//   - Explicit Invalidate after the host replaces or edits the dataset
package list
