package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/intersections/internal/adapter"
)

// defaultBufferSize is the number of extra rows kept bound above/below the viewport.
const defaultBufferSize = 5

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// unbound marks a pool slot that holds no position.
const unbound = -1

// RowView is a pooled row the viewport can render.
type RowView interface {
	adapter.Row
	View(selected bool) string
}

// Stats reports pool activity.
type Stats struct {
	// PoolSize is the number of rows currently pooled.
	PoolSize int
	// RowsCreated counts CreateRow calls over the model's lifetime.
	RowsCreated int
	// Binds counts successful BindRow calls over the model's lifetime.
	Binds int
}

type slot[R RowView] struct {
	row      R
	position int
}

type options struct {
	bufferSize int
	vimKeys    bool
	logger     zerolog.Logger
}

// Option configures a Model.
type Option func(*options)

// WithBufferSize sets how many rows above and below the viewport stay bound.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.bufferSize = n
		}
	}
}

// WithVimKeys enables j/k navigation.
func WithVimKeys(enabled bool) Option {
	return func(o *options) { o.vimKeys = enabled }
}

// WithLogger sets the logger used for bind failures and pool changes.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Model is a virtual scrolling viewport over an adapter.Source.
type Model[R RowView] struct {
	source adapter.Source[R]

	// pool holds the recycled rows; slot i shows a position p with p%len(pool) == i.
	pool []slot[R]

	// selected is the currently selected item index (0-based)
	selected int

	// visibleFrom is the first visible item index
	visibleFrom int

	// visibleTo is the last visible item index (exclusive)
	visibleTo int

	height int
	width  int

	opts options

	rowsCreated int
	binds       int
	err         error
}

// New creates a viewport of the given size over source.
func New[R RowView](source adapter.Source[R], height, width int, opts ...Option) *Model[R] {
	o := options{
		bufferSize: defaultBufferSize,
		vimKeys:    true,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Model[R]{
		source: source,
		height: max(height, 0),
		width:  max(width, 0),
		opts:   o,
	}
	m.updateVisibleRange()
	return m
}

// Width implements adapter.Container.
func (m *Model[R]) Width() int {
	return m.width
}

// Init initializes the model (required for tea.Model interface).
func (m *Model[R]) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *Model[R]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg), nil
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// SetSize resizes the viewport; the pool grows or shrinks to match.
func (m *Model[R]) SetSize(width, height int) {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.updateVisibleRange()
}

// handleKeyMsg processes keyboard input for navigation.
//
//nolint:gocognit,exhaustive // Key handling inherently requires multiple branches for different navigation keys.
func (m *Model[R]) handleKeyMsg(msg tea.KeyMsg) tea.Model {
	count := m.source.ItemCount()
	if count == 0 {
		return m
	}

	switch msg.Type {
	case tea.KeyUp:
		m.moveTo(m.selected - 1)
	case tea.KeyDown:
		m.moveTo(m.selected + 1)
	case tea.KeyPgUp:
		m.moveTo(m.selected - max(m.height, 1))
	case tea.KeyPgDown:
		m.moveTo(m.selected + max(m.height, 1))
	case tea.KeyHome:
		m.moveTo(0)
	case tea.KeyEnd:
		m.moveTo(count - 1)
	case tea.KeyRunes:
		if !m.opts.vimKeys || len(msg.Runes) == 0 {
			break
		}
		switch msg.Runes[0] {
		case 'j':
			m.moveTo(m.selected + 1)
		case 'k':
			m.moveTo(m.selected - 1)
		case 'g':
			m.moveTo(0)
		case 'G':
			m.moveTo(count - 1)
		}
	default:
		// Ignore other key types (Ctrl combinations, function keys, etc.)
	}

	return m
}

// moveTo selects index clamped to the valid range.
func (m *Model[R]) moveTo(index int) {
	m.selected = clamp(index, m.source.ItemCount())
	m.updateVisibleRange()
}

// updateVisibleRange recomputes the visible window around the selection and
// binds any rows that moved into it.
func (m *Model[R]) updateVisibleRange() {
	count := m.source.ItemCount()
	m.selected = clamp(m.selected, count)

	if count == 0 || m.height == 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		m.syncPool(count)
		return
	}

	// Start by centering the selected item.
	from := m.selected - m.height/halfViewportDivisor
	to := from + m.height

	// Adjust if we're near the start.
	if from < 0 {
		from = 0
		to = m.height
	}

	// Adjust if we're near the end.
	if to > count {
		to = count
		from = max(to-m.height, 0)
	}

	m.visibleFrom = from
	m.visibleTo = to
	m.syncPool(count)
}

// renderRange is the visible window widened by the buffer.
func (m *Model[R]) renderRange(count int) (int, int) {
	if m.visibleTo <= m.visibleFrom {
		return 0, 0
	}
	return max(m.visibleFrom-m.opts.bufferSize, 0), min(m.visibleTo+m.opts.bufferSize, count)
}

// poolTarget is the number of rows needed to cover any render range.
func (m *Model[R]) poolTarget(count int) int {
	if m.height == 0 {
		return 0
	}
	return min(m.height+2*m.opts.bufferSize, count)
}

// syncPool resizes the pool to its target and binds every position in the
// render range whose slot holds a different position.
func (m *Model[R]) syncPool(count int) {
	target := m.poolTarget(count)
	if target != len(m.pool) {
		m.resizePool(target)
	}
	if len(m.pool) == 0 {
		return
	}

	from, to := m.renderRange(count)
	for p := from; p < to; p++ {
		s := &m.pool[p%len(m.pool)]
		if s.position == p {
			continue
		}
		if err := m.source.BindRow(s.row, p); err != nil {
			s.position = unbound
			m.err = err
			m.opts.logger.Error().
				Err(err).
				Int("position", p).
				Int("item_count", count).
				Msg("bind failed")
			continue
		}
		s.position = p
		m.binds++
	}
}

// resizePool grows the pool with freshly created rows or discards the surplus.
// Slot assignment depends on the pool length, so every slot is rebound.
func (m *Model[R]) resizePool(target int) {
	prev := len(m.pool)
	if target < prev {
		clear(m.pool[target:])
		m.pool = m.pool[:target]
	}
	for len(m.pool) < target {
		m.pool = append(m.pool, slot[R]{row: m.source.CreateRow(m), position: unbound})
		m.rowsCreated++
	}
	for i := range m.pool {
		m.pool[i].position = unbound
	}

	m.opts.logger.Debug().
		Int("from", prev).
		Int("to", target).
		Msg("row pool resized")
}

// Invalidate marks every pooled row as unbound and rebinds the window. Call it
// after replacing or editing the dataset behind the source.
func (m *Model[R]) Invalidate() {
	for i := range m.pool {
		m.pool[i].position = unbound
	}
	m.err = nil
	m.updateVisibleRange()
}

// View renders the visible rows.
func (m *Model[R]) View() string {
	if len(m.pool) == 0 || m.visibleTo <= m.visibleFrom {
		return ""
	}

	var sb strings.Builder
	for p := m.visibleFrom; p < m.visibleTo; p++ {
		s := m.pool[p%len(m.pool)]
		if s.position != p {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.row.View(p == m.selected))
	}
	return sb.String()
}

// ItemCount returns the total number of items in the source.
func (m *Model[R]) ItemCount() int {
	return m.source.ItemCount()
}

// Selected returns the currently selected item index.
func (m *Model[R]) Selected() int {
	return m.selected
}

// SetSelected sets the selected item index, capping to valid bounds.
func (m *Model[R]) SetSelected(index int) {
	m.moveTo(index)
}

// VisibleFrom returns the first visible item index (inclusive).
func (m *Model[R]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible item index (exclusive).
func (m *Model[R]) VisibleTo() int {
	return m.visibleTo
}

// Height returns the viewport height.
func (m *Model[R]) Height() int {
	return m.height
}

// Stats returns pool counters.
func (m *Model[R]) Stats() Stats {
	return Stats{
		PoolSize:    len(m.pool),
		RowsCreated: m.rowsCreated,
		Binds:       m.binds,
	}
}

// Err returns the last bind error since the previous Invalidate, if any.
func (m *Model[R]) Err() error {
	return m.err
}

// clamp bounds index to [0, count-1], or 0 when count is 0.
func clamp(index, count int) int {
	if count == 0 || index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}

var _ adapter.Container = (*Model[RowView])(nil)
