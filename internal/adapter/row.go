package adapter

// Row is a reusable display row with two writable label slots. The adapter
// writes both slots on every bind and never reads them back.
type Row interface {
	SetIndexLabel(label string)
	SetItemLabel(label string)
}

// LabelRow is the minimal Row: two plain string fields and no presentation.
type LabelRow struct {
	IndexLabel string
	ItemLabel  string
}

// SetIndexLabel implements Row.
func (r *LabelRow) SetIndexLabel(label string) { r.IndexLabel = label }

// SetItemLabel implements Row.
func (r *LabelRow) SetItemLabel(label string) { r.ItemLabel = label }

// Container is the layout context a RowFactory builds rows against.
type Container interface {
	// Width returns the number of columns available to a row.
	Width() int
}

// RowFactory constructs empty, unbound rows.
type RowFactory[R Row] interface {
	CreateRow(c Container) R
}

// RowFactoryFunc adapts a function to RowFactory.
type RowFactoryFunc[R Row] func(c Container) R

// CreateRow calls f(c).
func (f RowFactoryFunc[R]) CreateRow(c Container) R {
	return f(c)
}

// ListSource is the read side of the adapter a Viewport queries while
// rendering.
type ListSource[R Row] interface {
	ItemCount() int
	BindRow(row R, position int) error
}

// Source is everything a virtualizing Viewport needs from its adapter.
type Source[R Row] interface {
	ListSource[R]
	RowFactory[R]
}

// NewLabelRowFactory returns a factory producing empty *LabelRow values.
func NewLabelRowFactory() RowFactory[*LabelRow] {
	return RowFactoryFunc[*LabelRow](func(Container) *LabelRow {
		return &LabelRow{}
	})
}
