package adapter

import (
	"strconv"
	"sync/atomic"
)

// indexSuffix follows the 1-based position in every index label.
const indexSuffix = "."

// ListAdapter exposes a Dataset to a virtualizing Viewport.
//
// The only state is the Dataset reference. Replacing it is a single atomic
// swap and every call reads it fresh; nothing is cached per row or position.
type ListAdapter[R Row] struct {
	factory RowFactory[R]
	dataset atomic.Pointer[Dataset]
}

// New returns a ListAdapter over dataset that builds rows with factory.
// A nil dataset behaves as an empty one.
func New[R Row](factory RowFactory[R], dataset *Dataset) *ListAdapter[R] {
	a := &ListAdapter[R]{factory: factory}
	a.dataset.Store(dataset)
	return a
}

// NewLabelAdapter returns a ListAdapter producing *LabelRow rows.
func NewLabelAdapter(dataset *Dataset) *ListAdapter[*LabelRow] {
	return New(NewLabelRowFactory(), dataset)
}

// SetDataset replaces the dataset. Subsequent ItemCount and BindRow calls see
// the new dataset immediately; rows bound earlier keep their labels until the
// Viewport binds them again.
func (a *ListAdapter[R]) SetDataset(dataset *Dataset) {
	a.dataset.Store(dataset)
}

// Dataset returns the current dataset reference, which may be nil.
func (a *ListAdapter[R]) Dataset() *Dataset {
	return a.dataset.Load()
}

// ItemCount returns the current dataset length.
func (a *ListAdapter[R]) ItemCount() int {
	return a.dataset.Load().Len()
}

// CreateRow builds one empty row for c. It does not read the dataset.
func (a *ListAdapter[R]) CreateRow(c Container) R {
	return a.factory.CreateRow(c)
}

// BindRow writes the labels for position into row. The row is left untouched
// and a *PositionOutOfRangeError is returned when position is outside
// [0, ItemCount()).
func (a *ListAdapter[R]) BindRow(row R, position int) error {
	ds := a.dataset.Load()
	if position < 0 || position >= ds.Len() {
		return &PositionOutOfRangeError{Position: position, Count: ds.Len()}
	}
	row.SetIndexLabel(IndexLabel(position))
	row.SetItemLabel(ds.At(position))
	return nil
}

// IndexLabel returns the label shown for a zero-based position, e.g. "1." for 0.
func IndexLabel(position int) string {
	return strconv.Itoa(position+1) + indexSuffix
}

var _ Source[*LabelRow] = (*ListAdapter[*LabelRow])(nil)
