package adapter

import "slices"

// Dataset is an ordered, mutable sequence of item labels. Insertion order is
// significant and duplicates are allowed.
//
// A Dataset is shared by reference: an adapter holding a *Dataset observes
// mutations on its next read. Dataset does no locking of its own; hosts that
// mutate it from another goroutine must synchronize with the render loop.
type Dataset struct {
	items []string
}

// NewDataset returns a Dataset holding the given items in order.
func NewDataset(items ...string) *Dataset {
	return &Dataset{items: slices.Clone(items)}
}

// Len returns the number of items. A nil Dataset is empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// At returns the item at index i. It panics if i is out of range, like a slice
// index; callers bound i with Len first.
func (d *Dataset) At(i int) string {
	return d.items[i]
}

// Append adds items to the end of the dataset.
func (d *Dataset) Append(items ...string) {
	d.items = append(d.items, items...)
}

// Insert places item at index i, shifting later items back by one.
// i may equal Len to append.
func (d *Dataset) Insert(i int, item string) error {
	if i < 0 || i > d.Len() {
		return &PositionOutOfRangeError{Position: i, Count: d.Len() + 1}
	}
	d.items = slices.Insert(d.items, i, item)
	return nil
}

// Set replaces the item at index i.
func (d *Dataset) Set(i int, item string) error {
	if i < 0 || i >= d.Len() {
		return &PositionOutOfRangeError{Position: i, Count: d.Len()}
	}
	d.items[i] = item
	return nil
}

// Remove deletes the item at index i.
func (d *Dataset) Remove(i int) error {
	if i < 0 || i >= d.Len() {
		return &PositionOutOfRangeError{Position: i, Count: d.Len()}
	}
	d.items = slices.Delete(d.items, i, i+1)
	return nil
}

// Items returns a copy of the items.
func (d *Dataset) Items() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.items)
}
