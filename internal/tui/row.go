package tui

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/rshade/intersections/internal/adapter"
)

// Row layout: cursor, space, index column, space, item label.
const (
	indexColumnWidth = 6
	cursorWidth      = 2
	rowGutter        = 1
)

// ItemRow is the pooled display row of the interactive list. It reads its
// width from the container it was created for, so resizes need no rebuild.
type ItemRow struct {
	adapter.LabelRow

	container adapter.Container
}

// View renders the row, truncating the item label to the container width.
func (r *ItemRow) View(selected bool) string {
	cursor := strings.Repeat(" ", cursorWidth)
	itemStyle := ItemStyle
	if selected {
		cursor = IconCursor + " "
		itemStyle = SelectedStyle
	}

	// Index labels wider than the column push the item right instead of wrapping.
	index := fmt.Sprintf("%*s", indexColumnWidth, r.IndexLabel)
	avail := r.container.Width() - cursorWidth - uniseg.StringWidth(index) - rowGutter
	label := Truncate(r.ItemLabel, max(avail, 0))

	return cursor + IndexStyle.Render(index) + strings.Repeat(" ", rowGutter) + itemStyle.Render(label)
}

// NewItemRowFactory returns the factory the interactive list builds rows with.
func NewItemRowFactory() adapter.RowFactory[*ItemRow] {
	return adapter.RowFactoryFunc[*ItemRow](func(c adapter.Container) *ItemRow {
		return &ItemRow{container: c}
	})
}

// Truncate shortens s to at most width terminal cells, ending with an ellipsis
// when anything was cut. Grapheme clusters are never split.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	limit := width - uniseg.StringWidth(IconEllipsis)
	var sb strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := uniseg.StringWidth(cluster)
		if used+w > limit {
			break
		}
		sb.WriteString(cluster)
		used += w
	}
	sb.WriteString(IconEllipsis)
	return sb.String()
}

// fixedWidth is a Container with a constant width, used outside the viewport.
type fixedWidth int

func (w fixedWidth) Width() int { return int(w) }
