package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/rshade/intersections/internal/adapter"
)

// OutputMode selects how the list is presented.
type OutputMode int

const (
	// OutputModePlain prints unstyled "<index> <item>" lines.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints every row once with lipgloss styling.
	OutputModeStyled
	// OutputModeInteractive runs the scrolling Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// defaultStaticWidth is used for styled output when the terminal size is unknown.
const defaultStaticWidth = 80

// DetectOutputMode picks the output mode for stdout.
// forcePlain and static come from CLI flags.
func DetectOutputMode(forcePlain, static bool) OutputMode {
	_, ci := os.LookupEnv("CI")
	return resolveOutputMode(forcePlain, static, ci, term.IsTerminal(int(os.Stdout.Fd())))
}

func resolveOutputMode(forcePlain, static, ci, tty bool) OutputMode {
	switch {
	case forcePlain || !tty:
		return OutputModePlain
	case static || ci:
		return OutputModeStyled
	default:
		return OutputModeInteractive
	}
}

// TerminalWidth returns the width of stdout, or a default when unknown.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultStaticWidth
	}
	return width
}

// RenderPlain writes one "<index> <item>" line per position, recycling a
// single row for the whole dataset.
func RenderPlain(w io.Writer, src adapter.ListSource[*adapter.LabelRow]) error {
	return RenderPlainRange(w, src, 0, src.ItemCount())
}

// RenderPlainRange is RenderPlain limited to positions [from, to).
func RenderPlainRange(w io.Writer, src adapter.ListSource[*adapter.LabelRow], from, to int) error {
	row := &adapter.LabelRow{}
	for p := from; p < to; p++ {
		if err := src.BindRow(row, p); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", row.IndexLabel, row.ItemLabel); err != nil {
			return err
		}
	}
	return nil
}

// RenderStyled writes every row styled for the given width, recycling a
// single row created by the source.
func RenderStyled(w io.Writer, src adapter.Source[*ItemRow], width int) error {
	return RenderStyledRange(w, src, width, 0, src.ItemCount())
}

// RenderStyledRange is RenderStyled limited to positions [from, to).
func RenderStyledRange(w io.Writer, src adapter.Source[*ItemRow], width, from, to int) error {
	row := src.CreateRow(fixedWidth(width))
	for p := from; p < to; p++ {
		if err := src.BindRow(row, p); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, row.View(false)); err != nil {
			return err
		}
	}
	return nil
}
