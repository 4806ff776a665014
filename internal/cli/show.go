package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/intersections/internal/adapter"
	"github.com/rshade/intersections/internal/cli/pagination"
	"github.com/rshade/intersections/internal/config"
	"github.com/rshade/intersections/internal/tui"
)

// showOptions holds the flags of the show command.
type showOptions struct {
	plain  bool
	static bool
	page   pagination.Params
}

// NewShowCmd creates the show command, which displays a dataset in the
// interactive viewport or as plain lines.
func NewShowCmd() *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show [files...]",
		Short: "Show intersections in a scrollable list",
		Long: `Shows every item of one or more dataset files with its 1-based index.

Files ending in .yaml/.yml hold a list of strings (or an "items:" list),
.json files hold an array of strings, anything else holds one item per line.
Use "-" to read lines from stdin. Without files the dataset.path setting is
used, and without that a built-in sample list.

On a terminal an interactive list is started. Pagination flags apply to
non-interactive output only and imply --static when stdout is a terminal.`,
		Example: `  # Browse the sample list
  intersections show

  # Print a file as plain lines
  intersections show streets.txt --plain

  # Print styled rows without the interactive viewport
  intersections show streets.yaml --static

  # Print the third page of 20 rows
  intersections show streets.json --page 3 --page-size 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.plain, "plain", false, `print plain "<index> <item>" lines`)
	cmd.Flags().BoolVar(&opts.static, "static", false, "print styled rows instead of starting the interactive list")
	opts.page.AddFlags(cmd.Flags())

	return cmd
}

func runShow(cmd *cobra.Command, args []string, opts showOptions) error {
	if err := opts.page.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	paths := datasetPaths(args)
	ds, err := loadDataset(ctx, paths)
	if err != nil {
		return err
	}

	mode := tui.DetectOutputMode(opts.plain, opts.static)
	if mode == tui.OutputModeInteractive && opts.page.IsActive() {
		mode = tui.OutputModeStyled
	}

	logger.Debug().Ctx(ctx).
		Str("output_mode", mode.String()).
		Int("item_count", ds.Len()).
		Msg("rendering dataset")

	switch mode {
	case tui.OutputModeInteractive:
		return runInteractiveList(ctx, ds, paths)
	case tui.OutputModeStyled:
		src := adapter.New(tui.NewItemRowFactory(), ds)
		from, to := opts.page.Window(src.ItemCount())
		if err = tui.RenderStyledRange(cmd.OutOrStdout(), src, tui.TerminalWidth(), from, to); err != nil {
			return err
		}
	default:
		src := adapter.NewLabelAdapter(ds)
		from, to := opts.page.Window(src.ItemCount())
		if err = tui.RenderPlainRange(cmd.OutOrStdout(), src, from, to); err != nil {
			return err
		}
	}

	if opts.page.IsActive() {
		printPageSummary(cmd.ErrOrStderr(), pagination.NewMeta(opts.page, ds.Len()))
	}
	return nil
}

// runInteractiveList runs the full-screen list until the user quits.
func runInteractiveList(ctx context.Context, ds *adapter.Dataset, paths []string) error {
	ctx = quietTerminalLogs(ctx)
	listCfg := config.GetListConfig()

	src := adapter.New(tui.NewItemRowFactory(), ds)
	model := tui.NewAppModel(ctx, src, tui.AppConfig{
		Title:      listCfg.Title,
		BufferSize: listCfg.BufferSize,
		VimKeys:    listCfg.VimKeys,
		Reload: func(ctx context.Context) (*adapter.Dataset, error) {
			return loadDataset(ctx, paths)
		},
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive list: %w", err)
	}
	return nil
}

func printPageSummary(w io.Writer, meta pagination.Meta) {
	if meta.From >= meta.To {
		_, _ = fmt.Fprintf(w, "No rows in range (%d items)\n", meta.TotalItems)
		return
	}
	_, _ = fmt.Fprintf(w, "Showing %d-%d of %d (page %d of %d)\n",
		meta.From+1, meta.To, meta.TotalItems, meta.CurrentPage, meta.TotalPages)
}
