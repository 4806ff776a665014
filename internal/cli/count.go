package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/intersections/internal/adapter"
)

// NewCountCmd creates the count command, which prints the number of items a
// list over the given files would show.
func NewCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count [files...]",
		Short: "Print the number of intersections",
		Example: `  # Count the built-in sample
  intersections count

  # Count items across files
  intersections count north.txt south.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), datasetPaths(args))
			if err != nil {
				return err
			}
			src := adapter.NewLabelAdapter(ds)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), src.ItemCount())
			return err
		},
	}
}
