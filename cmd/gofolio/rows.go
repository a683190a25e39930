package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/pattern"
)

var (
	rowCount int
	rowMark  bool
)

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "Print generated background rows",
	Long:  "Generate background rows with the configured seed and print them, one per line.",
	Args:  cobra.NoArgs,
	RunE:  runRows,
}

func init() {
	rowsCmd.Flags().IntVarP(&rowCount, "count", "n", 0, "number of rows (default: background.rows)")
	rowsCmd.Flags().BoolVar(&rowMark, "mark", false, "bracket the embedded words")
	rootCmd.AddCommand(rowsCmd)
}

func runRows(cmd *cobra.Command, args []string) error {
	cfg, c, err := scene.Load(flags)
	if err != nil {
		return err
	}
	if rowCount > 0 {
		cfg.Background.Rows = rowCount
	}
	layer := scene.Background(cfg, c)
	for _, t := range layer.Tracks {
		printRow(cmd.OutOrStdout(), t.Row, rowMark)
	}
	return nil
}

func printRow(w io.Writer, row pattern.Row, mark bool) {
	if !mark {
		fmt.Fprintln(w, row.String())
		return
	}
	var b strings.Builder
	for _, run := range row.Runs() {
		if run.Highlight {
			b.WriteString("[" + run.Text + "]")
		} else {
			b.WriteString(run.Text)
		}
	}
	fmt.Fprintln(w, b.String())
}
