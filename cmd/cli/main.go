package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"diamonddash/adapters/tabular"
	"diamonddash/internal/dashboard"
	"diamonddash/internal/figure"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataFile string
	var defaultColumn string

	rootCmd := &cobra.Command{
		Use:           "diamonddash-cli",
		Short:         "Inspect the dashboard dataset and callbacks without starting the server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "data/diamonds.csv", "CSV or XLSX dataset")
	rootCmd.PersistentFlags().StringVar(&defaultColumn, "default-column", "carat", "Column preselected in the dropdown")

	load := func() (*dashboard.Dashboard, error) {
		table, err := tabular.NewDataReader(dataFile).ReadTable()
		if err != nil {
			return nil, err
		}
		opts := dashboard.DefaultOptions()
		opts.DefaultColumn = defaultColumn
		return dashboard.New(table, opts)
	}

	rootCmd.AddCommand(
		newColumnsCmd(load),
		newHeadCmd(load),
		newContentCmd(load),
		newHistogramCmd(load),
	)
	return rootCmd
}

type loader func() (*dashboard.Dashboard, error)

func newColumnsCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List columns with their inferred types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := load()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE")
			for _, col := range dash.Table().Columns() {
				fmt.Fprintf(w, "%s\t%s\n", col.Name, col.Type)
			}
			return w.Flush()
		},
	}
}

func newHeadCmd(load loader) *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "head",
		Short: "Print the first rows of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := load()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, strings.Join(dash.Table().ColumnNames(), "\t"))
			for _, row := range dash.Table().Head(rows) {
				fmt.Fprintln(w, strings.Join(row, "\t"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 10, "Number of rows to print")
	return cmd
}

func newContentCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "content [tab]",
		Short: "Print the JSON fragment a tab renders (table, description, visualization)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := load()
			if err != nil {
				return err
			}

			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}
			tab, err := dashboard.ParseTab(raw)
			if err != nil {
				return err
			}
			fragment, err := dash.RenderContent(tab)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), fragment)
		},
	}
}

func newHistogramCmd(load loader) *cobra.Command {
	var bins int
	var svgOut string

	cmd := &cobra.Command{
		Use:   "histogram [column]",
		Short: "Print the histogram figure of a numeric column as JSON, or write it as SVG",
		Long: `Print the histogram figure of a numeric column.

Example: diamonddash-cli histogram price --bins 20 --svg price.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := load()
			if err != nil {
				return err
			}

			column := ""
			if len(args) == 1 {
				column = args[0]
			}
			fig, err := dash.Histogram(column, bins)
			if err != nil {
				return err
			}

			if svgOut == "" {
				return writeJSON(cmd.OutOrStdout(), fig)
			}

			if err := writeSVGFile(svgOut, fig); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s\n", fig.Title, svgOut)
			return nil
		},
	}

	cmd.Flags().IntVar(&bins, "bins", 0, "Number of bins (0 picks automatically)")
	cmd.Flags().StringVar(&svgOut, "svg", "", "Write an SVG chart to this path instead of printing JSON")
	return cmd
}

// writeSVGFile renders fig to path. A failed render or close removes the
// partial file.
func writeSVGFile(path string, fig *figure.Figure) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to write %s: %w", path, closeErr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return figure.RenderSVG(fig, f)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
