// Package dashboard holds the view logic of the diamond dashboard: the static
// layout, the tab-content callback and the column-histogram callback. Every
// output is a plain view.Node tree or figure.Figure, so the package knows
// nothing about HTTP or HTML.
package dashboard

import (
	"fmt"
	"strings"

	"diamonddash/domain/dataset"
	"diamonddash/domain/view"
	"diamonddash/internal/errors"
)

// Element ids shared between the layout and the callbacks
const (
	IDTabs                 = "tabs"
	IDContent              = "content"
	IDVisualizationContent = "visualization-content"
	IDColumnDropdown       = "column-dropdown"
	IDColumnGraph          = "column-graph"
	IDDataTable            = "data-table"
)

// Options tune the dashboard
type Options struct {
	Title         string
	DefaultColumn string
	TablePageSize int
}

// DefaultOptions mirrors the stock dashboard
func DefaultOptions() Options {
	return Options{
		Title:         "Diamond Data Dashboard",
		DefaultColumn: "carat",
		TablePageSize: 10,
	}
}

// Dashboard binds view logic to one immutable table. It is safe for
// concurrent use; nothing is mutated after New returns.
type Dashboard struct {
	table       *dataset.Table
	opts        Options
	layout      view.Node
	description view.Node
}

// New validates the options against the table and builds the layout once
func New(table *dataset.Table, opts Options) (*Dashboard, error) {
	if table == nil {
		return nil, errors.InternalError("dashboard needs a table")
	}
	if opts.Title == "" {
		opts.Title = DefaultOptions().Title
	}
	if opts.TablePageSize <= 0 {
		opts.TablePageSize = DefaultOptions().TablePageSize
	}
	if !table.HasNumericColumn(opts.DefaultColumn) {
		return nil, errors.ConfigInvalid(fmt.Sprintf(
			"default column %q is not a numeric column of %s (numeric columns: %s)",
			opts.DefaultColumn, table.Source(), strings.Join(table.NumericColumnNames(), ", ")))
	}

	description, err := renderDescription(descriptionText)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		table:       table,
		opts:        opts,
		description: description,
	}
	d.layout = d.buildLayout()
	return d, nil
}

// Table returns the underlying dataset
func (d *Dashboard) Table() *dataset.Table {
	return d.table
}

// Title returns the page header text
func (d *Dashboard) Title() string {
	return d.opts.Title
}

// DefaultColumn returns the column preselected in the dropdown
func (d *Dashboard) DefaultColumn() string {
	return d.opts.DefaultColumn
}

// Layout returns the page tree built at startup. Callers must treat it as
// read-only.
func (d *Dashboard) Layout() view.Node {
	return d.layout
}

// ColumnOptions lists the dropdown entries: every numeric column, in order
func (d *Dashboard) ColumnOptions() []view.Option {
	names := d.table.NumericColumnNames()
	options := make([]view.Option, len(names))
	for i, name := range names {
		options[i] = view.Option{Label: name, Value: name}
	}
	return options
}

func (d *Dashboard) buildLayout() view.Node {
	tabs := make([]view.Node, 0, len(AllTabs()))
	for _, t := range AllTabs() {
		tabs = append(tabs, view.Tab(t.Label(), t.String()))
	}

	return view.Div("",
		view.H1(d.opts.Title),
		view.Tabs(IDTabs, DefaultTab.String(), tabs...),
		view.Div(IDContent),
		view.Div(IDVisualizationContent,
			d.columnDropdown(),
			view.Graph(IDColumnGraph),
		).Hide(),
	)
}

func (d *Dashboard) columnDropdown() view.Node {
	return view.Dropdown(IDColumnDropdown, d.ColumnOptions(), d.opts.DefaultColumn)
}
