package dashboard

import (
	"fmt"

	"diamonddash/domain/view"
	"diamonddash/internal/errors"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Section headers of the tab fragments
const (
	HeaderTable         = "Data Table"
	HeaderDescription   = "Variable Descriptions"
	HeaderVisualization = "Column Graph"
)

const descriptionText = "This dataset contains information about diamonds, including variables such as carat, cut, color, clarity, and price."

// RenderContent maps the selected tab onto its content fragment
func (d *Dashboard) RenderContent(tab Tab) (view.Node, error) {
	switch tab {
	case TabTable:
		return d.tableFragment(), nil
	case TabDescription:
		return view.Div("", view.H2(HeaderDescription), d.description), nil
	case TabVisualization:
		return view.Div(IDVisualizationContent,
			view.H2(HeaderVisualization),
			d.columnDropdown(),
			view.Graph(IDColumnGraph),
		), nil
	default:
		return view.Node{}, errors.InvalidInput(fmt.Sprintf("unknown tab %s", tab))
	}
}

func (d *Dashboard) tableFragment() view.Node {
	names := d.table.ColumnNames()
	columns := make([]view.TableColumn, len(names))
	for i, name := range names {
		columns[i] = view.TableColumn{Name: name, ID: name}
	}

	return view.Div("",
		view.H2(HeaderTable),
		view.DataTable(IDDataTable, columns, d.table.Head(d.opts.TablePageSize)),
	)
}

// renderDescription turns the Markdown description into HTML. Raw HTML in the
// source is dropped.
func renderDescription(source string) (view.Node, error) {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})

	out := markdown.ToHTML([]byte(source), p, renderer)
	if len(out) == 0 {
		return view.Node{}, errors.InternalError("description rendered empty")
	}
	return view.Markdown(source, string(out)), nil
}
