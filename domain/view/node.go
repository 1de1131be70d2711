package view

// Kind tags a node in the declarative UI tree
type Kind string

const (
	KindDiv       Kind = "div"
	KindH1        Kind = "h1"
	KindH2        Kind = "h2"
	KindMarkdown  Kind = "markdown"
	KindTabs      Kind = "tabs"
	KindTab       Kind = "tab"
	KindDataTable Kind = "data_table"
	KindDropdown  Kind = "dropdown"
	KindGraph     Kind = "graph"
)

// Option is one selectable entry of a dropdown
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TableColumn describes a data table column
type TableColumn struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Node is a serializable UI descriptor. Only the fields relevant to Kind are
// set; the rest stay zero and are omitted from JSON.
type Node struct {
	Kind     Kind              `json:"kind"`
	ID       string            `json:"id,omitempty"`
	Text     string            `json:"text,omitempty"`
	HTML     string            `json:"html,omitempty"`
	Label    string            `json:"label,omitempty"`
	Value    string            `json:"value,omitempty"`
	Hidden   bool              `json:"hidden,omitempty"`
	Options  []Option          `json:"options,omitempty"`
	Columns  []TableColumn     `json:"columns,omitempty"`
	Rows     [][]string        `json:"rows,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Children []Node            `json:"children,omitempty"`
}

// Div groups children under an optional id
func Div(id string, children ...Node) Node {
	return Node{Kind: KindDiv, ID: id, Children: children}
}

// H1 is a top-level header
func H1(text string) Node {
	return Node{Kind: KindH1, Text: text}
}

// H2 is a section header
func H2(text string) Node {
	return Node{Kind: KindH2, Text: text}
}

// Markdown carries source text together with its rendered HTML
func Markdown(text, html string) Node {
	return Node{Kind: KindMarkdown, Text: text, HTML: html}
}

// Tabs is a tab selector with the given selected value
func Tabs(id, value string, tabs ...Node) Node {
	return Node{Kind: KindTabs, ID: id, Value: value, Children: tabs}
}

// Tab is one option of a Tabs node
func Tab(label, value string) Node {
	return Node{Kind: KindTab, Label: label, Value: value}
}

// DataTable shows rows under the given columns
func DataTable(id string, columns []TableColumn, rows [][]string) Node {
	return Node{Kind: KindDataTable, ID: id, Columns: columns, Rows: rows}
}

// Dropdown is a single-select input
func Dropdown(id string, options []Option, value string) Node {
	return Node{Kind: KindDropdown, ID: id, Options: options, Value: value}
}

// Graph is a placeholder filled with a figure by a callback
func Graph(id string) Node {
	return Node{Kind: KindGraph, ID: id}
}

// Hide marks the node hidden
func (n Node) Hide() Node {
	n.Hidden = true
	n.Style = map[string]string{"display": "none"}
	return n
}

// Find returns the first node in depth-first order with the given id
func (n Node) Find(id string) (Node, bool) {
	if n.ID == id {
		return n, true
	}
	for _, child := range n.Children {
		if found, ok := child.Find(id); ok {
			return found, true
		}
	}
	return Node{}, false
}

// FindKind returns every node of the given kind in depth-first order
func (n Node) FindKind(kind Kind) []Node {
	var out []Node
	if n.Kind == kind {
		out = append(out, n)
	}
	for _, child := range n.Children {
		out = append(out, child.FindKind(kind)...)
	}
	return out
}

// WithChildren returns a copy of the tree in which the node with the given id
// has its children replaced. Nodes off the path to id are shared, not copied.
// ok is false when no node carries the id.
func (n Node) WithChildren(id string, children ...Node) (Node, bool) {
	if n.ID == id {
		n.Children = children
		return n, true
	}
	for i, child := range n.Children {
		replaced, ok := child.WithChildren(id, children...)
		if !ok {
			continue
		}
		copied := make([]Node, len(n.Children))
		copy(copied, n.Children)
		copied[i] = replaced
		n.Children = copied
		return n, true
	}
	return n, false
}
