// Package fragments provides template name constants for the dashboard views
package fragments

// Template names defined by the files in this directory and the page template
const (
	// Page template
	Index = "index.html"

	// UI node tree
	Node      = "node"
	Tabs      = "tabs"
	DataTable = "data_table"
	Dropdown  = "dropdown"

	// Callback outputs
	Graph = "graph"
	Error = "error"
)

// GetAllTemplateNames returns every template the server expects to find
func GetAllTemplateNames() []string {
	return []string{
		Index,
		Node,
		Tabs,
		DataTable,
		Dropdown,
		Graph,
		Error,
	}
}
