package dashboard

import (
	"fmt"
	"strings"

	"diamonddash/internal/errors"
)

// Tab identifies one of the three top-level views
type Tab int

const (
	TabTable Tab = iota
	TabDescription
	TabVisualization
)

// DefaultTab is selected when the client sends no tab value
const DefaultTab = TabTable

var tabValues = [...]string{
	TabTable:         "table",
	TabDescription:   "description",
	TabVisualization: "visualization",
}

var tabLabels = [...]string{
	TabTable:         "Table",
	TabDescription:   "Description",
	TabVisualization: "Visualization",
}

// AllTabs lists the tabs in display order
func AllTabs() []Tab {
	return []Tab{TabTable, TabDescription, TabVisualization}
}

// String returns the wire value of the tab
func (t Tab) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tab(%d)", int(t))
	}
	return tabValues[t]
}

// Label returns the human-readable tab caption
func (t Tab) Label() string {
	if !t.Valid() {
		return ""
	}
	return tabLabels[t]
}

// Valid reports whether t is one of the known tabs
func (t Tab) Valid() bool {
	return t >= TabTable && t <= TabVisualization
}

// ParseTab maps a wire value onto a Tab. The empty string selects DefaultTab.
func ParseTab(s string) (Tab, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTab, nil
	}
	for _, t := range AllTabs() {
		if tabValues[t] == s {
			return t, nil
		}
	}
	return 0, errors.InvalidInput(fmt.Sprintf("unknown tab %q", s))
}
