// Package figure builds chart descriptions for the dashboard graph and
// renders them to SVG.
package figure

import "fmt"

// Axis carries an axis title
type Axis struct {
	Title string `json:"title"`
}

// Bin is one histogram bucket covering [Lower, Upper)
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Summary holds descriptive statistics of the plotted values
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Figure is a renderable histogram description
type Figure struct {
	Type    string  `json:"type"`
	Column  string  `json:"column"`
	Title   string  `json:"title"`
	XAxis   Axis    `json:"x_axis"`
	YAxis   Axis    `json:"y_axis"`
	Bins    []Bin   `json:"bins"`
	Summary Summary `json:"summary"`
}

// HistogramTitle is the fixed title template of a column histogram
func HistogramTitle(column string) string {
	return fmt.Sprintf("Histogram of %s", column)
}

// TotalCount sums the bin counts
func (f *Figure) TotalCount() int {
	total := 0
	for _, b := range f.Bins {
		total += b.Count
	}
	return total
}

// MaxCount returns the largest bin count
func (f *Figure) MaxCount() int {
	max := 0
	for _, b := range f.Bins {
		if b.Count > max {
			max = b.Count
		}
	}
	return max
}
