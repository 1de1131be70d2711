package figure

import (
	"fmt"
	"math"
	"sort"

	"diamonddash/internal/errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MaxBins caps the number of histogram buckets a caller may request
const MaxBins = 200

// SturgesBins returns ceil(log2(n)) + 1, the default bucket count
func SturgesBins(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// Histogram builds an equal-width histogram of values. bins <= 0 selects
// SturgesBins. The input slice is not modified.
func Histogram(column string, values []float64, bins int) (*Figure, error) {
	if len(values) == 0 {
		return nil, errors.DataInvalid(fmt.Sprintf("column %q has no values to plot", column))
	}
	if bins > MaxBins {
		return nil, errors.InvalidInput(fmt.Sprintf("bins must be between 1 and %d", MaxBins))
	}
	if bins <= 0 {
		bins = SturgesBins(len(values))
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		// constant column: one unit-wide bucket centred on the value
		lo, hi, bins = lo-0.5, hi+0.5, 1
	}

	if math.IsInf(hi-lo, 0) {
		return nil, errors.DataInvalid(fmt.Sprintf("column %q range overflows float64", column))
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram wants every x strictly below the last divider
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)

	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{
			Lower: dividers[i],
			Upper: dividers[i+1],
			Count: int(counts[i]),
		}
	}
	out[bins-1].Upper = hi

	summary, err := Summarize(sorted)
	if err != nil {
		return nil, err
	}

	return &Figure{
		Type:    "histogram",
		Column:  column,
		Title:   HistogramTitle(column),
		XAxis:   Axis{Title: column},
		YAxis:   Axis{Title: "count"},
		Bins:    out,
		Summary: summary,
	}, nil
}
