package tabular

import (
	"math"
	"strconv"
	"strings"

	"diamonddash/domain/dataset"
)

// missingTokens are cell values treated as absent, in addition to "".
var missingTokens = map[string]bool{
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
}

// IsMissing reports whether a raw cell carries no value
func IsMissing(cell string) bool {
	cell = strings.TrimSpace(cell)
	return cell == "" || missingTokens[strings.ToLower(cell)]
}

// InferColumn decides the column type. A column is numeric when it has at
// least one value and every non-missing cell parses as a float; otherwise it
// is categorical.
func InferColumn(name string, cells []string) dataset.Column {
	values := make([]float64, len(cells))
	present := 0

	for i, cell := range cells {
		if IsMissing(cell) {
			values[i] = math.NaN()
			continue
		}
		v, ok := parseNumeric(cell)
		if !ok {
			return dataset.NewCategoricalColumn(name, cells)
		}
		values[i] = v
		present++
	}

	if present == 0 {
		return dataset.NewCategoricalColumn(name, cells)
	}
	return dataset.NewNumericColumn(name, cells, values)
}

func parseNumeric(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
