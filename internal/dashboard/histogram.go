package dashboard

import (
	"fmt"
	"strings"

	"diamonddash/internal/errors"
	"diamonddash/internal/figure"
)

// Histogram builds the figure for the selected column. An empty name selects
// the default column; anything that is not a numeric column is rejected
// before any charting happens.
func (d *Dashboard) Histogram(column string, bins int) (*figure.Figure, error) {
	column = strings.TrimSpace(column)
	if column == "" {
		column = d.opts.DefaultColumn
	}
	if !d.table.HasNumericColumn(column) {
		return nil, errors.InvalidInput(fmt.Sprintf("unknown numeric column %q", column))
	}
	if bins < 0 || bins > figure.MaxBins {
		return nil, errors.InvalidInput(fmt.Sprintf("bins must be between 1 and %d", figure.MaxBins))
	}

	values, err := d.table.NumericValues(column)
	if err != nil {
		return nil, err
	}
	return figure.Histogram(column, values, bins)
}
