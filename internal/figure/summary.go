package figure

import (
	"math"

	"diamonddash/internal/errors"

	"github.com/montanaflynn/stats"
)

// Summarize computes the descriptive statistics shown under a histogram
func Summarize(data []float64) (Summary, error) {
	summary := Summary{Count: len(data)}

	mean, err := stats.Mean(data)
	if err != nil {
		return summary, errors.Wrap(err, "failed to compute mean")
	}

	median, err := stats.Median(data)
	if err != nil {
		return summary, errors.Wrap(err, "failed to compute median")
	}

	// sample deviation is undefined (NaN) below two points
	stdDev := 0.0
	if len(data) > 1 {
		stdDev, err = stats.StandardDeviationSample(data)
		if err != nil {
			return summary, errors.Wrap(err, "failed to compute standard deviation")
		}
	}

	min, err := stats.Min(data)
	if err != nil {
		return summary, errors.Wrap(err, "failed to compute min")
	}

	max, err := stats.Max(data)
	if err != nil {
		return summary, errors.Wrap(err, "failed to compute max")
	}

	for _, v := range []float64{mean, median, stdDev, min, max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return summary, errors.DataInvalid("summary statistics overflow float64")
		}
	}

	summary.Mean = mean
	summary.Median = median
	summary.StdDev = stdDev
	summary.Min = min
	summary.Max = max

	return summary, nil
}
