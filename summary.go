package wordusage

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds aggregate figures of a report
type Summary struct {
	TotalTokens   int
	DistinctWords int
	Common        int
	Singletons    int
	Unknown       int
	// MeanRelative and MaxRelative are relative frequency statistics of common words
	MeanRelative float64
	MaxRelative  float64
	// MedianRelative is the 0.5 quantile of relative frequencies of common words
	MedianRelative float64
}

// Summarize returns aggregate figures of report
func (r *Report) Summarize() Summary {
	s := Summary{
		TotalTokens:   r.TotalTokens,
		DistinctWords: r.Len(),
		Common:        len(r.Common),
		Singletons:    len(r.Singletons),
		Unknown:       len(r.Unknown),
	}
	if len(r.Common) == 0 {
		return s
	}
	// common words are sorted descending, quantiles need ascending
	values := make([]float64, len(r.Common))
	for i, e := range r.Common {
		values[len(values)-1-i] = e.RelativeFrequency
	}
	s.MeanRelative = stat.Mean(values, nil)
	s.MaxRelative = floats.Max(values)
	s.MedianRelative = stat.Quantile(0.5, stat.Empirical, values, nil)
	return s
}
