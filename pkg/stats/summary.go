package stats

import (
	"errors"

	mstats "github.com/montanaflynn/stats"
)

// Summary describes the distribution of a batch of scores.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P10    float64 `json:"p10"`
	P90    float64 `json:"p90"`
}

// Summarize computes a Summary over scores.
func Summarize(scores []float64) (Summary, error) {
	if len(scores) == 0 {
		return Summary{}, errors.New("no scores to summarize")
	}
	data := mstats.Float64Data(scores)
	var (
		s   = Summary{Count: len(scores)}
		err error
	)
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, err
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return Summary{}, err
	}
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, err
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, err
	}
	if s.P10, err = data.Percentile(10); err != nil {
		return Summary{}, err
	}
	if s.P90, err = data.Percentile(90); err != nil {
		return Summary{}, err
	}
	return s, nil
}
