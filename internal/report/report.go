package report

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
)

// Summary — описательная статистика по набору оценок корня
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize считает статистику; пустой набор — ошибка
func Summarize(xs []float64) (Summary, error) {
	data := stats.Float64Data(xs)

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, err
	}
	stddev, err := stats.StandardDeviation(data)
	if err != nil {
		return Summary{}, err
	}
	lo, err := stats.Min(data)
	if err != nil {
		return Summary{}, err
	}
	hi, err := stats.Max(data)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Count:  len(xs),
		Mean:   mean,
		Median: median,
		StdDev: stddev,
		Min:    lo,
		Max:    hi,
	}, nil
}

// Print выводит сводку в человекочитаемом виде
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "count:  %d\n", s.Count)
	fmt.Fprintf(w, "mean:   %.16g\n", s.Mean)
	fmt.Fprintf(w, "median: %.16g\n", s.Median)
	fmt.Fprintf(w, "stddev: %.6g\n", s.StdDev)
	fmt.Fprintf(w, "min:    %.16g\n", s.Min)
	fmt.Fprintf(w, "max:    %.16g\n", s.Max)
}
