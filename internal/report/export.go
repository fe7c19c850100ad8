package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/guptarohit/asciigraph"

	"wildfire/internal/logistic"
)

// WriteSeriesCSV writes one row per recorded step: the step, the discrete
// burnt fraction and the logistic model at the same time.
func WriteSeriesCSV(w io.Writer, series []float64, m logistic.Model) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "burnt_fraction", "logistic"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, v := range series {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(v, 'f', -1, 64),
			strconv.FormatFloat(m.At(float64(i)), 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// PlotASCII draws the discrete series and the reference curve for a terminal.
func PlotASCII(series, reference []float64) string {
	if len(series) == 0 {
		return ""
	}
	data := [][]float64{series}
	if len(reference) > 0 {
		data = append(data, reference)
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.Caption("burnt fraction: automaton (red) vs logistic (blue)"),
	)
}
