// Package analysis computes descriptive summaries over module tables
// for the dashboard's overview endpoints.
package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"painel/domain/schema"
	"painel/domain/table"
)

// ColumnSummary holds descriptive statistics for one numeric column.
type ColumnSummary struct {
	Column string  `json:"column"`
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// YearPoint is the yearly total of the module's primary metric.
type YearPoint struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// Summary is the per-module overview served alongside the raw table.
type Summary struct {
	Module     string          `json:"module"`
	RowCount   int             `json:"row_count"`
	Years      []YearPoint     `json:"years"`
	TrendSlope float64         `json:"trend_slope"`
	Columns    []ColumnSummary `json:"columns"`
}

// Summarize computes the overview for a module table. The yearly
// series totals the first numeric required column, the one the
// dashboard charts by default.
func Summarize(module string, tbl *table.Table, desc schema.Descriptor) Summary {
	s := Summary{
		Module:   module,
		RowCount: tbl.Len(),
	}

	metric := primaryMetric(desc)
	if metric != "" {
		s.Years = yearlyTotals(tbl, metric)
		s.TrendSlope = trendSlope(s.Years)
	}

	for _, col := range desc.Required {
		if col.Type != schema.TypeInteger && col.Type != schema.TypeDecimal {
			continue
		}
		if col.Name == "ano" {
			continue
		}
		vals := tbl.ColumnFloats(col.Name)
		if len(vals) == 0 {
			continue
		}
		s.Columns = append(s.Columns, summarizeColumn(col.Name, vals))
	}

	return s
}

// primaryMetric returns the first numeric required column after the
// year column.
func primaryMetric(desc schema.Descriptor) string {
	for _, col := range desc.Required {
		if col.Name == "ano" {
			continue
		}
		if col.Type == schema.TypeInteger || col.Type == schema.TypeDecimal {
			return col.Name
		}
	}
	return ""
}

func yearlyTotals(tbl *table.Table, metric string) []YearPoint {
	totals := make(map[int]float64)
	for _, row := range tbl.Rows {
		yv, ok := row["ano"]
		if !ok || yv.Missing {
			continue
		}
		mv, ok := row[metric]
		if !ok || mv.Missing || !mv.IsNumeric() {
			continue
		}
		totals[int(yv.Float64())] += mv.Float64()
	}

	years := make([]int, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	sort.Ints(years)

	points := make([]YearPoint, 0, len(years))
	for _, y := range years {
		points = append(points, YearPoint{Year: y, Total: totals[y]})
	}
	return points
}

// trendSlope fits an ordinary least squares line over the yearly
// series. A positive slope means the metric is growing.
func trendSlope(points []YearPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.Year)
		ys[i] = p.Total
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope
}

func summarizeColumn(name string, vals []float64) ColumnSummary {
	sum, _ := stats.Sum(vals)
	mean, _ := stats.Mean(vals)
	median, _ := stats.Median(vals)
	min, _ := stats.Min(vals)
	max, _ := stats.Max(vals)
	return ColumnSummary{
		Column: name,
		Sum:    sum,
		Mean:   mean,
		Median: median,
		Min:    min,
		Max:    max,
	}
}
