package engine

import (
	"math"
	"sort"
)

// percentile computes the p-th linear-interpolation percentile of vals.
// Sorts its argument in place; callers pass copies.
func percentile(vals []float64, p float64) float64 {
	sort.Float64s(vals)
	n := len(vals)
	if n == 1 {
		return vals[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return vals[n-1]
	}
	frac := h - float64(lo)
	return vals[lo] + frac*(vals[lo+1]-vals[lo])
}

// TrimToPercentile returns the rows whose salary is at or below the
// p-th percentile of the view, p in (0, 1]. Visualization shaping only:
// KPI scalars are always computed on the untrimmed view.
//
// An empty view is returned unchanged — no percentile is computed on
// zero rows.
func TrimToPercentile(v *View, p float64) *View {
	if v.Len() == 0 {
		return v
	}
	limit := percentile(v.salaries(), p)

	rows := make([]int32, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if v.Salary(i) <= limit {
			rows = append(rows, v.rows[i])
		}
	}
	return &View{table: v.table, rows: rows}
}
