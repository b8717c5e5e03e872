package engine

import (
	"sort"

	"salarydash/internal/models"
)

// Summarize computes the headline KPIs on the salary column plus the
// most frequent role. An empty view yields zeros and "-" for the role,
// never an error.
func Summarize(v *View) models.Summary {
	n := v.Len()
	if n == 0 {
		return models.Summary{TopRole: "-"}
	}

	roles := v.table.role
	counts := make([]int, len(roles.dict))
	firstSeen := make([]int, len(roles.dict))
	for i := range firstSeen {
		firstSeen[i] = -1
	}

	var sum, max float64
	for i := 0; i < n; i++ {
		s := v.Salary(i)
		sum += s
		if i == 0 || s > max {
			max = s
		}
		id := roles.ids[v.rows[i]]
		if firstSeen[id] == -1 {
			firstSeen[id] = i
		}
		counts[id]++
	}

	top := int32(-1)
	for id, c := range counts {
		if c == 0 {
			continue
		}
		if top == -1 || c > counts[top] || (c == counts[top] && firstSeen[id] < firstSeen[top]) {
			top = int32(id)
		}
	}

	return models.Summary{
		MeanSalary:   sum / float64(n),
		MedianSalary: median(v.salaries()),
		MaxSalary:    max,
		Records:      n,
		TopRole:      roles.dict[top],
	}
}

// GroupMean computes the mean salary per distinct value of a categorical
// dimension, in encounter order.
func GroupMean(v *View, dim string) []models.GroupStat {
	col := v.table.categorical(dim)
	if col == nil || v.Len() == 0 {
		return nil
	}

	sums := make([]float64, len(col.dict))
	counts := make([]int, len(col.dict))
	var order []int32

	for i := 0; i < v.Len(); i++ {
		id := col.ids[v.rows[i]]
		if counts[id] == 0 {
			order = append(order, id)
		}
		sums[id] += v.Salary(i)
		counts[id]++
	}

	out := make([]models.GroupStat, 0, len(order))
	for _, id := range order {
		out = append(out, models.GroupStat{
			Group: col.dict[id],
			Mean:  sums[id] / float64(counts[id]),
			Count: counts[id],
		})
	}
	return out
}

// GroupMeanMedian computes mean and median salary per distinct value of
// a categorical dimension, in encounter order.
func GroupMeanMedian(v *View, dim string) []models.GroupMeanMedian {
	col := v.table.categorical(dim)
	if col == nil || v.Len() == 0 {
		return nil
	}

	salaries := make([][]float64, len(col.dict))
	var order []int32

	for i := 0; i < v.Len(); i++ {
		id := col.ids[v.rows[i]]
		if len(salaries[id]) == 0 {
			order = append(order, id)
		}
		salaries[id] = append(salaries[id], v.Salary(i))
	}

	out := make([]models.GroupMeanMedian, 0, len(order))
	for _, id := range order {
		out = append(out, models.GroupMeanMedian{
			Group:  col.dict[id],
			Mean:   mean(salaries[id]),
			Median: median(salaries[id]),
		})
	}
	return out
}

// GroupMeanByPair computes the mean salary per observed (dimA, dimB)
// pair, in encounter order. Pairs with no observations are absent, not
// zero-filled. Accumulation uses a flattened dict-id matrix instead of
// a composite-key map.
func GroupMeanByPair(v *View, dimA, dimB string) []models.PairStat {
	colA := v.table.categorical(dimA)
	colB := v.table.categorical(dimB)
	if colA == nil || colB == nil || v.Len() == 0 {
		return nil
	}

	width := len(colB.dict)
	sums := make([]float64, len(colA.dict)*width)
	counts := make([]int, len(sums))
	var order []int

	for i := 0; i < v.Len(); i++ {
		idx := int(colA.ids[v.rows[i]])*width + int(colB.ids[v.rows[i]])
		if counts[idx] == 0 {
			order = append(order, idx)
		}
		sums[idx] += v.Salary(i)
		counts[idx]++
	}

	out := make([]models.PairStat, 0, len(order))
	for _, idx := range order {
		out = append(out, models.PairStat{
			A:    colA.dict[idx/width],
			B:    colB.dict[idx%width],
			Mean: sums[idx] / float64(counts[idx]),
		})
	}
	return out
}

// MeanByYear computes the mean salary per year, ascending by year.
func MeanByYear(v *View) []models.YearStat {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for i := 0; i < v.Len(); i++ {
		y := v.Year(i)
		sums[y] += v.Salary(i)
		counts[y]++
	}

	years := make([]int, 0, len(sums))
	for y := range sums {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]models.YearStat, 0, len(years))
	for _, y := range years {
		out = append(out, models.YearStat{Year: y, Mean: sums[y] / float64(counts[y])})
	}
	return out
}

// TopN returns the n groups with the highest mean salary for a
// categorical dimension. The sort is stable: tied means keep encounter
// order. n larger than the number of groups returns all of them.
// ascending reorders the result low-to-high for horizontal bar charts.
func TopN(v *View, dim string, n int, ascending bool) []models.GroupStat {
	groups := GroupMean(v, dim)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Mean > groups[j].Mean })
	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}
	if ascending {
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Mean < groups[j].Mean })
	}
	return groups
}

// YearOverYearGrowth averages the consecutive-year percent changes of
// the yearly mean salary. Undefined with fewer than two distinct years.
func YearOverYearGrowth(v *View) models.Growth {
	yearly := MeanByYear(v)
	if len(yearly) < 2 {
		return models.Growth{}
	}

	var sum float64
	periods := 0
	for i := 1; i < len(yearly); i++ {
		prev := yearly[i-1].Mean
		if prev == 0 {
			continue // no defined change from a zero base
		}
		sum += (yearly[i].Mean - prev) / prev * 100
		periods++
	}
	if periods == 0 {
		return models.Growth{}
	}
	return models.Growth{Percent: sum / float64(periods), Defined: true}
}

// CompareGroups contrasts two values of one dimension: mean and median
// for each, plus the relative difference (meanA/meanB - 1) * 100.
// A zero base mean leaves the difference flagged undefined instead of
// propagating infinity.
func CompareGroups(v *View, dim, groupA, groupB string) models.Comparison {
	col := v.table.categorical(dim)
	out := models.Comparison{GroupA: groupA, GroupB: groupB}
	if col == nil {
		return out
	}

	var salariesA, salariesB []float64
	idA, okA := col.lookup(groupA)
	idB, okB := col.lookup(groupB)
	for i := 0; i < v.Len(); i++ {
		id := col.ids[v.rows[i]]
		if okA && id == idA {
			salariesA = append(salariesA, v.Salary(i))
		}
		if okB && id == idB {
			salariesB = append(salariesB, v.Salary(i))
		}
	}

	out.MeanA = mean(salariesA)
	out.MedianA = median(salariesA)
	out.MeanB = mean(salariesB)
	out.MedianB = median(salariesB)
	if out.MeanB != 0 {
		out.DiffPercent = (out.MeanA/out.MeanB - 1) * 100
		out.DiffDefined = true
	}
	return out
}

// CountByValue counts rows per distinct value of a categorical
// dimension, descending by count with encounter order breaking ties.
func CountByValue(v *View, dim string) []models.CountStat {
	col := v.table.categorical(dim)
	if col == nil || v.Len() == 0 {
		return nil
	}

	counts := make([]int, len(col.dict))
	var order []int32
	for i := 0; i < v.Len(); i++ {
		id := col.ids[v.rows[i]]
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	out := make([]models.CountStat, 0, len(order))
	for _, id := range order {
		out = append(out, models.CountStat{Value: col.dict[id], Count: counts[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// median sorts its argument in place; callers pass copies.
func median(vals []float64) float64 {
	n := len(vals)
	if n == 0 {
		return 0
	}
	sort.Float64s(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}
