package engine

import "strconv"

// Selection maps a dimension name to its accepted values.
//
// A dimension absent from the map is unconstrained. A dimension present
// with an empty slice matches nothing — the frontend distinguishes
// "cleared filter" from "no filter" by defaulting every multiselect to
// the full set of observed values.
//
// Year values are decimal strings ("2023") so all dimensions share one
// representation; non-numeric year values simply never match.
type Selection map[string][]string

// Filter returns the order-preserving subset of rows whose value for
// every selected dimension is in that dimension's accepted set.
//
// Pure function of (table, selection): identical arguments yield equal
// views, so callers may memoize. Categorical membership is tested by
// dictionary id through a per-column allow table instead of per-row
// map probing.
func Filter(t *Table, sel Selection) *View {
	if len(sel) == 0 {
		return t.All()
	}

	type colTest struct {
		ids   []int32
		allow []bool
		empty bool
	}
	var tests []colTest

	var yearAllow map[int32]bool
	yearConstrained := false

	for dim, vals := range sel {
		if dim == DimYear {
			yearConstrained = true
			yearAllow = make(map[int32]bool, len(vals))
			for _, v := range vals {
				if y, err := strconv.Atoi(v); err == nil {
					yearAllow[int32(y)] = true
				}
			}
			continue
		}
		col := t.categorical(dim)
		if col == nil {
			continue // unknown dimension: unconstrained
		}
		test := colTest{ids: col.ids, allow: make([]bool, len(col.dict)), empty: len(vals) == 0}
		for _, v := range vals {
			if id, ok := col.lookup(v); ok {
				test.allow[id] = true
			}
		}
		tests = append(tests, test)
	}

	rows := make([]int32, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if yearConstrained && !yearAllow[t.Years[i]] {
			continue
		}
		pass := true
		for _, test := range tests {
			if test.empty || !test.allow[test.ids[i]] {
				pass = false
				break
			}
		}
		if pass {
			rows = append(rows, int32(i))
		}
	}
	return &View{table: t, rows: rows}
}
