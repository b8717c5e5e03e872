package engine

import "testing"

// testTable builds a small dataset shared by the filter and aggregation
// tests:
//
//	row  year  seniority  contract  size  salary  role            remote  residence
//	0    2021  Senior     FT        M     100     Data Scientist  Remote  USA
//	1    2021  Junior     FT        S     300     Data Scientist  Onsite  DEU
//	2    2022  Senior     PT        M     200     Data Analyst    Remote  USA
//	3    2022  Senior     FT        L     400     Data Engineer   Hybrid  FRA
func testTable() *Table {
	b := NewTableBuilder()
	b.Append(2021, 100, "Senior", "FT", "M", "Data Scientist", "Remote", "USA")
	b.Append(2021, 300, "Junior", "FT", "S", "Data Scientist", "Onsite", "DEU")
	b.Append(2022, 200, "Senior", "PT", "M", "Data Analyst", "Remote", "USA")
	b.Append(2022, 400, "Senior", "FT", "L", "Data Engineer", "Hybrid", "FRA")
	return b.Build()
}

func TestFilterConjunction(t *testing.T) {
	table := testTable()

	v := Filter(table, Selection{
		DimYear:      {"2021", "2022"},
		DimSeniority: {"Senior"},
		DimContract:  {"FT"},
	})

	// Rows 0 and 3: Senior AND FT
	if v.Len() != 2 {
		t.Fatalf("Expected 2 rows, got %d", v.Len())
	}
	if v.Salary(0) != 100 || v.Salary(1) != 400 {
		t.Errorf("Expected salaries [100 400] in input order, got [%v %v]", v.Salary(0), v.Salary(1))
	}
}

func TestFilterAbsentDimensionUnconstrained(t *testing.T) {
	table := testTable()

	v := Filter(table, Selection{DimCompanySize: {"M"}})
	if v.Len() != 2 {
		t.Errorf("Expected 2 rows for size M, got %d", v.Len())
	}
}

func TestFilterEmptySetMatchesNothing(t *testing.T) {
	table := testTable()

	// Present-but-empty is the cleared multiselect: zero rows pass
	v := Filter(table, Selection{DimSeniority: {}})
	if v.Len() != 0 {
		t.Errorf("Expected 0 rows for empty seniority set, got %d", v.Len())
	}
}

func TestFilterFullSelectionIsIdentity(t *testing.T) {
	table := testTable()

	v := Filter(table, Selection{
		DimYear:        {"2021", "2022"},
		DimSeniority:   {"Senior", "Junior"},
		DimContract:    {"FT", "PT"},
		DimCompanySize: {"S", "M", "L"},
	})
	if v.Len() != table.Len() {
		t.Fatalf("Full selection should return all %d rows, got %d", table.Len(), v.Len())
	}
	for i := 0; i < v.Len(); i++ {
		if v.Salary(i) != table.Salaries[i] {
			t.Fatalf("Row %d out of order after full-selection filter", i)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	table := testTable()
	sel := Selection{DimSeniority: {"Senior"}}

	once := Filter(table, sel)
	twice := Filter(table, sel)

	if once.Len() != twice.Len() {
		t.Fatalf("Filter not repeatable: %d vs %d rows", once.Len(), twice.Len())
	}
	for i := 0; i < once.Len(); i++ {
		if once.Salary(i) != twice.Salary(i) {
			t.Fatalf("Row %d differs between identical filter calls", i)
		}
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	table := testTable()
	before := table.Len()

	Filter(table, Selection{DimSeniority: {"Junior"}})
	Filter(table, Selection{DimSeniority: {}})

	if table.Len() != before {
		t.Errorf("Source table mutated: %d rows before, %d after", before, table.Len())
	}
	if table.Salaries[0] != 100 {
		t.Errorf("Source salary mutated")
	}
}

func TestFilterUnknownValue(t *testing.T) {
	table := testTable()

	v := Filter(table, Selection{DimSeniority: {"Principal"}})
	if v.Len() != 0 {
		t.Errorf("Expected 0 rows for never-observed value, got %d", v.Len())
	}
}
