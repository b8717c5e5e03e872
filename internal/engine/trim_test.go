package engine

import "testing"

func trimTestTable() *Table {
	b := NewTableBuilder()
	for _, salary := range []float64{100, 200, 300, 400, 1000} {
		b.Append(2023, salary, "Senior", "FT", "M", "A", "Remote", "USA")
	}
	return b.Build()
}

func TestTrimToPercentile(t *testing.T) {
	v := trimTestTable().All()

	// n=5, p=0.75 -> h = 0.75*4 = 3 -> threshold 400, outlier 1000 dropped
	trimmed := TrimToPercentile(v, 0.75)
	if trimmed.Len() != 4 {
		t.Fatalf("Expected 4 rows after trim, got %d", trimmed.Len())
	}
	for i := 0; i < trimmed.Len(); i++ {
		if trimmed.Salary(i) > 400 {
			t.Errorf("Row above threshold survived: %f", trimmed.Salary(i))
		}
	}
}

func TestTrimInterpolation(t *testing.T) {
	b := NewTableBuilder()
	b.Append(2023, 100, "Senior", "FT", "M", "A", "Remote", "USA")
	b.Append(2023, 200, "Senior", "FT", "M", "A", "Remote", "USA")

	// h = 0.75*1 = 0.75 -> threshold 100 + 0.75*100 = 175
	trimmed := TrimToPercentile(b.Build().All(), 0.75)
	if trimmed.Len() != 1 || trimmed.Salary(0) != 100 {
		t.Errorf("Expected only the 100 row below interpolated threshold 175, got %d rows", trimmed.Len())
	}
}

func TestTrimFullPercentileKeepsEverything(t *testing.T) {
	v := trimTestTable().All()
	if trimmed := TrimToPercentile(v, 1); trimmed.Len() != v.Len() {
		t.Errorf("p=1 should keep all rows, got %d of %d", trimmed.Len(), v.Len())
	}
}

func TestTrimEmptyView(t *testing.T) {
	table := trimTestTable()
	empty := Filter(table, Selection{DimYear: {}})

	trimmed := TrimToPercentile(empty, 0.99)
	if trimmed.Len() != 0 {
		t.Errorf("Expected empty view back, got %d rows", trimmed.Len())
	}
}

func TestTrimDoesNotAffectKPIs(t *testing.T) {
	v := trimTestTable().All()

	before := Summarize(v)
	trimmed := TrimToPercentile(v, 0.75)
	after := Summarize(v)

	if before != after {
		t.Fatalf("Summary changed by trimming: %+v vs %+v", before, after)
	}
	// And the trimmed mean genuinely differs when outliers exist
	if Summarize(trimmed).MeanSalary == before.MeanSalary {
		t.Errorf("Trimmed mean should differ from untrimmed mean with an outlier present")
	}
}
