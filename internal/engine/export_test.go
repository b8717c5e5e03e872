package engine

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	table := testTable()
	v := Filter(table, Selection{DimSeniority: {"Junior"}})

	var buf strings.Builder
	if err := WriteCSV(v, EnglishSchema(), &buf); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	// Header + one Junior row
	if len(rows) != 2 {
		t.Fatalf("Expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "Year" || rows[0][4] != "Salary_In_Usd" {
		t.Errorf("Unexpected header: %v", rows[0])
	}
	if rows[1][0] != "2021" || rows[1][4] != "300" || rows[1][5] != "Data Scientist" {
		t.Errorf("Unexpected row: %v", rows[1])
	}
}

func TestWriteCSVRoundTrips(t *testing.T) {
	table := testTable()

	var buf strings.Builder
	if err := WriteCSV(table.All(), EnglishSchema(), &buf); err != nil {
		t.Fatal(err)
	}

	reloaded, err := LoadCSV(strings.NewReader(buf.String()), EnglishSchema(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Len() != table.Len() {
		t.Fatalf("Round trip lost rows: %d vs %d", reloaded.Len(), table.Len())
	}
	for i := 0; i < table.Len(); i++ {
		if reloaded.Salaries[i] != table.Salaries[i] {
			t.Fatalf("Row %d salary changed through export/reload", i)
		}
	}
}
