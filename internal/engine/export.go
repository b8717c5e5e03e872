package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV serializes a view as delimited text: a header row with the
// schema's column names, then one row per record in view order. This is
// the download format for filtered data.
func WriteCSV(v *View, sch Schema, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(sch.headers()); err != nil {
		return fmt.Errorf("csv export: write header: %w", err)
	}

	for i := 0; i < v.Len(); i++ {
		row := []string{
			strconv.Itoa(v.Year(i)),
			v.Value(i, DimSeniority),
			v.Value(i, DimContract),
			v.Value(i, DimCompanySize),
			strconv.FormatFloat(v.Salary(i), 'f', -1, 64),
			v.Value(i, DimRole),
			v.Value(i, DimRemote),
			v.Value(i, DimResidence),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv export: write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
