package engine

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMissingColumn marks a dataset that lacks one of the required
// columns. Load fails before any computation runs.
var ErrMissingColumn = errors.New("dataset is missing a required column")

// Schema maps the engine's logical fields to the dataset's header names.
// The two localized dashboard variants use different headers; both are
// configuration over the same load path.
type Schema struct {
	Year        string
	Seniority   string
	Contract    string
	CompanySize string
	Salary      string
	Role        string
	Remote      string
	Residence   string
}

// EnglishSchema matches the English dataset headers.
func EnglishSchema() Schema {
	return Schema{
		Year:        "Year",
		Seniority:   "Experience_Level",
		Contract:    "Employment_Type",
		CompanySize: "Company_Size",
		Salary:      "Salary_In_Usd",
		Role:        "Job_Title",
		Remote:      "Remote_Ratio",
		Residence:   "Employee_Residence_Iso3",
	}
}

// PortugueseSchema matches the pt-BR dataset headers.
func PortugueseSchema() Schema {
	return Schema{
		Year:        "ano",
		Seniority:   "senioridade",
		Contract:    "contrato",
		CompanySize: "tamanho_empresa",
		Salary:      "usd",
		Role:        "cargo",
		Remote:      "remoto",
		Residence:   "residencia_iso3",
	}
}

// headers returns the schema's column names in export order.
func (s Schema) headers() []string {
	return []string{s.Year, s.Seniority, s.Contract, s.CompanySize, s.Salary, s.Role, s.Remote, s.Residence}
}

// LoadCSV parses a salary dataset into an immutable Table.
//
// The header row is validated against the schema: every required column
// must be present or the load fails with ErrMissingColumn. rate is an
// optional linear currency conversion applied to the salary column while
// loading (pass 1 for none); everything downstream is currency-agnostic.
func LoadCSV(r io.Reader, sch Schema, rate float64) (*Table, error) {
	if rate <= 0 {
		rate = 1
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}

	required := map[string]string{
		"year":         sch.Year,
		"seniority":    sch.Seniority,
		"contract":     sch.Contract,
		"company size": sch.CompanySize,
		"salary":       sch.Salary,
		"role":         sch.Role,
		"remote":       sch.Remote,
		"residence":    sch.Residence,
	}
	var missing []string
	for _, name := range required {
		if _, ok := pos[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	yearIdx := pos[sch.Year]
	salaryIdx := pos[sch.Salary]

	b := NewTableBuilder()
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[yearIdx]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad year %q", line, row[yearIdx])
		}
		salary, err := strconv.ParseFloat(strings.TrimSpace(row[salaryIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad salary %q", line, row[salaryIdx])
		}

		b.Append(
			year,
			salary*rate,
			strings.TrimSpace(row[pos[sch.Seniority]]),
			strings.TrimSpace(row[pos[sch.Contract]]),
			strings.TrimSpace(row[pos[sch.CompanySize]]),
			strings.TrimSpace(row[pos[sch.Role]]),
			strings.TrimSpace(row[pos[sch.Remote]]),
			strings.TrimSpace(row[pos[sch.Residence]]),
		)
	}

	return b.Build(), nil
}

// LoadCSVFile loads a dataset from disk.
func LoadCSVFile(path string, sch Schema, rate float64) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return LoadCSV(f, sch, rate)
}
