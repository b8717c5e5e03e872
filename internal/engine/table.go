package engine

import "sort"

// Filterable / groupable dimension names.
const (
	DimYear        = "year"
	DimSeniority   = "seniority"
	DimContract    = "contract"
	DimCompanySize = "company_size"
	DimRole        = "role"
	DimRemote      = "remote"
	DimResidence   = "residence"
)

// column is a dictionary-encoded categorical column: every row stores a
// small int id, the dict maps ids back to the original strings.
type column struct {
	ids   []int32
	dict  []string
	index map[string]int32
}

func (c *column) append(v string) {
	if c.index == nil {
		c.index = make(map[string]int32)
	}
	id, ok := c.index[v]
	if !ok {
		id = int32(len(c.dict))
		c.dict = append(c.dict, v)
		c.index[v] = id
	}
	c.ids = append(c.ids, id)
}

func (c *column) value(row int32) string {
	return c.dict[c.ids[row]]
}

// lookup returns the dictionary id for a value, if it was ever observed.
func (c *column) lookup(v string) (int32, bool) {
	id, ok := c.index[v]
	return id, ok
}

// sortedValues returns the distinct observed values in ascending order.
func (c *column) sortedValues() []string {
	out := make([]string, len(c.dict))
	copy(out, c.dict)
	sort.Strings(out)
	return out
}

// Table is the immutable in-memory salary dataset in struct-of-arrays
// form. It is built once by a loader and never mutated afterwards;
// filtering and trimming produce Views (row-index subsets) into it.
type Table struct {
	Years    []int32
	Salaries []float64

	seniority   column
	contract    column
	companySize column
	role        column
	remote      column
	residence   column
}

func (t *Table) Len() int { return len(t.Salaries) }

// All returns a view covering every row, in load order.
func (t *Table) All() *View {
	rows := make([]int32, t.Len())
	for i := range rows {
		rows[i] = int32(i)
	}
	return &View{table: t, rows: rows}
}

// categorical maps a dimension name to its column. Nil for DimYear and
// unknown names: the year column is numeric and handled separately.
func (t *Table) categorical(dim string) *column {
	switch dim {
	case DimSeniority:
		return &t.seniority
	case DimContract:
		return &t.contract
	case DimCompanySize:
		return &t.companySize
	case DimRole:
		return &t.role
	case DimRemote:
		return &t.remote
	case DimResidence:
		return &t.residence
	}
	return nil
}

// DistinctYears returns the observed years in ascending order.
func (t *Table) DistinctYears() []int {
	seen := make(map[int32]bool)
	var years []int
	for _, y := range t.Years {
		if !seen[y] {
			seen[y] = true
			years = append(years, int(y))
		}
	}
	sort.Ints(years)
	return years
}

// DistinctValues returns the sorted distinct values of a categorical
// dimension. Nil for DimYear or unknown dimensions.
func (t *Table) DistinctValues(dim string) []string {
	col := t.categorical(dim)
	if col == nil {
		return nil
	}
	return col.sortedValues()
}

// TableBuilder accumulates rows and produces an immutable Table.
// Used by the CSV loader and the Postgres source.
type TableBuilder struct {
	t Table
}

func NewTableBuilder() *TableBuilder {
	return &TableBuilder{}
}

func (b *TableBuilder) Append(year int, salary float64, seniority, contract, companySize, role, remote, residence string) {
	b.t.Years = append(b.t.Years, int32(year))
	b.t.Salaries = append(b.t.Salaries, salary)
	b.t.seniority.append(seniority)
	b.t.contract.append(contract)
	b.t.companySize.append(companySize)
	b.t.role.append(role)
	b.t.remote.append(remote)
	b.t.residence.append(residence)
}

func (b *TableBuilder) Len() int { return b.t.Len() }

func (b *TableBuilder) Build() *Table {
	return &b.t
}

// View is an order-preserving subset of a Table's rows. Zero data copy:
// it holds row indices into the parent table.
type View struct {
	table *Table
	rows  []int32
}

func (v *View) Len() int { return len(v.rows) }

func (v *View) Table() *Table { return v.table }

func (v *View) Salary(i int) float64 { return v.table.Salaries[v.rows[i]] }

func (v *View) Year(i int) int { return int(v.table.Years[v.rows[i]]) }

// Value returns the categorical value of dimension dim at view index i.
func (v *View) Value(i int, dim string) string {
	col := v.table.categorical(dim)
	if col == nil {
		return ""
	}
	return col.value(v.rows[i])
}

// salaries copies the view's salary column. Aggregations that need to
// sort (median, percentile) work on this copy, never on the table.
func (v *View) salaries() []float64 {
	out := make([]float64, len(v.rows))
	for i, r := range v.rows {
		out[i] = v.table.Salaries[r]
	}
	return out
}
