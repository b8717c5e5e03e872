package models

// Summary holds the headline KPIs for a filtered dataset.
// All values are zero (and TopRole "-") when no rows match.
type Summary struct {
	MeanSalary   float64 `json:"mean_salary"`
	MedianSalary float64 `json:"median_salary"`
	MaxSalary    float64 `json:"max_salary"`
	Records      int     `json:"records"`
	TopRole      string  `json:"top_role"`
}

// GroupStat is one group's mean salary (top roles, country ranking).
type GroupStat struct {
	Group string  `json:"group"`
	Mean  float64 `json:"mean_salary"`
	Count int     `json:"records"`
}

// GroupMeanMedian carries both central measures for one group.
type GroupMeanMedian struct {
	Group  string  `json:"group"`
	Mean   float64 `json:"mean_salary"`
	Median float64 `json:"median_salary"`
}

// PairStat is a two-dimension cell (seniority x company size heatmap).
type PairStat struct {
	A    string  `json:"a"`
	B    string  `json:"b"`
	Mean float64 `json:"mean_salary"`
}

// YearStat is the mean salary for one year (evolution line).
type YearStat struct {
	Year int     `json:"year"`
	Mean float64 `json:"mean_salary"`
}

// CountStat is a category frequency (work-mode donut).
type CountStat struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Growth is the average year-over-year salary change.
// Defined is false when fewer than two distinct years are present.
type Growth struct {
	Percent float64 `json:"percent"`
	Defined bool    `json:"defined"`
}

// Comparison contrasts two groups of one dimension.
// DiffDefined is false when the base mean (B) is zero.
type Comparison struct {
	GroupA      string  `json:"group_a"`
	MeanA       float64 `json:"mean_a"`
	MedianA     float64 `json:"median_a"`
	GroupB      string  `json:"group_b"`
	MeanB       float64 `json:"mean_b"`
	MedianB     float64 `json:"median_b"`
	DiffPercent float64 `json:"diff_percent"`
	DiffDefined bool    `json:"diff_defined"`
}

// FilterOptions lists the distinct values per filterable dimension,
// so the frontend can default every filter to "all observed values".
type FilterOptions struct {
	Years         []int    `json:"years"`
	Seniorities   []string `json:"seniorities"`
	ContractTypes []string `json:"contract_types"`
	CompanySizes  []string `json:"company_sizes"`
}
