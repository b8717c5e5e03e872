package api

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"

	"salarydash/internal/engine"
	"salarydash/internal/models"
)

// Handler serves dashboard aggregates over the loaded salary table.
// It starts with a nil table — routes answer 503 until SetData is
// called, so the server can come up while the dataset loads.
type Handler struct {
	mu     sync.RWMutex
	table  *engine.Table
	cache  *engine.FilterCache
	schema engine.Schema
}

func NewHandler(table *engine.Table, schema engine.Schema) *Handler {
	h := &Handler{schema: schema}
	if table != nil {
		h.table = table
		h.cache = engine.NewFilterCache(table)
	}
	return h
}

// SetData swaps in a freshly loaded table and invalidates every
// memoized filter result.
func (h *Handler) SetData(table *engine.Table) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.table = table
	if h.cache == nil {
		h.cache = engine.NewFilterCache(table)
	} else {
		h.cache.Invalidate(table)
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/filters", h.GetFilterOptions)
	api.GET("/summary", h.GetSummary)
	api.GET("/evolution", h.GetEvolution)
	api.GET("/roles/top", h.GetTopRoles)
	api.GET("/countries/top", h.GetTopCountries)
	api.GET("/heatmap", h.GetHeatmap)
	api.GET("/workmode", h.GetWorkMode)
	api.GET("/compare", h.GetComparison)
	api.GET("/export", h.GetExport)
}

// snapshot returns the current table and cache, or false while the
// dataset is still loading.
func (h *Handler) snapshot() (*engine.Table, *engine.FilterCache, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.table, h.cache, h.table != nil
}

// parseSelection builds a Selection from the filter query params.
// A param that is absent leaves its dimension unconstrained; present but
// empty it selects nothing (the cleared-multiselect case).
func parseSelection(c echo.Context) engine.Selection {
	params := c.QueryParams()
	sel := engine.Selection{}

	dims := map[string]string{
		"years":     engine.DimYear,
		"seniority": engine.DimSeniority,
		"contract":  engine.DimContract,
		"size":      engine.DimCompanySize,
	}
	for param, dim := range dims {
		vals, ok := params[param]
		if !ok {
			continue
		}
		var accepted []string
		for _, v := range vals {
			for _, item := range strings.Split(v, ",") {
				if item = strings.TrimSpace(item); item != "" {
					accepted = append(accepted, item)
				}
			}
		}
		if accepted == nil {
			accepted = []string{}
		}
		sel[dim] = accepted
	}
	return sel
}

// trimmed applies the visualization outlier trim. The `trim` query param
// overrides the default 0.99 percentile; values outside (0, 1] fall back
// to the default. Chart endpoints only — KPIs stay untrimmed.
func trimmed(c echo.Context, v *engine.View) *engine.View {
	p := 0.99
	if raw := c.QueryParam("trim"); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil && f > 0 && f <= 1 {
			p = f
		}
	}
	return engine.TrimToPercentile(v, p)
}

func intParam(c echo.Context, name string, fallback int) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

var errLoading = echo.NewHTTPError(http.StatusServiceUnavailable, "dataset is still loading")

// --- HANDLERS ---

// GetFilterOptions returns the observed values per filterable dimension,
// which the frontend uses as the default "everything selected" state.
func (h *Handler) GetFilterOptions(c echo.Context) error {
	table, _, ok := h.snapshot()
	if !ok {
		return errLoading
	}
	return c.JSON(http.StatusOK, models.FilterOptions{
		Years:         table.DistinctYears(),
		Seniorities:   table.DistinctValues(engine.DimSeniority),
		ContractTypes: table.DistinctValues(engine.DimContract),
		CompanySizes:  table.DistinctValues(engine.DimCompanySize),
	})
}

// GetSummary returns the KPI scalars plus the growth trend. Always
// computed on the untrimmed filtered view.
func (h *Handler) GetSummary(c echo.Context) error {
	_, cache, ok := h.snapshot()
	if !ok {
		return errLoading
	}
	v := cache.Filter(parseSelection(c))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"summary": engine.Summarize(v),
		"growth":  engine.YearOverYearGrowth(v),
	})
}

// GetEvolution returns the mean salary per year.
func (h *Handler) GetEvolution(c echo.Context) error {
	_, cache, ok := h.snapshot()
	if !ok {
		return errLoading
	}
	v := cache.Filter(parseSelection(c))
	return c.JSON(http.StatusOK, engine.MeanByYear(v))
}

// GetTopRoles returns the n best-paid roles by mean salary, ascending
// for horizontal bar display. Outlier-trimmed.
func (h *Handler) GetTopRoles(c echo.Context) error {
	_, cache, ok := h.snapshot()
	if !ok {
		return errLoading
	}
	v := trimmed(c, cache.Filter(parseSelection(c)))
	n := intParam(c, "n", 10)
	return c.JSON(http.StatusOK, engine.TopN(v, engine.DimRole, n, true))
}

// GetTopCountries returns the n countries with the highest mean salary,
// optionally narrowed to a single role (choropleth data). Outlier-trimmed.
func (h *Handler) GetTopCountries(c echo.Context) error {
	_, cache, ok := h.snapshot()
	if !ok {
		return errLoading
	}
	sel := parseSelection(c)
	if role := c.QueryParam("role"); role != "" {
		sel[engine.DimRole] = []string{role}
	}
	v := trimmed(c, cache.Filter(sel))
	n := intParam(c, "n", 10)
	return c.JSON(http.StatusOK, engine.TopN(v, engine.DimResidence, n, false))
}

// GetHeatmap returns mean salary per observed seniority x company-size pair.
func (h *Handler) GetHeatmap(c echo.Context) error {
	_, cache, ok := h.snapshot()
	if !ok {
		return errLoading
	}
	v := cache.Filter(parseSelection(c))
	return c.JSON(http.StatusOK, engine.GroupMeanByPair(v, engine.DimSeniority, engine.DimCompanySize))
}

// GetWorkMode returns the work-mode distribution. Outlier-trimmed.
func (h *Handler) GetWorkMode(c echo.Context) error {
	_, cache, ok := h.snapshot()
	if !ok {
		return errLoading
	}
	v := trimmed(c, cache.Filter(parseSelection(c)))
	return c.JSON(http.StatusOK, engine.CountByValue(v, engine.DimRemote))
}

// GetComparison contrasts two groups of a dimension (default: roles).
func (h *Handler) GetComparison(c echo.Context) error {
	_, cache, ok := h.snapshot()
	if !ok {
		return errLoading
	}
	a, b := c.QueryParam("a"), c.QueryParam("b")
	if a == "" || b == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "params a and b are required")
	}
	dim := c.QueryParam("dim")
	if dim == "" {
		dim = engine.DimRole
	}
	v := cache.Filter(parseSelection(c))
	return c.JSON(http.StatusOK, engine.CompareGroups(v, dim, a, b))
}

// GetExport streams the filtered rows as a CSV download. Untrimmed.
func (h *Handler) GetExport(c echo.Context) error {
	_, cache, ok := h.snapshot()
	if !ok {
		return errLoading
	}
	v := cache.Filter(parseSelection(c))

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="filtered_salaries.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return engine.WriteCSV(v, h.schema, c.Response())
}
