package engine

import "testing"

func TestFilterCacheMemoizes(t *testing.T) {
	cache := NewFilterCache(testTable())

	// Same selection by value, different construction order
	a := cache.Filter(Selection{DimSeniority: {"Senior", "Junior"}, DimContract: {"FT"}})
	b := cache.Filter(Selection{DimContract: {"FT"}, DimSeniority: {"Junior", "Senior"}})

	if a != b {
		t.Error("Value-equal selections should hit the same cached view")
	}
}

func TestFilterCacheDistinguishesSelections(t *testing.T) {
	cache := NewFilterCache(testTable())

	senior := cache.Filter(Selection{DimSeniority: {"Senior"}})
	junior := cache.Filter(Selection{DimSeniority: {"Junior"}})

	if senior.Len() == junior.Len() {
		t.Errorf("Different selections must not share results: %d vs %d", senior.Len(), junior.Len())
	}

	// Empty set and absent dimension are different selections
	none := cache.Filter(Selection{DimSeniority: {}})
	all := cache.Filter(Selection{})
	if none.Len() != 0 || all.Len() != 4 {
		t.Errorf("Empty-set/absent confusion: %d and %d rows", none.Len(), all.Len())
	}
}

func TestFilterCacheMatchesDirectFilter(t *testing.T) {
	table := testTable()
	cache := NewFilterCache(table)
	sel := Selection{DimContract: {"FT"}}

	cached := cache.Filter(sel)
	direct := Filter(table, sel)

	if cached.Len() != direct.Len() {
		t.Fatalf("Cache changed observable output: %d vs %d rows", cached.Len(), direct.Len())
	}
	for i := 0; i < cached.Len(); i++ {
		if cached.Salary(i) != direct.Salary(i) {
			t.Fatalf("Row %d differs between cached and direct filter", i)
		}
	}
}

func TestFilterCacheInvalidate(t *testing.T) {
	cache := NewFilterCache(testTable())
	sel := Selection{DimSeniority: {"Senior"}}

	if got := cache.Filter(sel).Len(); got != 3 {
		t.Fatalf("Expected 3 Senior rows, got %d", got)
	}

	// Swap in a different table: cached views must not leak through
	b := NewTableBuilder()
	b.Append(2024, 500, "Senior", "FT", "M", "A", "Remote", "USA")
	cache.Invalidate(b.Build())

	if got := cache.Filter(sel).Len(); got != 1 {
		t.Errorf("Expected 1 Senior row after invalidation, got %d", got)
	}
}
