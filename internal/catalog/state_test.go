package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/catalog"
)

func TestToggleCategoryCycles(t *testing.T) {
	t.Parallel()

	st := catalog.NewState()
	const id = "cat1"

	states := []catalog.State{st}
	for i := 0; i < 4; i++ {
		st = st.ToggleCategory(id)
		states = append(states, st)
	}

	assert.Equal(t, catalog.SelectionIncluded, states[1].Filters.CategoryState(id))
	assert.Equal(t, catalog.SelectionExcluded, states[2].Filters.CategoryState(id))
	assert.Equal(t, catalog.SelectionNeutral, states[3].Filters.CategoryState(id))
	assert.Equal(t, catalog.SelectionIncluded, states[4].Filters.CategoryState(id))

	// The id never sits in both sets at once.
	for _, s := range states {
		both := s.Filters.Categories.Has(id) && s.Filters.ExcludeCategories.Has(id)
		assert.False(t, both)
	}
}

func TestToggleCategoryDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	st := catalog.NewState()
	next := st.ToggleCategory("a")

	assert.False(t, st.Filters.Categories.Has("a"))
	assert.True(t, next.Filters.Categories.Has("a"))
}

func TestToggleCategoryResolvesCorruptState(t *testing.T) {
	t.Parallel()

	// Hand-crafted invariant violation: id in both sets. Exclude takes
	// precedence, so one toggle lands on Neutral with the id in neither.
	st := catalog.NewState()
	st.Filters.Categories.Add("x")
	st.Filters.ExcludeCategories.Add("x")

	require.Equal(t, catalog.SelectionExcluded, st.Filters.CategoryState("x"))
	next := st.ToggleCategory("x")
	assert.Equal(t, catalog.SelectionNeutral, next.Filters.CategoryState("x"))
	assert.False(t, next.Filters.Categories.Has("x"))
	assert.False(t, next.Filters.ExcludeCategories.Has("x"))
}

func TestForceIncludeCategory(t *testing.T) {
	t.Parallel()

	st := catalog.NewState()
	st = st.ToggleCategory("a")
	st = st.ToggleCategory("b")
	st = st.ToggleCategory("c")
	st = st.ToggleCategory("c") // c now excluded

	next := st.ForceIncludeCategory("d")

	// The include set is replaced wholesale; exclusions survive.
	assert.Equal(t, []string{"d"}, next.Filters.Categories.Values())
	assert.True(t, next.Filters.ExcludeCategories.Has("c"))
}

func TestToggleFilterMembership(t *testing.T) {
	t.Parallel()

	st := catalog.NewState()
	st = st.ToggleFilter(catalog.FilterStores, "Tesco")
	assert.True(t, st.Filters.Stores.Has("Tesco"))

	st = st.ToggleFilter(catalog.FilterStores, "Tesco")
	assert.False(t, st.Filters.Stores.Has("Tesco"))

	// Category kind routes through the tri-state toggle.
	st = st.ToggleFilter(catalog.FilterCategories, "cat1")
	st = st.ToggleFilter(catalog.FilterCategories, "cat1")
	assert.Equal(t, catalog.SelectionExcluded, st.Filters.CategoryState("cat1"))
}

func TestClearSectionAndReset(t *testing.T) {
	t.Parallel()

	st := catalog.NewState()
	st = st.ToggleFilter(catalog.FilterBrands, "Madeta")
	st = st.ToggleFilter(catalog.FilterStores, "Albert")
	st = st.ToggleCategory("a")
	st = st.ToggleCategory("b")
	st = st.ToggleCategory("b") // excluded
	st = st.SetSort(catalog.SortUnitAsc)

	cleared := st.ClearSection(catalog.FilterCategories)
	assert.Empty(t, cleared.Filters.Categories)
	assert.Empty(t, cleared.Filters.ExcludeCategories)
	assert.True(t, cleared.Filters.Brands.Has("Madeta"))

	reset := st.Reset()
	assert.Empty(t, reset.Filters.Brands)
	assert.Empty(t, reset.Filters.Categories)
	assert.Empty(t, reset.Filters.ExcludeCategories)
	assert.Empty(t, reset.Filters.Stores)
	// Reset only touches the filter sets.
	assert.Equal(t, catalog.SortUnitAsc, reset.Sort)
}

func TestApplyDeepLink(t *testing.T) {
	t.Parallel()

	st := catalog.NewState()
	st.View = catalog.ViewAnalysis
	st = st.ToggleFilter(catalog.FilterBrands, "Olma")
	st = st.ToggleCategory("old")
	st = st.ToggleCategory("gone")
	st = st.ToggleCategory("gone") // excluded
	st = st.ToggleFilter(catalog.FilterStores, "Billa")

	next := st.ApplyDeepLink("tesco", "cat42", "Tesco")

	assert.Equal(t, "", next.View)
	assert.Equal(t, "tesco", next.Source)
	assert.Empty(t, next.Filters.Brands)
	assert.Empty(t, next.Filters.ExcludeCategories)
	assert.Equal(t, []string{"cat42"}, next.Filters.Categories.Values())
	assert.Equal(t, []string{"Tesco"}, next.Filters.Stores.Values())

	noStore := st.ApplyDeepLink("kupi", "cat7", "")
	assert.Empty(t, noStore.Filters.Stores)
}

func TestParseSort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, catalog.SortPriceAsc, catalog.ParseSort("price-asc"))
	assert.Equal(t, catalog.SortUnitDesc, catalog.ParseSort("unit-desc"))
	assert.Equal(t, catalog.SortDefault, catalog.ParseSort(""))
	assert.Equal(t, catalog.SortDefault, catalog.ParseSort("garbage"))
}
