package catalog

// FilterKind names one of the filterable dimensions. The values double as the
// persisted parameter keys.
type FilterKind string

const (
	FilterBrands     FilterKind = "brands"
	FilterCategories FilterKind = "categories"
	FilterStores     FilterKind = "stores"
)

// SortOption selects the catalog ordering. Anything unrecognized behaves as
// SortDefault (stable input order).
type SortOption string

const (
	SortDefault   SortOption = "default"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortUnitAsc   SortOption = "unit-asc"
	SortUnitDesc  SortOption = "unit-desc"
)

// ParseSort normalizes a persisted sort value. Absent or unknown values fall
// back to the default ordering rather than erroring.
func ParseSort(raw string) SortOption {
	switch SortOption(raw) {
	case SortPriceAsc, SortPriceDesc, SortUnitAsc, SortUnitDesc:
		return SortOption(raw)
	}
	return SortDefault
}

// CategorySelection is the tri-state value of one category id.
type CategorySelection int

const (
	SelectionNeutral CategorySelection = iota
	SelectionIncluded
	SelectionExcluded
)

// FilterState holds the four selection sets. Categories and ExcludeCategories
// are disjoint for any state produced through the transition methods; a
// hand-crafted state with an id in both resolves with exclude precedence.
type FilterState struct {
	Brands            StringSet
	Categories        StringSet
	ExcludeCategories StringSet
	Stores            StringSet
}

func NewFilterState() FilterState {
	return FilterState{
		Brands:            NewStringSet(),
		Categories:        NewStringSet(),
		ExcludeCategories: NewStringSet(),
		Stores:            NewStringSet(),
	}
}

func (f FilterState) Clone() FilterState {
	return FilterState{
		Brands:            f.Brands.Clone(),
		Categories:        f.Categories.Clone(),
		ExcludeCategories: f.ExcludeCategories.Clone(),
		Stores:            f.Stores.Clone(),
	}
}

// CategoryState reports the selection of a category id, with exclude taking
// precedence over include for states not built by the transitions here.
func (f FilterState) CategoryState(id string) CategorySelection {
	if f.ExcludeCategories.Has(id) {
		return SelectionExcluded
	}
	if f.Categories.Has(id) {
		return SelectionIncluded
	}
	return SelectionNeutral
}

// State is the full URL-held state container: the filter sets plus the
// single-valued sort, source and view parameters. Core functions receive it
// as an explicit value; they never read it from anywhere ambient.
type State struct {
	Filters FilterState
	Sort    SortOption
	Source  string
	View    string
}

// ViewAnalysis is the view value that switches to the analysis report.
const ViewAnalysis = "analysis"

func NewState() State {
	return State{Filters: NewFilterState(), Sort: SortDefault}
}

func (st State) Clone() State {
	out := st
	out.Filters = st.Filters.Clone()
	return out
}

func (st State) IsAnalysis() bool { return st.View == ViewAnalysis }

// ToggleCategory cycles one category id through
// Neutral -> Included -> Excluded -> Neutral.
func (st State) ToggleCategory(id string) State {
	out := st.Clone()
	switch out.Filters.CategoryState(id) {
	case SelectionNeutral:
		out.Filters.Categories.Add(id)
	case SelectionIncluded:
		out.Filters.Categories.Remove(id)
		out.Filters.ExcludeCategories.Add(id)
	case SelectionExcluded:
		out.Filters.ExcludeCategories.Remove(id)
		out.Filters.Categories.Remove(id)
	}
	return out
}

// ForceIncludeCategory replaces the whole include set with the single id,
// keeping exclusions untouched. Bound to clicking a category's label rather
// than its checkbox: "show only this branch".
func (st State) ForceIncludeCategory(id string) State {
	out := st.Clone()
	out.Filters.Categories = NewStringSet(id)
	return out
}

// ToggleFilter is a plain membership toggle for brands and stores. Category
// values route through the tri-state toggle.
func (st State) ToggleFilter(kind FilterKind, value string) State {
	if kind == FilterCategories {
		return st.ToggleCategory(value)
	}
	out := st.Clone()
	set := out.Filters.filterSet(kind)
	if set == nil {
		return out
	}
	if set.Has(value) {
		set.Remove(value)
	} else {
		set.Add(value)
	}
	return out
}

// Reset clears every filter set, leaving sort, source and view alone.
func (st State) Reset() State {
	out := st.Clone()
	out.Filters = NewFilterState()
	return out
}

// ClearSection empties one filter dimension. Clearing categories also clears
// the exclude set.
func (st State) ClearSection(kind FilterKind) State {
	out := st.Clone()
	switch kind {
	case FilterBrands:
		out.Filters.Brands = NewStringSet()
	case FilterStores:
		out.Filters.Stores = NewStringSet()
	case FilterCategories:
		out.Filters.Categories = NewStringSet()
		out.Filters.ExcludeCategories = NewStringSet()
	}
	return out
}

func (st State) SetSort(opt SortOption) State {
	out := st.Clone()
	out.Sort = ParseSort(string(opt))
	return out
}

func (st State) SetSource(name string) State {
	out := st.Clone()
	out.Source = name
	return out
}

// ApplyDeepLink transitions into a category deep link in one atomic step:
// leave the analysis view, switch source, drop all filters, include exactly
// the linked category and, when given, select its store. Doing this as one
// transition keeps intermediate states from ever being observed.
func (st State) ApplyDeepLink(source, categoryID, storeName string) State {
	out := st.Clone()
	out.View = ""
	out.Source = source
	out.Filters = NewFilterState()
	out.Filters.Categories.Add(categoryID)
	if storeName != "" {
		out.Filters.Stores.Add(storeName)
	}
	return out
}

func (f *FilterState) filterSet(kind FilterKind) StringSet {
	switch kind {
	case FilterBrands:
		return f.Brands
	case FilterStores:
		return f.Stores
	case FilterCategories:
		return f.Categories
	}
	return nil
}
