package catalog

import "net/url"

// Persisted parameter keys. The repeatable keys carry sets: order within a
// key is meaningless and duplicates collapse.
const (
	ParamBrands            = "brands"
	ParamCategories        = "categories"
	ParamExcludeCategories = "exclude_categories"
	ParamStores            = "stores"
	ParamSort              = "sort"
	ParamSource            = "source"
	ParamView              = "view"
)

// DecodeState reads a State out of a flat multi-valued parameter mapping,
// typically a request query string. Never fails: unknown keys are ignored,
// unknown sort values fall back to the default ordering.
func DecodeState(q url.Values) State {
	return State{
		Filters: FilterState{
			Brands:            NewStringSet(q[ParamBrands]...),
			Categories:        NewStringSet(q[ParamCategories]...),
			ExcludeCategories: NewStringSet(q[ParamExcludeCategories]...),
			Stores:            NewStringSet(q[ParamStores]...),
		},
		Sort:   ParseSort(q.Get(ParamSort)),
		Source: q.Get(ParamSource),
		View:   q.Get(ParamView),
	}
}

// EncodeState writes the canonical parameter form of a state: set values
// sorted, the default sort omitted, empty singles omitted. Decoding an
// encoding yields a set-equal state.
func EncodeState(st State) url.Values {
	q := url.Values{}
	if vals := st.Filters.Brands.Values(); len(vals) > 0 {
		q[ParamBrands] = vals
	}
	if vals := st.Filters.Categories.Values(); len(vals) > 0 {
		q[ParamCategories] = vals
	}
	if vals := st.Filters.ExcludeCategories.Values(); len(vals) > 0 {
		q[ParamExcludeCategories] = vals
	}
	if vals := st.Filters.Stores.Values(); len(vals) > 0 {
		q[ParamStores] = vals
	}
	if st.Sort != SortDefault && st.Sort != "" {
		q.Set(ParamSort, string(st.Sort))
	}
	if st.Source != "" {
		q.Set(ParamSource, st.Source)
	}
	if st.View != "" {
		q.Set(ParamView, st.View)
	}
	return q
}
