package models

import "encoding/json"

// CategoryNode is one node of the derived (or snapshot-supplied) category
// tree. ID is empty in the legacy name-keyed encoding.
//
// Count is the number of products whose category path passes through this
// node: a product contributes +1 to every ancestor on its path, so a parent's
// count is not necessarily >= the sum of its children's counts.
type CategoryNode struct {
	ID       string         `json:"id,omitempty"`
	Name     string         `json:"name"`
	Count    int            `json:"count"`
	Children []CategoryNode `json:"children"`
}

// NameCounts maps a brand or store name to its occurrence count.
//
// Older snapshots serialize these aggregates as a plain list of names; newer
// ones as a name->count object. Both decode into NameCounts, with list
// entries getting a zero count (mirrors how the browser normalized them).
type NameCounts map[string]int

func (n *NameCounts) UnmarshalJSON(data []byte) error {
	var asMap map[string]int
	if err := json.Unmarshal(data, &asMap); err == nil {
		*n = asMap
		return nil
	}
	var asList []string
	if err := json.Unmarshal(data, &asList); err != nil {
		return err
	}
	counts := make(NameCounts, len(asList))
	for _, name := range asList {
		counts[name] = 0
	}
	*n = counts
	return nil
}

// Metadata holds the summary aggregates that accompany a snapshot source.
// They are computed by the data pipeline and trusted as-is.
type Metadata struct {
	TotalProducts int            `json:"total_products"`
	GeneratedAt   string         `json:"generated_at,omitempty"`
	Brands        NameCounts     `json:"brands"`
	Stores        NameCounts     `json:"stores"`
	Categories    []CategoryNode `json:"categories,omitempty"`
}

// Snapshot is one named source's full document.
type Snapshot struct {
	Products []Product `json:"products"`
	Metadata Metadata  `json:"metadata"`
}

// Source is one entry of the source index document.
type Source struct {
	Name string `json:"name"`
	File string `json:"file"`
}

// SourceIndex lists the independently loadable snapshot sources.
type SourceIndex struct {
	Sources []Source `json:"sources"`
}
