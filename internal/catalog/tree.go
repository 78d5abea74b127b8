package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"catalog-service/internal/models"
)

// CategoryID derives the stable id of a tree node from its full path: the
// last 16 hex characters of sha256 over the "/"-joined path. This matches
// the ids the data pipeline writes into snapshot category_ids, so ids agree
// whether the tree is derived here or supplied by the source.
func CategoryID(path []string) string {
	sum := sha256.Sum256([]byte(strings.Join(path, "/")))
	full := hex.EncodeToString(sum[:])
	return full[len(full)-16:]
}

type treeAccumulator struct {
	id       string
	name     string
	count    int
	children map[string]*treeAccumulator
}

// BuildTree derives the category tree from the products' category paths.
// Pure and rebuilt from scratch on every call; there is no incremental
// maintenance. A node's identity is its path-position-scoped label, so two
// categories with the same name at different positions are distinct nodes.
// Every level is ordered by Czech collation before being returned.
func BuildTree(products []models.Product) []models.CategoryNode {
	roots := make(map[string]*treeAccumulator)

	for i := range products {
		path := products[i].Categories
		if len(path) == 0 {
			continue
		}
		level := roots
		for depth, label := range path {
			node, ok := level[label]
			if !ok {
				node = &treeAccumulator{
					id:       CategoryID(path[:depth+1]),
					name:     label,
					children: make(map[string]*treeAccumulator),
				}
				level[label] = node
			}
			node.count++
			level = node.children
		}
	}

	return finalizeLevel(roots, collate.New(language.Czech))
}

// finalizeLevel converts the mutable accumulator map into the immutable
// ordered representation in one pass per level.
func finalizeLevel(level map[string]*treeAccumulator, coll *collate.Collator) []models.CategoryNode {
	names := make([]string, 0, len(level))
	for name := range level {
		names = append(names, name)
	}
	coll.SortStrings(names)

	out := make([]models.CategoryNode, 0, len(names))
	for _, name := range names {
		acc := level[name]
		out = append(out, models.CategoryNode{
			ID:       acc.id,
			Name:     acc.name,
			Count:    acc.count,
			Children: finalizeLevel(acc.children, coll),
		})
	}
	return out
}

// TreeForSnapshot prefers the source-supplied tree when the snapshot carries
// one and derives it from the product paths otherwise.
func TreeForSnapshot(snap *models.Snapshot) []models.CategoryNode {
	if len(snap.Metadata.Categories) > 0 {
		return snap.Metadata.Categories
	}
	return BuildTree(snap.Products)
}
