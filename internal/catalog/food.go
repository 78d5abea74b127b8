package catalog

import (
	"strings"

	"catalog-service/internal/models"
)

// KeywordClassifier decides whether a category name belongs to the food
// group. Matching is case-insensitive substring containment against two
// injected keyword lists; the exclusion list is checked first and
// short-circuits. The lists are configuration, not business logic baked in
// here.
type KeywordClassifier struct {
	Include []string
	Exclude []string
}

// IsFood reports whether the category name classifies as food.
func (c KeywordClassifier) IsFood(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range c.Exclude {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	for _, kw := range c.Include {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// GroupRoots partitions root nodes into the food group followed by
// everything else. Grouping only biases the default display order; it plays
// no part in filtering or counting. The relative order within each group is
// preserved.
func GroupRoots(roots []models.CategoryNode, isFood func(string) bool) (food, other []models.CategoryNode) {
	food = make([]models.CategoryNode, 0, len(roots))
	other = make([]models.CategoryNode, 0)
	for _, root := range roots {
		if isFood(root.Name) {
			food = append(food, root)
		} else {
			other = append(other, root)
		}
	}
	return food, other
}
