package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog-service/internal/catalog"
	"catalog-service/internal/config"
	"catalog-service/internal/models"
)

func TestKeywordClassifier(t *testing.T) {
	t.Parallel()

	c := catalog.KeywordClassifier{
		Include: config.DefaultFoodKeywords,
		Exclude: config.DefaultNonFoodKeywords,
	}

	assert.True(t, c.IsFood("Ovoce a zelenina"))
	assert.True(t, c.IsFood("PEČIVO"))
	assert.True(t, c.IsFood("Mléčné výrobky a vejce"))

	assert.False(t, c.IsFood("Drogerie"))
	assert.False(t, c.IsFood("Krmivo pro psy"))
	// Exclusion is checked first and short-circuits: sweets match the food
	// list too, but the exclusion wins.
	assert.False(t, c.IsFood("Sladkosti a slané snacky"))

	assert.False(t, c.IsFood("Elektronika"))
}

func TestGroupRoots(t *testing.T) {
	t.Parallel()

	roots := []models.CategoryNode{
		{Name: "Drogerie"},
		{Name: "Pečivo"},
		{Name: "Ovoce a zelenina"},
		{Name: "Domácnost"},
	}
	isFood := func(name string) bool { return name != "Drogerie" && name != "Domácnost" }

	food, other := catalog.GroupRoots(roots, isFood)

	assert.Equal(t, []string{"Pečivo", "Ovoce a zelenina"}, nodeNames(food))
	assert.Equal(t, []string{"Drogerie", "Domácnost"}, nodeNames(other))
}

func nodeNames(nodes []models.CategoryNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}
