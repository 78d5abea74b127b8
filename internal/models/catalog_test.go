package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/models"
)

func TestNameCountsAcceptsBothEncodings(t *testing.T) {
	t.Parallel()

	t.Run("count object", func(t *testing.T) {
		t.Parallel()
		var counts models.NameCounts
		require.NoError(t, json.Unmarshal([]byte(`{"Albert": 12, "Billa": 3}`), &counts))
		assert.Equal(t, models.NameCounts{"Albert": 12, "Billa": 3}, counts)
	})

	t.Run("legacy name list", func(t *testing.T) {
		t.Parallel()
		var counts models.NameCounts
		require.NoError(t, json.Unmarshal([]byte(`["Albert", "Billa"]`), &counts))
		assert.Equal(t, models.NameCounts{"Albert": 0, "Billa": 0}, counts)
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		t.Parallel()
		var counts models.NameCounts
		assert.Error(t, json.Unmarshal([]byte(`"Albert"`), &counts))
	})
}

func TestSnapshotDecoding(t *testing.T) {
	t.Parallel()

	raw := `{
		"products": [
			{
				"name": "Jogurt",
				"brand": null,
				"image_url": null,
				"categories": ["Potraviny", "Mléčné výrobky"],
				"category_ids": ["aa11", "bb22"],
				"prices": [
					{"store_name": "Albert", "price": 12.9, "unit_price": null, "unit": null, "package_size": "150 g", "condition": null}
				]
			}
		],
		"metadata": {"total_products": 1, "brands": [], "stores": {"Albert": 1}}
	}`

	var snap models.Snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &snap))

	require.Len(t, snap.Products, 1)
	p := snap.Products[0]
	assert.Nil(t, p.Brand)
	assert.Equal(t, []string{"aa11", "bb22"}, p.CategoryIDs)
	require.Len(t, p.Prices, 1)
	assert.Nil(t, p.Prices[0].UnitPrice)
	require.NotNil(t, p.Prices[0].Price)
	assert.Equal(t, 12.9, *p.Prices[0].Price)

	assert.Equal(t, 1, snap.Metadata.TotalProducts)
	assert.Equal(t, models.NameCounts{"Albert": 1}, snap.Metadata.Stores)
	assert.Empty(t, snap.Metadata.Brands)
}

func TestProductHasStore(t *testing.T) {
	t.Parallel()

	p := models.Product{Prices: []models.Price{{StoreName: "Tesco"}, {StoreName: "Billa"}}}
	assert.True(t, p.HasStore("Billa"))
	assert.False(t, p.HasStore("Albert"))
}
