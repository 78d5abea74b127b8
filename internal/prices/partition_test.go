package prices_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/catalog"
	"catalog-service/internal/format"
	"catalog-service/internal/models"
	"catalog-service/internal/prices"
)

func fptr(v float64) *float64 { return &v }

func offer(store string, price, unitPrice *float64) models.Price {
	return models.Price{StoreName: store, Price: price, UnitPrice: unitPrice}
}

func stores(offers []models.Price) []string {
	out := make([]string, len(offers))
	for i, o := range offers {
		out[i] = o.StoreName
	}
	return out
}

func TestPartitionSortsByUnitPrice(t *testing.T) {
	t.Parallel()

	input := []models.Price{
		offer("A", fptr(10), nil),
		offer("B", fptr(5), fptr(3)),
		offer("C", fptr(8), fptr(1)),
	}

	got := prices.Partition(input, catalog.NewStringSet())

	assert.Equal(t, []string{"C", "B", "A"}, stores(got.Visible))
	assert.Empty(t, got.Hidden)
	assert.Nil(t, got.HiddenRange)
	// Input order untouched.
	assert.Equal(t, []string{"A", "B", "C"}, stores(input))
}

func TestPartitionCompleteness(t *testing.T) {
	t.Parallel()

	input := []models.Price{
		offer("X", fptr(1), fptr(1)),
		offer("Y", fptr(2), fptr(2)),
		offer("Z", fptr(3), fptr(3)),
	}

	got := prices.Partition(input, catalog.NewStringSet("X", "Z"))

	assert.Len(t, got.Visible, 2)
	assert.Len(t, got.Hidden, 1)
	assert.Equal(t, len(input), len(got.Visible)+len(got.Hidden))
	assert.Equal(t, []string{"X", "Z"}, stores(got.Visible))
	assert.Equal(t, []string{"Y"}, stores(got.Hidden))
}

func TestPartitionHiddenRange(t *testing.T) {
	t.Parallel()

	t.Run("min and max formatted independently", func(t *testing.T) {
		t.Parallel()
		input := []models.Price{
			offer("A", fptr(10), fptr(1)),
			offer("B", fptr(20), fptr(2)),
		}
		got := prices.Partition(input, catalog.NewStringSet("Z"))
		require.NotNil(t, got.HiddenRange)
		assert.Equal(t, format.Price(10)+" - "+format.Price(20), *got.HiddenRange)
	})

	t.Run("single distinct value", func(t *testing.T) {
		t.Parallel()
		input := []models.Price{
			offer("A", fptr(15), nil),
			offer("B", fptr(15), nil),
		}
		got := prices.Partition(input, catalog.NewStringSet("Z"))
		require.NotNil(t, got.HiddenRange)
		assert.Equal(t, format.Price(15), *got.HiddenRange)
	})

	t.Run("no usable values", func(t *testing.T) {
		t.Parallel()
		input := []models.Price{
			offer("A", nil, nil),
			offer("B", nil, fptr(2)),
		}
		got := prices.Partition(input, catalog.NewStringSet("Z"))
		require.NotNil(t, got.HiddenRange)
		assert.Equal(t, prices.UnknownRange, *got.HiddenRange)
	})

	t.Run("unknown values ignored in the range", func(t *testing.T) {
		t.Parallel()
		input := []models.Price{
			offer("A", nil, nil),
			offer("B", fptr(7), nil),
		}
		got := prices.Partition(input, catalog.NewStringSet("Z"))
		require.NotNil(t, got.HiddenRange)
		assert.Equal(t, format.Price(7), *got.HiddenRange)
	})
}

func TestPartitionEmptySelectionHidesNothing(t *testing.T) {
	t.Parallel()

	input := []models.Price{offer("A", fptr(1), fptr(1))}
	got := prices.Partition(input, nil)

	assert.Len(t, got.Visible, 1)
	assert.Empty(t, got.Hidden)
	assert.Nil(t, got.HiddenRange)
}

func TestPartitionUnknownUnitPricesSortLast(t *testing.T) {
	t.Parallel()

	input := []models.Price{
		offer("A", fptr(1), nil),
		offer("B", fptr(2), fptr(9)),
		offer("C", fptr(3), nil),
	}

	got := prices.Partition(input, catalog.NewStringSet())
	assert.Equal(t, []string{"B", "A", "C"}, stores(got.Visible))
}
