package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog-service/internal/format"
)

func TestPrice(t *testing.T) {
	t.Parallel()

	got := format.Price(10)
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "10")

	// Distinct amounts render distinctly.
	assert.NotEqual(t, format.Price(10), format.Price(20))
	// Formatting is deterministic.
	assert.Equal(t, format.Price(12.5), format.Price(12.5))
}

func TestPricePtr(t *testing.T) {
	t.Parallel()

	v := 42.0
	assert.Equal(t, format.Price(42), format.PricePtr(&v))
	assert.Equal(t, "—", format.PricePtr(nil))
}
