package catalog_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/catalog"
	"catalog-service/internal/models"
)

func pathProduct(name string, path ...string) models.Product {
	return models.Product{Name: name, Categories: path}
}

func totalCount(nodes []models.CategoryNode) int {
	sum := 0
	for _, n := range nodes {
		sum += n.Count + totalCount(n.Children)
	}
	return sum
}

func TestBuildTreeCounts(t *testing.T) {
	t.Parallel()

	products := []models.Product{
		pathProduct("p1", "Potraviny", "Mléčné výrobky", "Jogurty"),
		pathProduct("p2", "Potraviny", "Mléčné výrobky"),
		pathProduct("p3", "Potraviny", "Pečivo"),
		pathProduct("p4", "Drogerie"),
		pathProduct("p5"), // no path, contributes nothing
	}

	tree := catalog.BuildTree(products)

	// Total increments equal the summed path lengths: 3+2+2+1.
	assert.Equal(t, 8, totalCount(tree))

	require.Len(t, tree, 2)
	byName := map[string]models.CategoryNode{}
	for _, n := range tree {
		byName[n.Name] = n
	}

	potraviny := byName["Potraviny"]
	assert.Equal(t, 3, potraviny.Count)
	require.Len(t, potraviny.Children, 2)

	var dairy models.CategoryNode
	for _, c := range potraviny.Children {
		if c.Name == "Mléčné výrobky" {
			dairy = c
		}
	}
	assert.Equal(t, 2, dairy.Count)
	require.Len(t, dairy.Children, 1)
	assert.Equal(t, 1, dairy.Children[0].Count)

	assert.Equal(t, 1, byName["Drogerie"].Count)
}

func TestBuildTreeNodeIdentityIsPathScoped(t *testing.T) {
	t.Parallel()

	// The same label at two different tree positions is two distinct nodes
	// with distinct ids.
	products := []models.Product{
		pathProduct("p1", "Potraviny", "Akce"),
		pathProduct("p2", "Drogerie", "Akce"),
	}

	tree := catalog.BuildTree(products)
	require.Len(t, tree, 2)

	var ids []string
	for _, root := range tree {
		require.Len(t, root.Children, 1)
		assert.Equal(t, "Akce", root.Children[0].Name)
		assert.Equal(t, 1, root.Children[0].Count)
		ids = append(ids, root.Children[0].ID)
	}
	assert.NotEqual(t, ids[0], ids[1])
}

func TestCategoryIDScheme(t *testing.T) {
	t.Parallel()

	sum := sha256.Sum256([]byte("Potraviny/Pečivo"))
	full := hex.EncodeToString(sum[:])
	want := full[len(full)-16:]

	assert.Equal(t, want, catalog.CategoryID([]string{"Potraviny", "Pečivo"}))
	assert.Len(t, catalog.CategoryID([]string{"a"}), 16)
}

func TestBuildTreeCzechOrdering(t *testing.T) {
	t.Parallel()

	products := []models.Product{
		pathProduct("p1", "Chléb"),
		pathProduct("p2", "Houby"),
		pathProduct("p3", "Jablka"),
	}

	tree := catalog.BuildTree(products)
	require.Len(t, tree, 3)

	// Czech collation puts "ch" after "h"; a plain byte sort would put
	// Chléb first.
	assert.Equal(t, "Houby", tree[0].Name)
	assert.Equal(t, "Chléb", tree[1].Name)
	assert.Equal(t, "Jablka", tree[2].Name)
}

func TestTreeForSnapshotPrefersSuppliedTree(t *testing.T) {
	t.Parallel()

	supplied := []models.CategoryNode{{ID: "abc", Name: "Supplied", Count: 7, Children: []models.CategoryNode{}}}
	snap := &models.Snapshot{
		Products: []models.Product{pathProduct("p1", "Derived")},
		Metadata: models.Metadata{Categories: supplied},
	}

	assert.Equal(t, supplied, catalog.TreeForSnapshot(snap))

	snap.Metadata.Categories = nil
	derived := catalog.TreeForSnapshot(snap)
	require.Len(t, derived, 1)
	assert.Equal(t, "Derived", derived[0].Name)
}
