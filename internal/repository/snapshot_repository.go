package repository

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"catalog-service/internal/catalog"
	"catalog-service/internal/models"
)

// Cache TTL constants
const (
	ProductViewCacheTTL  = 2 * time.Minute  // Filtered views change with every interaction
	CategoryTreeCacheTTL = 30 * time.Minute // Trees only change when a snapshot is reloaded
)

// SnapshotRepository loads the source index and its snapshot documents from
// disk, holds them immutable in memory, and serves derived views (filtered
// product lists, category trees) with redis cache-aside on top of the pure
// core functions. A nil redis client disables caching; every read then falls
// through to recomputation, which is always correct.
type SnapshotRepository struct {
	dataDir    string
	indexFile  string
	redis      *redis.Client
	log        *logrus.Logger
	policy     catalog.SelectionPolicy
	classifier catalog.KeywordClassifier

	mu        sync.RWMutex
	sources   []models.Source
	snapshots map[string]*models.Snapshot
}

func NewSnapshotRepository(dataDir, indexFile string, redisClient *redis.Client, log *logrus.Logger, policy catalog.SelectionPolicy, classifier catalog.KeywordClassifier) *SnapshotRepository {
	return &SnapshotRepository{
		dataDir:    dataDir,
		indexFile:  indexFile,
		redis:      redisClient,
		log:        log,
		policy:     policy,
		classifier: classifier,
		snapshots:  make(map[string]*models.Snapshot),
	}
}

// Load reads the index document and every snapshot it lists. A source whose
// file cannot be read or parsed is skipped with a warning; the remaining
// sources stay usable. Calling Load again replaces everything and drops the
// derived-view caches.
func (r *SnapshotRepository) Load(ctx context.Context) error {
	indexPath := filepath.Join(r.dataDir, r.indexFile)
	raw, err := os.ReadFile(indexPath)
	if err != nil {
		return fmt.Errorf("failed to read source index %s: %w", indexPath, err)
	}
	var index models.SourceIndex
	if err := json.Unmarshal(raw, &index); err != nil {
		return fmt.Errorf("failed to parse source index %s: %w", indexPath, err)
	}

	sources := make([]models.Source, 0, len(index.Sources))
	snapshots := make(map[string]*models.Snapshot, len(index.Sources))
	for _, src := range index.Sources {
		path := filepath.Join(r.dataDir, filepath.Base(src.File))
		data, err := os.ReadFile(path)
		if err != nil {
			r.log.WithError(err).WithField("source", src.Name).Warn("Skipping unreadable snapshot")
			continue
		}
		var snap models.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			r.log.WithError(err).WithField("source", src.Name).Warn("Skipping unparsable snapshot")
			continue
		}
		sources = append(sources, src)
		snapshots[src.Name] = &snap
		r.log.WithFields(logrus.Fields{
			"source":   src.Name,
			"products": len(snap.Products),
		}).Info("Snapshot loaded")
	}

	r.mu.Lock()
	r.sources = sources
	r.snapshots = snapshots
	r.mu.Unlock()

	r.invalidateDerivedViews(ctx)
	return nil
}

// Sources returns the loaded source index entries.
func (r *SnapshotRepository) Sources() []models.Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Snapshot returns one source's document. The boolean is false for unknown
// sources; callers treat that as an empty match set, not an error.
func (r *SnapshotRepository) Snapshot(name string) (*models.Snapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap, ok := r.snapshots[name]
	return snap, ok
}

// ResolveSource picks the source a state refers to: the named one when set,
// otherwise the preferred default when loaded, otherwise the first source.
func (r *SnapshotRepository) ResolveSource(name, preferred string) string {
	if name != "" {
		return name
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.snapshots[preferred]; ok {
		return preferred
	}
	if len(r.sources) > 0 {
		return r.sources[0].Name
	}
	return ""
}

// Policy returns the configured category selection policy.
func (r *SnapshotRepository) Policy() catalog.SelectionPolicy {
	return r.policy
}

// FilteredProducts returns the filtered+sorted view of one source,
// cache-aside. An unknown source yields an empty list.
func (r *SnapshotRepository) FilteredProducts(ctx context.Context, source string, st catalog.State) []models.Product {
	snap, ok := r.Snapshot(source)
	if !ok {
		return []models.Product{}
	}

	cacheKey := r.viewCacheKey("products", source, st)
	if r.redis != nil {
		val, err := r.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached []models.Product
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached
			}
		}
	}

	result := catalog.FilterAndSort(snap.Products, st.Filters, st.Sort, r.policy)

	if r.redis != nil {
		if data, err := json.Marshal(result); err == nil {
			r.redis.Set(ctx, cacheKey, data, ProductViewCacheTTL)
		}
	}
	return result
}

// CategoryTree returns the grouped category tree of one source, cache-aside.
// The snapshot-supplied tree wins when present; otherwise the tree is
// derived from the product paths.
func (r *SnapshotRepository) CategoryTree(ctx context.Context, source string) (food, other []models.CategoryNode) {
	snap, ok := r.Snapshot(source)
	if !ok {
		return []models.CategoryNode{}, []models.CategoryNode{}
	}

	cacheKey := fmt.Sprintf("catalog:tree:%s", source)
	type grouped struct {
		Food  []models.CategoryNode `json:"food"`
		Other []models.CategoryNode `json:"other"`
	}
	if r.redis != nil {
		val, err := r.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached grouped
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached.Food, cached.Other
			}
		}
	}

	roots := catalog.TreeForSnapshot(snap)
	food, other = catalog.GroupRoots(roots, r.classifier.IsFood)

	if r.redis != nil {
		if data, err := json.Marshal(grouped{Food: food, Other: other}); err == nil {
			r.redis.Set(ctx, cacheKey, data, CategoryTreeCacheTTL)
		}
	}
	return food, other
}

// FindProductByURL resolves a product by its product_url, looking in the
// named source first and falling back to every loaded source. Returns the
// product and the source it was found in.
func (r *SnapshotRepository) FindProductByURL(source, productURL string) (*models.Product, string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if snap, ok := r.snapshots[source]; ok {
		if p := findByURL(snap, productURL); p != nil {
			return p, source, true
		}
	}
	for name, snap := range r.snapshots {
		if name == source {
			continue
		}
		if p := findByURL(snap, productURL); p != nil {
			return p, name, true
		}
	}
	return nil, "", false
}

func findByURL(snap *models.Snapshot, productURL string) *models.Product {
	for i := range snap.Products {
		if snap.Products[i].ProductURL != nil && *snap.Products[i].ProductURL == productURL {
			return &snap.Products[i]
		}
	}
	return nil
}

// viewCacheKey builds a deterministic key for a derived view from the
// canonical state encoding.
func (r *SnapshotRepository) viewCacheKey(prefix, source string, st catalog.State) string {
	canonical := catalog.EncodeState(st).Encode()
	hash := md5.Sum([]byte(canonical))
	return fmt.Sprintf("catalog:%s:%s:%s", prefix, source, hex.EncodeToString(hash[:]))
}

func (r *SnapshotRepository) invalidateDerivedViews(ctx context.Context) {
	if r.redis == nil {
		return
	}
	iter := r.redis.Scan(ctx, 0, "catalog:*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.log.WithError(err).Warn("Failed to scan derived view cache keys")
		return
	}
	if len(keys) > 0 {
		r.redis.Del(ctx, keys...)
	}
}
