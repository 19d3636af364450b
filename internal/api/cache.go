package api

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ringnet/quakecast/internal/model"
	"github.com/ringnet/quakecast/internal/quake"
)

// cacheKey ties a feature vector to the snapshot that scored it, so results
// from a replaced model are never served.
type cacheKey struct {
	snap     *model.Snapshot
	features [quake.FeatureCount]float64
}

type predictionCache struct {
	lru *lru.Cache[cacheKey, quake.Result]
}

// newPredictionCache returns nil when size <= 0; a nil cache never hits.
func newPredictionCache(size int) (*predictionCache, error) {
	if size <= 0 {
		return nil, nil
	}
	c, err := lru.New[cacheKey, quake.Result](size)
	if err != nil {
		return nil, err
	}
	return &predictionCache{lru: c}, nil
}

func keyFor(snap *model.Snapshot, features []float64) cacheKey {
	k := cacheKey{snap: snap}
	copy(k.features[:], features)
	return k
}

func (c *predictionCache) get(k cacheKey) (quake.Result, bool) {
	if c == nil {
		return quake.Result{}, false
	}
	return c.lru.Get(k)
}

func (c *predictionCache) add(k cacheKey, r quake.Result) {
	if c == nil {
		return
	}
	c.lru.Add(k, r)
}

func (c *predictionCache) purge() {
	if c == nil {
		return
	}
	c.lru.Purge()
}

func (c *predictionCache) len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
