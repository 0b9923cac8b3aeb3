package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fitconnect/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// catalog rows change only with a schema migration, an hour is plenty
const cacheExpireSeconds = 60 * 60

type source interface {
	ListExercises(ctx context.Context, muscleGroup string) ([]Exercise, error)
	GetExercise(ctx context.Context, id int) (Exercise, error)
	SearchFoods(ctx context.Context, query string) ([]Food, error)
	GetFood(ctx context.Context, id int) (Food, error)
}

// CachedLookup resolves exercise and food ids through an in-memory freecache,
// falling back to the source on a miss. List and search calls are not cached.
type CachedLookup struct {
	src   source
	cache *freecache.Cache
}

func NewCachedLookup(src source, cacheSizeMB int) *CachedLookup {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 16
	}
	megabyte := 1024 * 1024
	return &CachedLookup{
		src:   src,
		cache: freecache.NewCache(cacheSizeMB * megabyte),
	}
}

func (c *CachedLookup) ListExercises(ctx context.Context, muscleGroup string) ([]Exercise, error) {
	return c.src.ListExercises(ctx, muscleGroup)
}

func (c *CachedLookup) SearchFoods(ctx context.Context, query string) ([]Food, error) {
	return c.src.SearchFoods(ctx, query)
}

func (c *CachedLookup) Exercise(ctx context.Context, id int) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.lookup.exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := []byte(fmt.Sprintf("exercise::%d", id))
	var e Exercise
	if c.fromCache(key, &e) {
		return e, nil
	}

	e, err = c.src.GetExercise(ctx, id)
	if err != nil {
		return Exercise{}, err
	}
	c.toCache(key, e)

	return e, nil
}

func (c *CachedLookup) Food(ctx context.Context, id int) (_ Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.lookup.food")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := []byte(fmt.Sprintf("food::%d", id))
	var f Food
	if c.fromCache(key, &f) {
		return f, nil
	}

	f, err = c.src.GetFood(ctx, id)
	if err != nil {
		return Food{}, err
	}
	c.toCache(key, f)

	return f, nil
}

func (c *CachedLookup) HitCount() int64 {
	return c.cache.HitCount()
}

func (c *CachedLookup) MissCount() int64 {
	return c.cache.MissCount()
}

func (c *CachedLookup) fromCache(key []byte, v any) bool {
	b, err := c.cache.Get(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		log.Errorf("catalog cache, unmarshal [%s]: %s", key, err)
		return false
	}
	return true
}

func (c *CachedLookup) toCache(key []byte, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Errorf("catalog cache, marshal [%s]: %s", key, err)
		return
	}
	if err := c.cache.Set(key, b, cacheExpireSeconds); err != nil {
		log.Errorf("catalog cache, set [%s]: %s", key, err)
	}
}
