package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/infrastructure/cache"
)

func TestMemory_SetGetInvalidate(t *testing.T) {
	const key = "dashboard_summary"
	ctx := context.Background()
	c := cache.NewMemory()

	_, ok := c.Get(ctx, key)
	assert.False(t, ok)

	c.Set(ctx, key, 42, 0)
	v, ok := c.Get(ctx, key)
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	assert.NoError(t, c.Invalidate(ctx, key))
	_, ok = c.Get(ctx, key)
	assert.False(t, ok)

	assert.NoError(t, c.Invalidate(ctx, "no-existe"), "invalidar una clave ausente no falla")
}

func TestMemory_Expiracion(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	c := cache.NewMemory().WithClock(func() time.Time { return now })

	c.Set(ctx, "k", "v", time.Minute)
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok, "la entrada expira al cumplirse el TTL")
}

func TestMemory_InvalidateAll(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory()
	c.Set(ctx, "a", 1, 0)
	c.Set(ctx, "b", 2, 0)
	c.InvalidateAll()
	_, okA := c.Get(ctx, "a")
	_, okB := c.Get(ctx, "b")
	assert.False(t, okA)
	assert.False(t, okB)
}

func TestMemory_AccesoConcurrente(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set(ctx, "k", i, 0)
			c.Get(ctx, "k")
			_ = c.Invalidate(ctx, "k")
		}(i)
	}
	wg.Wait()
}
