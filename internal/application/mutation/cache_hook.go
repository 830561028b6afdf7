package mutation

import (
	"context"
	"errors"

	"github.com/jhoicas/Activos-api/internal/application/ports"
)

// CacheInvalidator borra entradas de caché cuando cambia alguna de las entidades observadas.
// Cada clave se invalida una sola vez por operación, aunque la operación toque muchas filas.
type CacheInvalidator struct {
	cache    ports.Cache
	keys     []string
	watching map[string]struct{}
}

// NewCacheInvalidator observa los tipos de entidad dados e invalida keys.
func NewCacheInvalidator(cache ports.Cache, keys []string, entityTypes ...string) *CacheInvalidator {
	watching := make(map[string]struct{}, len(entityTypes))
	for _, t := range entityTypes {
		watching[t] = struct{}{}
	}
	return &CacheInvalidator{cache: cache, keys: keys, watching: watching}
}

// Name identifica el hook en logs.
func (c *CacheInvalidator) Name() string { return "cache-invalidation" }

// AfterCommit invalida las claves si alguna mutación afecta una entidad observada.
func (c *CacheInvalidator) AfterCommit(ctx context.Context, mutations []Mutation) error {
	if !c.affected(mutations) {
		return nil
	}
	var errs []error
	for _, key := range c.keys {
		if err := c.cache.Invalidate(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *CacheInvalidator) affected(mutations []Mutation) bool {
	for _, m := range mutations {
		if _, ok := c.watching[m.EntityType]; ok {
			return true
		}
	}
	return false
}
