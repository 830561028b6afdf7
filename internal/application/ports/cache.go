package ports

import (
	"context"
	"time"
)

// Cache almacén clave/valor para agregados recalculables.
// Invalidate borra la entrada completa; no existen actualizaciones incrementales.
type Cache interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	Invalidate(ctx context.Context, key string) error
}
