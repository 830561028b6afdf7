// Package cache implementa ports.Cache en memoria del proceso.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Activos-api/internal/application/ports"
)

type entry struct {
	value     any
	expiresAt time.Time // cero = sin expiración
}

// Memory caché clave/valor con TTL opcional por entrada.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

var _ ports.Cache = (*Memory)(nil)

// NewMemory crea una caché vacía.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry), now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

// Get devuelve el valor si existe y no expiró.
func (m *Memory) Get(_ context.Context, key string) (any, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set guarda value. ttl <= 0 significa sin expiración.
func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
}

// Invalidate borra la clave. Borrar una clave inexistente no es error.
func (m *Memory) Invalidate(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// InvalidateAll vacía la caché.
func (m *Memory) InvalidateAll() {
	m.mu.Lock()
	m.entries = make(map[string]entry)
	m.mu.Unlock()
}
