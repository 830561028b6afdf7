package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae pgxpool.Pool y pgx.Tx para que los repositorios funcionen dentro o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// rowScanner permite compartir funciones de scan entre pgx.Row y pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// pageArgs normaliza límite/desplazamiento: limit <= 0 equivale a sin límite.
func pageArgs(limit, offset int) (any, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		return nil, offset
	}
	return limit, offset
}

// where acumula condiciones con placeholders posicionales ($n).
type where struct {
	conds []string
	args  []any
}

// add agrega una condición; expr usa %[1]d para el número del placeholder.
func (w *where) add(expr string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(expr, len(w.args)))
}

// sql devuelve la cláusula WHERE (vacía si no hay condiciones).
func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// next número del siguiente placeholder libre.
func (w *where) next() int {
	return len(w.args) + 1
}
