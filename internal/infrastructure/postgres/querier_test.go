package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain"
)

func TestWhere_NumeraPlaceholders(t *testing.T) {
	var w where
	assert.Equal(t, "", w.sql())

	w.add("branch_id = $%d", int64(3))
	w.add("(asset_tag ILIKE $%[1]d OR asset_name ILIKE $%[1]d)", "%lap%")

	assert.Equal(t, " WHERE branch_id = $1 AND (asset_tag ILIKE $2 OR asset_name ILIKE $2)", w.sql())
	assert.Equal(t, []any{int64(3), "%lap%"}, w.args)
	assert.Equal(t, 3, w.next())
}

func TestPageArgs(t *testing.T) {
	limit, offset := pageArgs(0, -5)
	assert.Nil(t, limit)
	assert.Equal(t, 0, offset)

	limit, offset = pageArgs(20, 40)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 40, offset)
}

func TestWrap_TraduceConstraints(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	fk := &pgconn.PgError{Code: "23503"}
	other := errors.New("timeout")

	assert.ErrorIs(t, wrap("insert branch", unique), domain.ErrDuplicate)
	assert.ErrorIs(t, wrap("delete asset", fmt.Errorf("exec: %w", fk)), domain.ErrConflict)

	err := wrap("insert vendor", other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "insert vendor: timeout", err.Error())
}
