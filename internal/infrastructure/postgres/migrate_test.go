package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgx5URL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/activos?sslmode=disable", pgx5URL("postgres://u:p@db:5432/activos?sslmode=disable"))
	assert.Equal(t, "pgx5://u@db/activos", pgx5URL("postgresql://u@db/activos"))
	assert.Equal(t, "pgx5://ya/convertido", pgx5URL("pgx5://ya/convertido"))
}

func TestMigrationsEmbebidas_PareadasUpDown(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("archivo inesperado en migrations: %s", name)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestMigrationInicial_HistorialConRestrict(t *testing.T) {
	raw, err := fs.ReadFile(migrationsFS, "migrations/000001_init_schema.up.sql")
	require.NoError(t, err)
	sql := string(raw)

	assert.Contains(t, sql, "asset_id         BIGINT      NOT NULL REFERENCES assets (id) ON DELETE RESTRICT")
	assert.Contains(t, sql, "version                 BIGINT         NOT NULL DEFAULT 1")
	assert.Contains(t, sql, "changes     JSONB")
}

func TestMigrationInicial_SinCascadasSobreEntidadesAuditadas(t *testing.T) {
	raw, err := fs.ReadFile(migrationsFS, "migrations/000001_init_schema.up.sql")
	require.NoError(t, err)
	sql := string(raw)

	// Un borrado en cascada o un SET NULL cambiaría filas auditadas sin pasar por la bitácora.
	assert.NotContains(t, sql, "ON DELETE CASCADE")
	assert.NotContains(t, sql, "ON DELETE SET NULL")
	assert.Contains(t, sql, "branch_id    BIGINT       NOT NULL REFERENCES branches (id) ON DELETE RESTRICT")
	assert.Contains(t, sql, "section_id  BIGINT REFERENCES sections (id) ON DELETE RESTRICT")
}
