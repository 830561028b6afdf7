package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const planilla = `tipo;codigo;nombre;extra
categoria;COMP-LAP;Portátiles;COMP
categoria;COMP;Computadores;
estado;;En préstamo;Asignado temporalmente
sucursal;BOG;Bogotá;Cra 7 # 32-16
proveedor;;O'Neill Soporte;María Peña
;;;
`

func TestParseCatalog_Windows1252(t *testing.T) {
	raw, err := charmap.Windows1252.NewEncoder().String(planilla)
	require.NoError(t, err)

	enc, err := decoderFor("cp1252")
	require.NoError(t, err)
	cat, err := parseCatalog(transform.NewReader(strings.NewReader(raw), enc.NewDecoder()))
	require.NoError(t, err)

	require.Len(t, cat.categories, 2)
	assert.Equal(t, "COMP", cat.categories[0].code, "raíz primero")
	assert.Equal(t, "Portátiles", cat.categories[1].name)
	require.Len(t, cat.statuses, 1)
	assert.Equal(t, "En préstamo", cat.statuses[0].name)
	require.Len(t, cat.branches, 1)
	assert.Equal(t, "Bogotá", cat.branches[0].name)
	require.Len(t, cat.vendors, 1)
}

func TestParseCatalog_Errores(t *testing.T) {
	cases := map[string]string{
		"tipo desconocido": "tipo;codigo;nombre;extra\nbodega;B1;Central;\n",
		"tercer nivel":     "tipo;codigo;nombre;extra\ncategoria;A;A;\ncategoria;B;B;A\ncategoria;C;C;B\n",
		"padre ausente":    "tipo;codigo;nombre;extra\ncategoria;B;B;X\n",
		"sucursal sin cod": "tipo;codigo;nombre;extra\nsucursal;;Cali;\n",
		"vacía":            "",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseCatalog(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestWriteSQL(t *testing.T) {
	cat, err := parseCatalog(strings.NewReader(planilla))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writeSQL(&out, cat))
	sql := out.String()

	assert.Contains(t, sql, "('BOG', 'Bogotá', 'Cra 7 # 32-16')\nON CONFLICT (branch_code)")
	assert.Contains(t, sql, "('O''Neill Soporte', 'María Peña')")
	assert.Contains(t, sql, "('En préstamo', 'Asignado temporalmente')")
	assert.Contains(t, sql, "SELECT id, 'COMP-LAP', 'Portátiles' FROM categories WHERE code = 'COMP'")
	assert.Less(t, strings.Index(sql, "VALUES ('COMP', 'Computadores')"), strings.Index(sql, "'COMP-LAP'"))
}

func TestDecoderFor_Desconocida(t *testing.T) {
	_, err := decoderFor("ebcdic")
	assert.Error(t, err)
}
