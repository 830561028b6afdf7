// seed_catalog genera un script SQL idempotente para poblar los catálogos
// (categorías, estados, sucursales y proveedores) a partir de una planilla CSV
// exportada desde Excel.
//
// Formato (separador ';', primera fila de encabezado):
//
//	tipo;codigo;nombre;extra
//
// tipo: categoria | estado | sucursal | proveedor.
// extra: código de la categoría padre (categoria), descripción (estado),
// dirección (sucursal) o persona de contacto (proveedor).
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.csv] [windows-1252|iso-8859-1|utf-8]
// Por defecto lee catalogo.csv en Windows-1252 y escribe seed_catalog.sql en el directorio actual.
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	kindCategory = "categoria"
	kindStatus   = "estado"
	kindBranch   = "sucursal"
	kindVendor   = "proveedor"
)

type record struct {
	kind  string
	code  string
	name  string
	extra string
}

type catalog struct {
	categories []record
	statuses   []record
	branches   []record
	vendors    []record
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	charset := "windows-1252"
	if len(os.Args) > 2 {
		charset = os.Args[2]
	}

	enc, err := decoderFor(charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Codificación: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cat, err := parseCatalog(transform.NewReader(f, enc.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}

	outPath := "seed_catalog.sql"
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, cat); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d categorías, %d estados, %d sucursales, %d proveedores\n",
		outPath, len(cat.categories), len(cat.statuses), len(cat.branches), len(cat.vendors))
}

// decoderFor traduce el nombre de la codificación de la planilla.
func decoderFor(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return charmap.ISO8859_1, nil
	case "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	default:
		return nil, fmt.Errorf("no soportada: %q", name)
	}
}

// parseCatalog lee la planilla ya decodificada a UTF-8.
// Las filas vacías se ignoran; un tipo desconocido o una categoría con más de dos niveles es error.
func parseCatalog(r io.Reader) (*catalog, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("planilla vacía")
	}

	cat := &catalog{}
	for i, row := range rows[1:] {
		line := i + 2
		rec := record{kind: strings.ToLower(field(row, 0)), code: field(row, 1), name: field(row, 2), extra: field(row, 3)}
		if rec.kind == "" && rec.name == "" {
			continue
		}
		if rec.name == "" {
			return nil, fmt.Errorf("línea %d: nombre vacío", line)
		}
		switch rec.kind {
		case kindCategory:
			if rec.code == "" {
				return nil, fmt.Errorf("línea %d: la categoría %q requiere código", line, rec.name)
			}
			cat.categories = append(cat.categories, rec)
		case kindStatus:
			cat.statuses = append(cat.statuses, rec)
		case kindBranch:
			if rec.code == "" {
				return nil, fmt.Errorf("línea %d: la sucursal %q requiere código", line, rec.name)
			}
			cat.branches = append(cat.branches, rec)
		case kindVendor:
			cat.vendors = append(cat.vendors, rec)
		default:
			return nil, fmt.Errorf("línea %d: tipo desconocido %q", line, rec.kind)
		}
	}

	if err := checkCategoryDepth(cat.categories); err != nil {
		return nil, err
	}
	// Raíces antes que subcategorías para que el subquery del padre encuentre la fila
	sort.SliceStable(cat.categories, func(i, j int) bool {
		return cat.categories[i].extra == "" && cat.categories[j].extra != ""
	})
	return cat, nil
}

func checkCategoryDepth(cats []record) error {
	parentOf := make(map[string]string, len(cats))
	for _, c := range cats {
		parentOf[c.code] = c.extra
	}
	for _, c := range cats {
		if c.extra == "" {
			continue
		}
		grand, ok := parentOf[c.extra]
		if !ok {
			return fmt.Errorf("categoría %s: padre %s no definido en la planilla", c.code, c.extra)
		}
		if grand != "" {
			return fmt.Errorf("categoría %s: solo se admiten dos niveles", c.code)
		}
	}
	return nil
}

// writeSQL escribe los INSERT con ON CONFLICT sobre las claves naturales.
func writeSQL(w io.Writer, cat *catalog) error {
	var b bytes.Buffer
	b.WriteString("-- Catálogos de activos de TI\n")
	b.WriteString("-- Generado por cmd/seed_catalog\n\n")

	if len(cat.branches) > 0 {
		b.WriteString("-- 1. Sucursales\n")
		b.WriteString("INSERT INTO branches (branch_code, branch_name, address) VALUES\n")
		for i, r := range cat.branches {
			fmt.Fprintf(&b, "  ('%s', '%s', '%s')%s\n", escapeSQL(r.code), escapeSQL(r.name), escapeSQL(r.extra), sep(i, len(cat.branches)))
		}
		b.WriteString("ON CONFLICT (branch_code) DO UPDATE SET branch_name = EXCLUDED.branch_name, address = EXCLUDED.address;\n\n")
	}

	if len(cat.statuses) > 0 {
		b.WriteString("-- 2. Estados\n")
		b.WriteString("INSERT INTO statuses (status_name, description) VALUES\n")
		for i, r := range cat.statuses {
			fmt.Fprintf(&b, "  ('%s', '%s')%s\n", escapeSQL(r.name), escapeSQL(r.extra), sep(i, len(cat.statuses)))
		}
		b.WriteString("ON CONFLICT (status_name) DO UPDATE SET description = EXCLUDED.description;\n\n")
	}

	if len(cat.vendors) > 0 {
		b.WriteString("-- 3. Proveedores\n")
		b.WriteString("INSERT INTO vendors (vendor_name, contact_person) VALUES\n")
		for i, r := range cat.vendors {
			fmt.Fprintf(&b, "  ('%s', '%s')%s\n", escapeSQL(r.name), escapeSQL(r.extra), sep(i, len(cat.vendors)))
		}
		b.WriteString("ON CONFLICT (vendor_name) DO UPDATE SET contact_person = EXCLUDED.contact_person;\n\n")
	}

	if len(cat.categories) > 0 {
		b.WriteString("-- 4. Categorías (raíces primero, luego subcategorías)\n")
		for _, r := range cat.categories {
			if r.extra == "" {
				fmt.Fprintf(&b, "INSERT INTO categories (code, name) VALUES ('%s', '%s')\n", escapeSQL(r.code), escapeSQL(r.name))
			} else {
				b.WriteString("INSERT INTO categories (parent_id, code, name)\n")
				fmt.Fprintf(&b, "SELECT id, '%s', '%s' FROM categories WHERE code = '%s'\n",
					escapeSQL(r.code), escapeSQL(r.name), escapeSQL(r.extra))
			}
			b.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name;\n")
		}
	}

	_, err := w.Write(b.Bytes())
	return err
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func sep(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
