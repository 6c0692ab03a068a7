package database

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func readSchema(t *testing.T) string {
	t.Helper()
	ddl, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	assert.NoError(t, err)
	return string(ddl)
}

// Los ids son TEXT y los acuña la aplicación. Con columnas UUID un id mal
// formado en la URL rompería el cast en el WHERE con un error 22P02 en vez
// de resolver a cero filas, y el 404 se convertiría en 500.
func TestSchemaUsesTextIDs(t *testing.T) {
	ddl := readSchema(t)

	assert.NotRegexp(t, regexp.MustCompile(`(?i)\bUUID\b`), ddl)
	assert.Regexp(t, `id\s+TEXT PRIMARY KEY`, ddl)
}

// Los slugs direccionan contenido por URL: tienen que ser únicos en DDL,
// no solo por convención del seed.
func TestSchemaEnforcesUniqueSlugs(t *testing.T) {
	ddl := readSchema(t)

	for _, table := range []string{"business_models", "programs", "legal_pages", "page_contents"} {
		stmt := tableDDL(t, ddl, table)
		assert.Regexp(t, `slug\s+TEXT NOT NULL UNIQUE`, stmt, "tabla %s", table)
	}

	settings := tableDDL(t, ddl, "site_settings")
	assert.Regexp(t, `key\s+TEXT NOT NULL UNIQUE`, settings)
}

func tableDDL(t *testing.T, ddl, table string) string {
	t.Helper()
	re := regexp.MustCompile(`(?s)CREATE TABLE ` + table + ` \(.*?\);`)
	stmt := re.FindString(ddl)
	assert.NotEmpty(t, stmt, "falta CREATE TABLE %s", table)
	return stmt
}
