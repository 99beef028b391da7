package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	q := `SELECT * FROM items WHERE id = ? AND inventory_id = ?`

	assert.Equal(t, q, DialectSQLite.rebind(q))
	assert.Equal(t, q, DialectMySQL.rebind(q))
	assert.Equal(t, `SELECT * FROM items WHERE id = $1 AND inventory_id = $2`, DialectPostgres.rebind(q))
}

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{
		"":           DialectSQLite,
		"sqlite":     DialectSQLite,
		"postgresql": DialectPostgres,
		"Postgres":   DialectPostgres,
		"mysql":      DialectMySQL,
	} {
		got, err := ParseDialect(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDialect("mongodb")
	assert.Error(t, err)
}
