package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhere(t *testing.T) {
	var w where
	assert.Equal(t, "", w.String())

	w.add("user_id = ?", "u1")
	w.dateRange("date", "2024-05-01", "")
	w.add("type = ?", "sale")
	assert.Equal(t, " WHERE user_id = $1 AND date >= $2::date AND type = $3", w.String())
	assert.Equal(t, []any{"u1", "2024-05-01", "sale"}, w.args)
}

func TestSchemaStatements(t *testing.T) {
	stmts := schemaStatements()
	assert.NotEmpty(t, stmts)
	for _, s := range stmts {
		assert.NotContains(t, s, "--")
	}
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS users")
}

// Las escalas de las columnas coinciden con las que admite commission.Update.
func TestSchemaStatements_CommissionScale(t *testing.T) {
	var create, alter string
	for _, s := range schemaStatements() {
		if strings.HasPrefix(s, "CREATE TABLE IF NOT EXISTS commission_configs") {
			create = s
		}
		if strings.HasPrefix(s, "ALTER TABLE commission_configs") {
			alter = s
		}
	}
	assert.Regexp(t, `percentage\s+NUMERIC\(7,4\)`, create)
	assert.Regexp(t, `fixed_amount\s+NUMERIC\(14,2\)`, create)
	assert.Contains(t, alter, "percentage TYPE NUMERIC(7,4)")
}
