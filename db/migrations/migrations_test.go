package migrations

import (
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	ups, err := fs.Glob(FS, "*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(FS, "*.down.sql")
	require.NoError(t, err)
	assert.Len(t, ups, Version)
	assert.Len(t, downs, Version)
}

// Money columns must round-trip float64 amounts unchanged.
func TestMoneyColumnsKeepFloatPrecision(t *testing.T) {
	raw, err := fs.ReadFile(FS, "000001_init.up.sql")
	require.NoError(t, err)
	schema := string(raw)

	assert.NotRegexp(t, `(?i)numeric|decimal`, schema)
	for _, col := range []string{"total_budget", "rate_per_thousand", "max_payout_per_submission", "payment_amount"} {
		assert.Regexp(t, regexp.MustCompile(`(?m)^\s*`+col+`\s+DOUBLE PRECISION`), schema, col)
	}
}
