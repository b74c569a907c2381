package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("pricing_rules").
		Where(squirrel.Eq{"space_id": int64(4)}).
		Where(squirrel.Eq{"space_type": "cabin"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM pricing_rules WHERE space_id = $1 AND space_type = $2", query)
	assert.Equal(t, []interface{}{int64(4), "cabin"}, args)
}

func TestSelect_NilBecomesIsNull(t *testing.T) {
	query, args, err := Select("id").
		From("pricing_rules").
		Where(squirrel.Eq{"space_id": nil}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM pricing_rules WHERE space_id IS NULL", query)
	assert.Empty(t, args)
}
