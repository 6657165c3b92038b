package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("order_drafts").
		Where(squirrel.Eq{"id": "d1", "user_id": 7}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM order_drafts WHERE id = $1 AND user_id = $2", query)
	assert.Equal(t, []interface{}{"d1", 7}, args)
}
