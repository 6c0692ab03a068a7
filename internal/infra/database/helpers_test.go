package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

func TestSetClauseKeepsColumnOrder(t *testing.T) {
	patch := entity.Patch{
		"published":  false,
		"name":       "Élite",
		"sort_order": 2,
	}
	columns := []string{"slug", "name", "sort_order", "published"}

	clause, args := setClause(patch, columns)

	assert.Equal(t, "name = $1, sort_order = $2, published = $3", clause)
	assert.Equal(t, []any{"Élite", 2, false}, args)
}

func TestSetClauseWrapsJSONValues(t *testing.T) {
	patch := entity.Patch{
		"features": []string{"a", "b"},
		"metadata": map[string]any{"song": "vals"},
	}

	_, args := setClause(patch, []string{"features", "metadata"})

	assert.IsType(t, stringList(nil), args[0])
	assert.IsType(t, jsonMap(nil), args[1])
}

func TestSetClauseSkipsAbsentColumns(t *testing.T) {
	clause, args := setClause(entity.Patch{"other": 1}, []string{"name"})

	assert.Empty(t, clause)
	assert.Nil(t, args)
}

func TestStringListValueDefaultsToEmptyArray(t *testing.T) {
	v, err := stringList(nil).Value()

	assert.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}

func TestStringListScanRoundTrip(t *testing.T) {
	var l stringList
	assert.NoError(t, l.Scan([]byte(`["Clases 100% personalizadas","Horario flexible"]`)))
	assert.Equal(t, stringList{"Clases 100% personalizadas", "Horario flexible"}, l)
}

func TestJSONMapValueNilIsSQLNull(t *testing.T) {
	v, err := jsonMap(nil).Value()

	assert.NoError(t, err)
	assert.Nil(t, v)
}
