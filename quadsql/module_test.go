package quadsql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/quadrec/catalog"
	"github.com/viant/quadrec/engine"
	"github.com/viant/quadrec/index/quad"
)

func newSource(t *testing.T) *quad.Index {
	t.Helper()
	idx := quad.New()
	require.NoError(t, idx.Build(
		[]string{"a", "b", "c"},
		[][]float32{{10, 10}, {90, 90}, {10, 90}},
	))
	return idx
}

func TestQuadVirtualTable(t *testing.T) {
	require.NoError(t, RegisterModule())
	db, err := engine.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Register("points", newSource(t)))
	defer Unregister("points")

	_, err = db.Exec(`CREATE VIRTUAL TABLE nn USING quad(points)`)
	require.NoError(t, err)

	rows, err := db.Query(`SELECT label, rank FROM nn WHERE label MATCH 'a' AND k = 2`)
	require.NoError(t, err)
	var labels []string
	var ranks []int
	for rows.Next() {
		var label string
		var rank int
		require.NoError(t, rows.Scan(&label, &rank))
		labels = append(labels, label)
		ranks = append(ranks, rank)
	}
	require.NoError(t, rows.Err())
	require.NoError(t, rows.Close())
	assert.Equal(t, []string{"b", "c"}, labels)
	assert.Equal(t, []int{1, 2}, ranks)

	var count int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM nn WHERE label MATCH 'b'`).Scan(&count))
	assert.Equal(t, 1, count, "root-held a is never a ring member")

	require.NoError(t, db.QueryRow(`SELECT count(*) FROM nn WHERE label MATCH 'missing' AND k = 3`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestQuadVirtualTable_AfterStoreOpened(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, RegisterModule())
	db, err := engine.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	store, err := catalog.NewSQLiteStore(ctx, db)
	require.NoError(t, err)
	require.NoError(t, store.SaveItems(ctx, []*catalog.Item{{Name: "a"}, {Name: "b"}, {Name: "c"}}))

	require.NoError(t, Register("stored", newSource(t)))
	defer Unregister("stored")
	_, err = db.ExecContext(ctx, `CREATE VIRTUAL TABLE temp.nn USING quad(stored)`)
	require.NoError(t, err)

	var names []string
	rows, err := db.QueryContext(ctx, `SELECT name FROM items
WHERE name IN (SELECT label FROM nn WHERE label MATCH 'a' AND k = 2) ORDER BY position`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"b", "c"}, names)
}

func TestRegister_Validation(t *testing.T) {
	assert.Error(t, Register("", nil))
	_, ok := lookup("absent")
	assert.False(t, ok)
}
