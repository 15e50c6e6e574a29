// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cases

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "cases.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStorePutGet(t *testing.T) {
	store := openTestStore(t)

	row := map[string]any{
		"submitter_id":     "TCGA-AB-1234",
		"project_id":       "TCGA-BRCA",
		"sex":              "female",
		"age_at_diagnosis": 61.0,
	}
	require.NoError(t, store.Put("c-1", row))

	got, err := store.Get("c-1")
	require.NoError(t, err)
	assert.Equal(t, "TCGA-AB-1234", got["submitter_id"])
	assert.Equal(t, "female", got["sex"])
	assert.Equal(t, 61.0, got["age_at_diagnosis"])

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStorePutReplaces(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("c-1", map[string]any{"sex": "female"}))
	require.NoError(t, store.Put("c-1", map[string]any{"sex": "male"}))

	got, err := store.Get("c-1")
	require.NoError(t, err)
	assert.Equal(t, "male", got["sex"])

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStoreGetAbsent(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("no-such-case")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStorePutTable(t *testing.T) {
	store := openTestStore(t)

	table := NewTable()
	table.Add("c-1", map[string]any{"submitter_id": "s-1", "project_id": "TCGA-BRCA"})
	table.Add("c-2", map[string]any{"submitter_id": "s-2", "project_id": "TCGA-LUAD"})
	table.Add("c-3", map[string]any{"submitter_id": "s-3"})

	require.NoError(t, store.PutTable(table))

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := store.Get("c-2")
	require.NoError(t, err)
	assert.Equal(t, "TCGA-LUAD", got["project_id"])
}
