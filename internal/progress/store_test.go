package progress

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-survivor/internal/defs"
)

func writeProgress(t *testing.T, store *Store, p *GameProgress) {
	t.Helper()
	data, err := Encode(p)
	require.NoError(t, err)
	require.NoError(t, store.WriteRaw(data))
}

func TestStoreLoadMissingReturnsDefault(t *testing.T) {
	store := NewStore(afero.NewMemMapFs(), "saves")

	assert.Equal(t, Default(), store.Load())
	assert.Equal(t, "saves/pixel_survivor_save_v3.json", store.Path())
}

func TestStoreSaveAndLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "saves")
	p := Default()
	p.ClearedChallengeStage = 3
	p.Progression[defs.ClassGunner].Level = 4

	writeProgress(t, store, p)

	assert.Equal(t, p, NewStore(fs, "saves").Load())
	exists, err := afero.Exists(fs, store.Path()+".tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStoreLoadMalformedFallsBack(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "saves")
	require.NoError(t, afero.WriteFile(fs, store.Path(), []byte("{broken"), 0644))

	assert.Equal(t, Default(), store.Load())
}

func TestStoreReset(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "saves")
	writeProgress(t, store, Default())

	require.NoError(t, store.Reset())
	require.NoError(t, store.Reset())

	exists, err := afero.Exists(fs, store.Path())
	require.NoError(t, err)
	assert.False(t, exists)
}
