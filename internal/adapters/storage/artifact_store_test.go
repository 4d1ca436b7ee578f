package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"eventease/internal/domain"
)

func TestFileArtifactStore_WritePathRemove(t *testing.T) {
	store, err := NewFileArtifactStore(filepath.Join(t.TempDir(), "tickets"))
	require.NoError(t, err)

	code := "11111111-2222-3333-4444-555555555555"
	require.NoError(t, store.Write(code, []byte("png-bytes")))

	path, err := store.Path(code)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, store.Remove(code))
	_, err = store.Path(code)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileArtifactStore_MissingArtifact(t *testing.T) {
	store, err := NewFileArtifactStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Path("11111111-2222-3333-4444-555555555555")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, store.Remove("11111111-2222-3333-4444-555555555555"), domain.ErrNotFound)
}

func TestFileArtifactStore_RejectsHostileCodes(t *testing.T) {
	store, err := NewFileArtifactStore(t.TempDir())
	require.NoError(t, err)

	for _, code := range []string{"", "../escape", "a/b", `a\b`, "trailing."} {
		require.ErrorIs(t, store.Write(code, []byte("x")), domain.ErrNotFound, "code %q", code)
		_, err := store.Path(code)
		require.ErrorIs(t, err, domain.ErrNotFound, "code %q", code)
	}
}
