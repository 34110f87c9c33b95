package splitmap

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDB(t *testing.T) {
	db, err := NewConvertDB(filepath.Join(t.TempDir(), "manifest.db"))
	require.NoError(t, err)
	defer db.Close()

	const sha = "DA39A3EE5E6B4B0D3255BFEF95601890AFD80709"

	output, err := db.FindOutput(sha, false, "png", 2, 2)
	require.NoError(t, err)
	assert.Empty(t, output)

	require.NoError(t, db.Record(sha, false, "png", 2, 2, 0, 65535, "/tmp/out.png"))

	output, err = db.FindOutput(sha, false, "png", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out.png", output)

	// Other option combinations do not match.
	for _, find := range []func() (string, error){
		func() (string, error) { return db.FindOutput(sha, true, "png", 2, 2) },
		func() (string, error) { return db.FindOutput(sha, false, "tiff", 2, 2) },
		func() (string, error) { return db.FindOutput(sha, false, "png", 4, 4) },
	} {
		output, err = find()
		require.NoError(t, err)
		assert.Empty(t, output)
	}

	// Re-recording replaces the row.
	require.NoError(t, db.Record(sha, false, "png", 2, 2, 0, 65535, "/tmp/other.png"))
	output, err = db.FindOutput(sha, false, "png", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.png", output)
}
