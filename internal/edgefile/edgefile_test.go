package edgefile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/campusroute/internal/domain"
)

var sample = []domain.Edge{
	{Source: "Library", Destination: "Cafeteria", Distance: 120},
	{Source: "Cafeteria", Destination: "Gym", Distance: 80.5},
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus.yaml")
	doc := `edges:
  - source: Library
    destination: Cafeteria
    distance: 120
  - source: Cafeteria
    destination: Gym
    distance: 80.5
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	edges, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sample, edges)
}

func TestWriteThenLoad(t *testing.T) {
	for _, name := range []string{"edges.json", "edges.yml", "nested/dir/edges.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Write(path, sample))

			edges, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, sample, edges)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	csvPath := filepath.Join(dir, "edges.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("A,B,1\n"), 0o644))
	_, err = Load(csvPath)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("{"), 0o644))
	_, err = Load(badPath)
	require.Error(t, err)

	require.ErrorIs(t, Write(filepath.Join(dir, "out.txt"), sample), ErrUnsupportedFormat)
}

func TestSource(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "edges.json")
	src := NewSource(path)

	require.Error(t, src.Ping(ctx))
	require.NoError(t, Write(path, sample))
	require.NoError(t, src.Ping(ctx))

	edges, err := src.ListEdges(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample, edges)

	assert.ErrorIs(t, src.UpsertEdge(ctx, sample[0]), ErrReadOnly)
	assert.NoError(t, src.Close(ctx))
}
