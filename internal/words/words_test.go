package words

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFiltersAndSorts(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"Table",
		"apple",
		"  stale  ",
		"apple", // duplicate
		"toolong",
		"ab1de", // non-alphabetic
		"cat",   // wrong length
		"",
	}, "\n"))

	got, err := Read(in, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "stale", "table"}, got)
}

func TestReadRejectsBadInput(t *testing.T) {
	_, err := Read(strings.NewReader("apple"), 0)
	assert.Error(t, err)

	_, err = Read(strings.NewReader("cat\ndog\n"), 5)
	assert.Error(t, err, "no words of the requested length")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("zesty\napple\n"), 0o644))

	got, err := Load(path, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "zesty"}, got)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"), 5)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	got, err := Default(5)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.True(t, sort.StringsAreSorted(got))
	for _, w := range got {
		assert.Len(t, w, 5)
	}

	_, err = Default(9)
	assert.Error(t, err, "embedded list has no 9-letter words")
}

func TestFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\n"), 0o644))
	t.Setenv(EnvFile, path)

	got, err := FromEnv(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane"}, got)
}
