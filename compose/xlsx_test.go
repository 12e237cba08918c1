package compose

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.xlsx")

	require.NoError(t, WriteXLSX(path, fixture))

	got, err := ReadXLSX(path)
	require.NoError(t, err)
	assert.InDeltaSlice(t, fixture.X, got.X, 1e-12)
	assert.InDeltaSlice(t, fixture.Raw, got.Raw, 1e-12)
	assert.InDeltaSlice(t, fixture.Background, got.Background, 1e-12)
	assert.InDeltaSlice(t, fixture.Net, got.Net, 1e-12)
}

func TestReadXLSXMissing(t *testing.T) {
	_, err := ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteFile(path, fixture, WriteAutoResult))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteAutoResult(&buf, fixture))
	assert.Equal(t, buf.String(), string(data))
}
