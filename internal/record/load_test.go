package record

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "consultation.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeTempFile(t, `{"patient":{"name":"Milo","age":4},"consultation":{}}`)

	doc, err := Load(path)
	require.NoError(t, err)

	root, ok := doc.(map[string]any)
	require.True(t, ok)
	patient, ok := root["patient"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Milo", patient["name"])
	assert.Equal(t, json.Number("4"), patient["age"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeTempFile(t, `not valid json`)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidJSON)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeTempFile(t, ``)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidJSON)
}

func TestDecode_TrailingData(t *testing.T) {
	_, err := Decode(strings.NewReader(`{} {}`))
	require.ErrorIs(t, err, ErrInvalidJSON)
}

func TestDecode_NonObjectRoot(t *testing.T) {
	doc, err := Decode(strings.NewReader(`[1, 2]`))
	require.NoError(t, err)
	assert.IsType(t, []any{}, doc)
}
