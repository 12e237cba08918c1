package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: "json", Output: &buf})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Int("rounds", 20).Msg("fit done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "fit done", entry["message"])
	assert.EqualValues(t, 20, entry["rounds"])
	assert.Contains(t, entry, "time")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "debug", Output: &buf, NoColor: true})
	require.NoError(t, err)

	log.Debug().Str("kind", "cubic").Msg("baseline")
	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "kind=cubic")
}

func TestNewDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Format: "json", Output: &buf})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNewInvalid(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Config{Level: "info", Format: "xml"})
	assert.Error(t, err)
}
