package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadURLs_EquivalentShapes(t *testing.T) {
	want := []string{"https://www.airbnb.com/rooms/1", "https://www.airbnb.com/rooms/2"}

	shapes := map[string]string{
		"string array":        `["https://www.airbnb.com/rooms/1", "https://www.airbnb.com/rooms/2"]`,
		"startUrl objects":    `[{"startUrl": "https://www.airbnb.com/rooms/1"}, {"startUrl": "https://www.airbnb.com/rooms/2"}]`,
		"url objects":         `[{"url": "https://www.airbnb.com/rooms/1"}, {"url": "https://www.airbnb.com/rooms/2"}]`,
		"nested startUrls":    `[{"startUrls": ["https://www.airbnb.com/rooms/1", "https://www.airbnb.com/rooms/2"]}]`,
		"top-level startUrls": `{"startUrls": ["https://www.airbnb.com/rooms/1", "https://www.airbnb.com/rooms/2"]}`,
		"top-level urls":      `{"urls": ["https://www.airbnb.com/rooms/1", "https://www.airbnb.com/rooms/2"]}`,
	}

	for name, content := range shapes {
		t.Run(name, func(t *testing.T) {
			urls, err := LoadURLs(writeInput(t, content))
			require.NoError(t, err)
			assert.Equal(t, want, urls)
		})
	}
}

func TestLoadURLs_MixedEntriesAndBlanks(t *testing.T) {
	urls, err := LoadURLs(writeInput(t, `[
		"https://www.airbnb.com/rooms/1",
		"  ",
		{"url": "https://www.airbnb.com/rooms/2"},
		{"note": "no url here"},
		42
	]`))

	require.NoError(t, err)
	assert.Equal(t, []string{"https://www.airbnb.com/rooms/1", "https://www.airbnb.com/rooms/2"}, urls)
}

func TestLoadURLs_Errors(t *testing.T) {
	_, err := LoadURLs(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadURLs(writeInput(t, `{"urls": [`))
	assert.Error(t, err)

	_, err = LoadURLs(writeInput(t, `"just a string"`))
	assert.Error(t, err)

	_, err = LoadURLs(writeInput(t, `[{"note": "nothing usable"}]`))
	assert.Error(t, err)
}
