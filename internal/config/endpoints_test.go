package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEndpointsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEndpointsConfig(t *testing.T) {
	path := writeEndpointsFile(t, `
endpoints:
  - name: top-headlines-us
    url: https://newsapi.example/v2/top-headlines?country=us
  - name: top-headlines-tech
    url: https://newsapi.example/v2/top-headlines?category=technology
`)

	cfg, err := LoadEndpointsConfig(path)

	require.NoError(t, err)
	require.Len(t, cfg.Endpoints, 2)
	assert.Equal(t, "top-headlines-us", cfg.Endpoints[0].Name)
	assert.Equal(t, []string{
		"https://newsapi.example/v2/top-headlines?country=us",
		"https://newsapi.example/v2/top-headlines?category=technology",
	}, cfg.URLs())
}

func TestLoadEndpointsConfig_missingFile(t *testing.T) {
	_, err := LoadEndpointsConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read endpoints file")
}

func TestLoadEndpointsConfig_malformedYAML(t *testing.T) {
	path := writeEndpointsFile(t, "endpoints: [unclosed")

	_, err := LoadEndpointsConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse endpoints file")
}

func TestLoadEndpointsConfig_validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "empty list",
			content: "endpoints: []",
		},
		{
			name: "endpoint without url",
			content: `
endpoints:
  - name: nameless
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeEndpointsFile(t, tt.content)

			_, err := LoadEndpointsConfig(path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}
