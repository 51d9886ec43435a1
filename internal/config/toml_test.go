package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTomlFile(t *testing.T) {
	tcs := []struct {
		name   string
		setup  func(t *testing.T) (string, []string)
		assert func(t *testing.T, path string, err error)
	}{
		{
			name: "custom path exists",
			setup: func(t *testing.T) (string, []string) {
				return writeConfigFile(t, ""), nil
			},
			assert: func(t *testing.T, path string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, path)
			},
		},
		{
			name: "custom path not found",
			setup: func(t *testing.T) (string, []string) {
				return "nonexistent.toml", nil
			},
			assert: func(t *testing.T, path string, err error) {
				assert.Error(t, err)
				assert.Empty(t, path)
			},
		},
		{
			name: "found in lookup paths",
			setup: func(t *testing.T) (string, []string) {
				return "", []string{"", "nonexistent", writeConfigFile(t, "")}
			},
			assert: func(t *testing.T, path string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, configFilename, filepath.Base(path))
			},
		},
		{
			name: "not found in lookup paths",
			setup: func(t *testing.T) (string, []string) {
				return "", []string{"nonexistent"}
			},
			assert: func(t *testing.T, path string, err error) {
				assert.NoError(t, err)
				assert.Empty(t, path)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			customPath, lookupPaths := tc.setup(t)
			path, err := searchTomlFile(customPath, lookupPaths)
			tc.assert(t, path, err)
		})
	}
}

func TestFromTomlFile(t *testing.T) {
	tcs := []struct {
		name    string
		content string
		assert  func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:    "empty file",
			content: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Nil(t, cfg.General)
				assert.Nil(t, cfg.Bench)
			},
		},
		{
			name: "sections",
			content: `
[general]
silent = true

[bench]
sizes = ["1k"]
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.True(t, *cfg.General.Silent)
				assert.Equal(t, []int{1000}, cfg.Bench.Sizes)
			},
		},
		{
			name:    "invalid value",
			content: "[bench]\nmin = \"zero\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				assert.ErrorContains(t, err, "min")
			},
		},
		{
			name:    "malformed toml",
			content: "[bench\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))
			cfg, err := fromTomlFile(path)
			tc.assert(t, cfg, err)
		})
	}
}
