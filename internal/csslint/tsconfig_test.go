package csslint

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTSConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), TSConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTSConfig(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantPaths   AliasTable
		wantExclude []string
	}{
		{
			name: "comments and trailing commas",
			content: `{
  // editor settings live elsewhere
  "compilerOptions": {
    "baseUrl": ".",
    /* aliases */
    "paths": {
      "@styles/*": ["src/styles/*"],
      "@/*": ["src/*", "generated/*"],
    },
  },
  "exclude": ["node_modules", "dist/**",],
}`,
			wantPaths: AliasTable{
				"@styles/*": {"src/styles/*"},
				"@/*":       {"src/*", "generated/*"},
			},
			wantExclude: []string{"node_modules", "dist/**"},
		},
		{
			name:      "no compiler options",
			content:   `{"include": ["src"]}`,
			wantPaths: AliasTable{},
		},
		{
			name: "dotted alias pattern",
			content: `{"compilerOptions": {"paths": {
  "@app.styles/*": ["src/styles/*"]
}}}`,
			wantPaths: AliasTable{"@app.styles/*": {"src/styles/*"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadTSConfig(writeTSConfig(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantPaths, cfg.CompilerOptions.Paths)
			assert.Equal(t, tt.wantExclude, cfg.Exclude)
		})
	}
}

func TestLoadTSConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTSConfig(filepath.Join(t.TempDir(), TSConfigFile))

		var ce *ConfigError
		require.True(t, errors.As(err, &ce))
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "is the provided directory a TypeScript project?")
	})

	t.Run("directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), TSConfigFile)
		require.NoError(t, os.Mkdir(dir, 0o755))

		_, err := LoadTSConfig(dir)
		var ce *ConfigError
		require.True(t, errors.As(err, &ce))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadTSConfig(writeTSConfig(t, `{"compilerOptions": `))

		var ce *ConfigError
		require.True(t, errors.As(err, &ce))
		assert.Contains(t, ce.Error(), "parse")
	})
}
