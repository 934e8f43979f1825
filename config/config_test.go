package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-fast-eiod/analysis"
	"github.com/t14raptor/go-fast-eiod/ast"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, analysis.DefaultMaxDepth, cfg.Analysis.MaxDepth)
	assert.Equal(t, analysis.DefaultMaxSteps, cfg.Analysis.MaxSteps)
	assert.True(t, cfg.Analysis.FunctionBodies)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.Positive(t, cfg.Workers)
	assert.NoError(t, cfg.Validate())
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "eiod.toml", `
workers = 2

[analysis]
max_depth = 64
function_bodies = false

[output]
format = "json"
`},
		{"yaml", "eiod.yaml", `
workers: 2
analysis:
  max_depth: 64
  function_bodies: false
output:
  format: json
`},
		{"json", "eiod.json", `{
  "workers": 2,
  "analysis": {"max_depth": 64, "function_bodies": false},
  "output": {"format": "json"}
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, 2, cfg.Workers)
			assert.Equal(t, 64, cfg.Analysis.MaxDepth)
			assert.False(t, cfg.Analysis.FunctionBodies)
			assert.Equal(t, "json", cfg.Output.Format)

			// Unset keys keep their defaults.
			assert.Equal(t, analysis.DefaultMaxSteps, cfg.Analysis.MaxSteps)
			assert.True(t, cfg.Output.Color)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "eiod.toml", "[output]\nformat = \"xml\"\n"))
	assert.ErrorContains(t, err, "unknown output format")

	_, err = Load(writeConfig(t, "eiod.yaml", "workers: -1\n"))
	assert.ErrorContains(t, err, "workers")
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Output, cfg.Output)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".eiod.yml"), []byte("output:\n  format: markdown\n"), 0o644))
	cfg, err = LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output.Format)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "eiod.toml"), []byte("[analysis]\nmax_depth = \"deep\"\n"), 0o644))
	_, err = LoadOrDefault()
	assert.ErrorContains(t, err, "eiod.toml")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "eiod.toml"), []byte("[output]\nformat = \"html\"\n"), 0o644))
	_, err = LoadOrDefault()
	assert.ErrorContains(t, err, "unknown output format")
}

func TestAnalyzerOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analysis.MaxDepth = 2

	nested := ast.Statements{{Stmt: &ast.BlockStatement{Block: &ast.Block{
		List: ast.Statements{{Stmt: &ast.EmptyStatement{}}},
	}}}}

	_, err := analysis.New(cfg.AnalyzerOptions()...).Analyze(nested)
	assert.ErrorIs(t, err, analysis.ErrTooComplex)

	_, err = analysis.New(DefaultConfig().AnalyzerOptions()...).Analyze(nested)
	assert.NoError(t, err)
}

func TestShouldExclude(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		path string
		want bool
	}{
		{"src/app.js", false},
		{filepath.Join("node_modules", "x", "index.js"), true},
		{filepath.Join("src", "node_modules", "x.js"), true},
		{filepath.Join("src", "vendor.min.js"), true},
		{filepath.Join("src", "build.js"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.ShouldExclude(tt.path), tt.path)
	}
}
