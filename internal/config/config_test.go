package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `marker = "#"

[languages]
Go = "//"
"SQL Server Tools" = "lua"
`,
		},
		{
			name: "ini",
			file: "config.ini",
			content: "marker = #\n\n[languages]\nGo = //\nSQL Server Tools = lua\n",
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `marker: "#"
languages:
  Go: //
  SQL Server Tools: lua
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, "#", s.Marker)
			assert.Equal(t, map[string]string{"Go": "//", "SQL Server Tools": "lua"}, s.Languages)
		})
	}
}

func TestLoad_EmptyMarkerCoerced(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"config.toml", `marker = ""`},
		{"config.ini", "marker =\n"},
		{"config.yml", "marker: ''\n"},
		{"config.toml", ""},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			s, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, ":", s.Marker)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "config.json", "{}"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = Load(writeFile(t, "config.toml", "marker = ["))
	assert.ErrorContains(t, err, "failed to parse config file")

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefaults(t *testing.T) {
	s, err := LoadOrDefaults(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)

	_, err = LoadOrDefaults(writeFile(t, "config.toml", "marker = ["))
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	for _, name := range []string{"config.toml", "config.ini", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "nested", name)

			s := Defaults()
			s.SetMarker("# ")
			s.SetLanguage("Go", "//")
			s.SetLanguage("Lisp", ";")
			s.SetLanguage("SQL Server Tools", "--")
			require.NoError(t, s.Save(p))

			got, err := Load(p)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestSave_NoLanguages(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Defaults().Save(p))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "marker = \":\"\n", string(data))
}

func TestSettings_Languages(t *testing.T) {
	s := Defaults()

	assert.True(t, s.SetLanguage("Rust", "//"))
	assert.False(t, s.SetLanguage("Rust", "//"), "unchanged value reports false")
	assert.True(t, s.SetLanguage("Rust", "c"))
	assert.True(t, s.SetLanguage("Go", "//"))
	assert.Equal(t, []string{"Go", "Rust"}, s.LanguageIDs())

	assert.True(t, s.RemoveLanguage("Rust"))
	assert.False(t, s.RemoveLanguage("Rust"))
	assert.Equal(t, []string{"Go"}, s.LanguageIDs())
}

func TestSettings_SetMarker(t *testing.T) {
	s := Defaults()
	s.SetMarker("")
	assert.Equal(t, ":", s.Marker)
	s.SetMarker("REM ")
	assert.Equal(t, "REM ", s.Marker)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "linemark", "config.toml"), p)

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/tmp/home")
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/home", ".config", "linemark", "config.toml"), p)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "linemark", "config.toml"), p, "falls back to the default path")

	require.NoError(t, Defaults().Save(filepath.Join(dir, "linemark", "config.yaml")))
	p, err = Discover()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "linemark", "config.yaml"), p)

	require.NoError(t, Defaults().Save(filepath.Join(dir, "linemark", "config.ini")))
	p, err = Discover()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "linemark", "config.ini"), p, "ini wins over yaml")
}
