package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes content to name inside a fresh temp dir and returns the path.
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFromFile_Load_ReturnsExpected_When_ContentIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		want    *Config
	}{
		{
			name:    "InputAndStylesheetsOnly",
			file:    "c.json",
			content: `{"input":"src","stylesheets":["x.css"]}`,
			want:    &Config{Input: "src", Output: DefaultOutput, Stylesheets: []string{"x.css"}},
		},
		{
			name: "AllKeys",
			file: "c.json",
			content: `{
				"input": "docs",
				"output": "public",
				"lang": "pt-BR",
				"stylesheets": ["https://cdn.example/a.css", "b.css", "c.css"]
			}`,
			want: &Config{
				Input:       "docs",
				Output:      "public",
				Language:    "pt-BR",
				Stylesheets: []string{"https://cdn.example/a.css", "b.css", "c.css"},
			},
		},
		{
			name:    "UnknownKeysIgnored",
			file:    "c.json",
			content: `{"input":"src","theme":"dark","nested":{"a":1},"count":3}`,
			want:    &Config{Input: "src", Output: DefaultOutput, Stylesheets: []string{}},
		},
		{
			name:    "NullStylesheetsIsEmpty",
			file:    "c.json",
			content: `{"input":"src","stylesheets":null}`,
			want:    &Config{Input: "src", Output: DefaultOutput, Stylesheets: []string{}},
		},
		{
			name:    "NullOutputKeepsDefault",
			file:    "c.json",
			content: `{"input":"src","output":null}`,
			want:    &Config{Input: "src", Output: DefaultOutput, Stylesheets: []string{}},
		},
		{
			name:    "EmptyObject",
			file:    "c.json",
			content: `{}`,
			want:    &Config{Output: DefaultOutput, Stylesheets: []string{}},
		},
		{
			name:    "ByteOrderMarkTolerated",
			file:    "c.json",
			content: "\ufeff" + `{"lang":"en"}`,
			want:    &Config{Output: DefaultOutput, Language: "en", Stylesheets: []string{}},
		},
		{
			name:    "DuplicateKeyLastWins",
			file:    "c.json",
			content: `{"input":"a","output":"x","input":"b"}`,
			want:    &Config{Input: "b", Output: "x", Stylesheets: []string{}},
		},
		{
			name:    "NoExtensionTreatedAsJSON",
			file:    "openssgrc",
			content: `{"input":"src"}`,
			want:    &Config{Input: "src", Output: DefaultOutput, Stylesheets: []string{}},
		},
		{
			name: "YAMLFile",
			file: "site.yaml",
			content: "input: src\n" +
				"lang: fr\n" +
				"stylesheets:\n" +
				"  - one.css\n" +
				"  - two.css\n" +
				"extra: ignored\n",
			want: &Config{Input: "src", Output: DefaultOutput, Language: "fr", Stylesheets: []string{"one.css", "two.css"}},
		},
		{
			name:    "YMLExtension",
			file:    "site.YML",
			content: "output: out\n",
			want:    &Config{Output: "out", Stylesheets: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FromFile{Path: writeConfig(t, tt.file, tt.content)}.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromFile_Load_ReturnsParseError_When_ContentIsBad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		wantKey string
	}{
		{name: "Empty", file: "c.json", content: ``},
		{name: "Truncated", file: "c.json", content: `{"input": "src"`},
		{name: "TopLevelArray", file: "c.json", content: `["src"]`},
		{name: "TopLevelString", file: "c.json", content: `"src"`},
		{name: "TrailingGarbage", file: "c.json", content: `{"input":"src"} nope`},
		{name: "InputNotString", file: "c.json", content: `{"input": 42}`, wantKey: KeyInput},
		{name: "LangNotString", file: "c.json", content: `{"lang": true}`, wantKey: KeyLang},
		{name: "StylesheetsNotArray", file: "c.json", content: `{"stylesheets": "a.css"}`, wantKey: KeyStylesheets},
		{name: "StylesheetElementNotString", file: "c.json", content: `{"stylesheets": ["a.css", 1]}`, wantKey: KeyStylesheets},
		{name: "InvalidUTF8", file: "c.json", content: "{\"input\":\"\xff\xfe\"}"},
		{name: "YAMLSequence", file: "c.yaml", content: "- a\n- b\n"},
		{name: "YAMLEmpty", file: "c.yml", content: ""},
		{name: "YAMLOutputNotString", file: "c.yaml", content: "output: [a, b]\n", wantKey: KeyOutput},
		{name: "YAMLInputIsDate", file: "c.yaml", content: "input: 2024-01-01\n", wantKey: KeyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tt.file, tt.content)
			cfg, err := FromFile{Path: path}.Load()
			require.Error(t, err)
			assert.Nil(t, cfg)

			var parseErr *ConfigParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, path, parseErr.Path)
			assert.Equal(t, tt.wantKey, parseErr.Key)
		})
	}
}

func TestFromFile_Load_NamesValueKind_When_YAMLValueIsDate(t *testing.T) {
	t.Parallel()

	_, err := FromFile{Path: writeConfig(t, "c.yaml", "input: 2024-01-01\n")}.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `key "input": want string, got timestamp`)
	assert.NotContains(t, err.Error(), "time.Time")
}

func TestFromFile_Load_ReturnsAccessError_When_FileUnavailable(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.json")
	_, err := FromFile{Path: missing}.Load()

	var accessErr *FileAccessError
	require.ErrorAs(t, err, &accessErr)
	assert.Equal(t, missing, accessErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFromFile_Load_ReturnsAccessError_When_PathEmpty(t *testing.T) {
	t.Parallel()

	_, err := FromFile{}.Load()

	var accessErr *FileAccessError
	require.ErrorAs(t, err, &accessErr)
	assert.Contains(t, err.Error(), "no path given")
}

func TestFromFile_Load_ReturnsAccessError_When_PathIsDirectory(t *testing.T) {
	t.Parallel()

	_, err := FromFile{Path: t.TempDir()}.Load()

	var accessErr *FileAccessError
	assert.ErrorAs(t, err, &accessErr)
}

func TestFromFile_Load_IsIdempotent(t *testing.T) {
	t.Parallel()

	src := FromFile{Path: writeConfig(t, "c.json", `{"input":"src","lang":"en","stylesheets":["a.css","b.css"]}`)}
	first, err := src.Load()
	require.NoError(t, err)
	second, err := src.Load()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
