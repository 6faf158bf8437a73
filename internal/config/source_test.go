package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromArgs_Load_ReturnsExpected_When_FlagsVary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want *Config
	}{
		{
			name: "AllShortFlags",
			args: []string{"-i", "src", "-o", "build", "-l", "en-US", "-s", "a.css", "b.css"},
			want: &Config{Input: "src", Output: "build", Language: "en-US", Stylesheets: []string{"a.css", "b.css"}},
		},
		{
			name: "AllLongFlags",
			args: []string{"--stylesheet", "x.css", "--lang", "de", "--output", "out", "--input", "docs"},
			want: &Config{Input: "docs", Output: "out", Language: "de", Stylesheets: []string{"x.css"}},
		},
		{
			name: "DefaultsWhenOnlyInput",
			args: []string{"-i", "page.txt"},
			want: &Config{Input: "page.txt", Output: DefaultOutput, Stylesheets: []string{}},
		},
		{
			name: "LastRepeatedValueWins",
			args: []string{"-i", "a", "-o", "first", "--input", "b", "-o", "second"},
			want: &Config{Input: "b", Output: "second", Stylesheets: []string{}},
		},
		{
			name: "LaterStylesheetRunReplacesEarlier",
			args: []string{"-i", "src", "-s", "a.css", "b.css", "-s", "c.css"},
			want: &Config{Input: "src", Output: DefaultOutput, Stylesheets: []string{"c.css"}},
		},
		{
			name: "StylesheetRunStopsAtFlag",
			args: []string{"-s", "one.css", "https://cdn.example/two.css", "-i", "src"},
			want: &Config{Input: "src", Output: DefaultOutput, Stylesheets: []string{"one.css", "https://cdn.example/two.css"}},
		},
		{
			name: "IgnoresUnknownTokens",
			args: []string{"stray", "-i", "src", "--verbose", "-x"},
			want: &Config{Input: "src", Output: DefaultOutput, Stylesheets: []string{}},
		},
		{
			name: "IgnoresTrailingValueFlag",
			args: []string{"-i", "src", "-l"},
			want: &Config{Input: "src", Output: DefaultOutput, Stylesheets: []string{}},
		},
		{
			name: "IgnoresConfigFlag",
			args: []string{"-i", "src", "-c", "cfg.json"},
			want: &Config{Input: "src", Output: DefaultOutput, Stylesheets: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FromArgs{Args: tt.args}.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromArgs_Load_IsIdempotent(t *testing.T) {
	t.Parallel()

	src := FromArgs{Args: []string{"-i", "src", "-o", "build", "-l", "en-US", "-s", "a.css", "b.css"}}
	first, err := Build(src)
	require.NoError(t, err)
	second, err := Build(src)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	first.Stylesheets[0] = "mutated.css"
	assert.Equal(t, "a.css", second.Stylesheets[0], "builds must not share backing arrays")
}

func TestFromArgs_Load_DoesNotAlias_When_CallerMutatesArgs(t *testing.T) {
	t.Parallel()

	args := []string{"-i", "src", "-s", "a.css"}
	cfg, err := FromArgs{Args: args}.Load()
	require.NoError(t, err)

	args[3] = "changed.css"
	assert.Equal(t, []string{"a.css"}, cfg.Stylesheets)
}

func TestBuild_AcceptsBothSourceVariants(t *testing.T) {
	t.Parallel()

	sources := []Source{
		FromArgs{Args: []string{"-i", "src"}},
		FromFile{Path: writeConfig(t, "c.json", `{"input":"src"}`)},
	}
	for _, src := range sources {
		cfg, err := Build(src)
		require.NoError(t, err)
		assert.Equal(t, "src", cfg.Input)
		assert.Equal(t, DefaultOutput, cfg.Output)
	}
}
