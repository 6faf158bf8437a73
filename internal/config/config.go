package config

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

// DefaultOutput is the output directory used when no source sets one.
const DefaultOutput = "./dist"

// Config holds the resolved settings handed to the site generator.
type Config struct {
	Input       string   // File or directory to convert
	Output      string   // Destination directory
	Language    string   // Value for <html lang>; empty means omit
	Stylesheets []string // <link rel="stylesheet"> hrefs, in output order
}

// Default returns a Config with only the defaults applied.
func Default() *Config {
	return &Config{
		Output:      DefaultOutput,
		Stylesheets: []string{},
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.Stylesheets = slices.Clone(c.Stylesheets)
	if out.Stylesheets == nil {
		out.Stylesheets = []string{}
	}
	return &out
}

// LanguageTag parses Language as a BCP 47 tag.
// An empty Language yields language.Und and no error.
func (c *Config) LanguageTag() (language.Tag, error) {
	if c.Language == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, fmt.Errorf("language %q: %w", c.Language, err)
	}
	return tag, nil
}
