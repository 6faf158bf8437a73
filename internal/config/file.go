package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Keys recognised in a configuration file.
const (
	KeyInput       = "input"
	KeyOutput      = "output"
	KeyLang        = "lang"
	KeyStylesheets = "stylesheets"
)

var (
	errInvalidJSON = errors.New("not valid JSON")
	errNotObject   = errors.New("top level is not an object")
	errNotUTF8     = errors.New("not UTF-8 text")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads the file at Path. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON. Only the recognised keys are applied; the
// rest are ignored.
func (s FromFile) Load() (*Config, error) {
	if s.Path == "" {
		return nil, &FileAccessError{Err: errNoConfigPath}
	}

	data, err := readConfigFile(s.Path)
	if err != nil {
		return nil, &FileAccessError{Path: s.Path, Err: err}
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, &ConfigParseError{Path: s.Path, Err: errNotUTF8}
	}

	var fields map[string]any
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		fields, err = decodeYAML(data)
	default:
		fields, err = decodeJSON(data)
	}
	if err != nil {
		return nil, &ConfigParseError{Path: s.Path, Err: err}
	}

	return applyFields(s.Path, fields)
}

// readConfigFile reads the whole file; the handle is closed before returning.
func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 - path is supplied by the user on purpose
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading: %w", err)
	}
	return data, nil
}

func decodeJSON(data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return nil, errNotObject
	}
	// Later duplicates replace earlier ones.
	fields := make(map[string]any)
	res.ForEach(func(key, value gjson.Result) bool {
		fields[key.String()] = value.Value()
		return true
	})
	return fields, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errNotObject
	}
	return fields, nil
}

// applyFields copies the recognised keys onto a default Config.
// Null values count as absent.
func applyFields(path string, fields map[string]any) (*Config, error) {
	cfg := Default()

	targets := []struct {
		key string
		dst *string
	}{
		{KeyInput, &cfg.Input},
		{KeyOutput, &cfg.Output},
		{KeyLang, &cfg.Language},
	}
	for _, t := range targets {
		v, ok, err := stringField(fields, t.key)
		if err != nil {
			return nil, &ConfigParseError{Path: path, Key: t.key, Err: err}
		}
		if ok {
			*t.dst = v
		}
	}

	links, err := stringsField(fields, KeyStylesheets)
	if err != nil {
		return nil, &ConfigParseError{Path: path, Key: KeyStylesheets, Err: err}
	}
	cfg.Stylesheets = links

	return cfg, nil
}

func stringField(fields map[string]any, key string) (string, bool, error) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("want string, got %s", kindOf(raw))
	}
	return s, true, nil
}

func stringsField(fields map[string]any, key string) ([]string, error) {
	out := []string{}
	raw, ok := fields[key]
	if !ok || raw == nil {
		return out, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("want array of strings, got %s", kindOf(raw))
	}
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("element %d: want string, got %s", i, kindOf(item))
		}
		out = append(out, s)
	}
	return out, nil
}

// kindOf names a decoded value in JSON terms.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, float32, int, int64, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case time.Time:
		return "timestamp"
	default:
		return fmt.Sprintf("%T", v)
	}
}
