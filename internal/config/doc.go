// Package config resolves openssg's command line into a single Config.
//
// # Sources
//
// A Config is built from exactly one Source per invocation:
//
//  1. FromArgs: the raw flag list (-i, -o, -l, -s)
//  2. FromFile: a JSON (or YAML) file named by -c/--config
//
// The two are never merged. Fields a source leaves unset keep their
// defaults (Output is ./dist, everything else empty).
//
// # Validation
//
// Validate gates FromArgs. It inspects the raw arguments without building
// anything and reports the first rule that fails as a *UsageError:
//
//   - no arguments at all
//   - -v/--version or -h/--help followed by anything
//   - no -i/--input (unless -c/--config appears somewhere)
//   - a value flag with no value, or whose value looks like a flag
//   - -s/--stylesheet with no links after it
//
// Tokens the scan does not recognise are passed over; they are taken to be
// values already consumed by a preceding flag.
//
// # File schema
//
//	{
//	  "input": "string",
//	  "output": "string",
//	  "lang": "string",
//	  "stylesheets": ["string", ...]
//	}
//
// All keys are optional and unknown keys are ignored. A file that cannot be
// opened yields *FileAccessError; one that does not parse to an object, or
// has a known key of the wrong type, yields *ConfigParseError.
package config
