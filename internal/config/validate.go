package config

import "slices"

// Validate reports whether args form a legal invocation.
// It returns nil or a *UsageError for the first rule args break.
// Validate never builds a Config and writes nothing.
func Validate(args []string) error {
	if len(args) == 0 {
		return &UsageError{Err: ErrNoOption}
	}

	if IsVersion(args[0]) || IsHelp(args[0]) {
		if len(args) > 1 {
			return &UsageError{Flag: args[0], Err: ErrExtraArgs}
		}
		return nil
	}

	// The file's own content is checked later by FromFile.
	if slices.ContainsFunc(args, IsConfig) {
		return nil
	}

	if !slices.ContainsFunc(args, isInput) {
		return &UsageError{Err: ErrInputRequired}
	}

	for i := 0; i < len(args); i++ {
		tok := args[i]
		switch {
		case isSingleValue(tok):
			if i+1 >= len(args) || isFlagLike(args[i+1]) {
				return &UsageError{Flag: tok, Err: ErrMissingArgument}
			}
			i++
		case isStylesheet(tok):
			run := stylesheetRun(args, i)
			if len(run) == 0 {
				return &UsageError{Flag: tok, Err: ErrMissingStylesheet}
			}
			// Resume at the flag that ended the run, not past it.
			i += len(run)
		}
	}
	return nil
}
