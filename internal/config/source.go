package config

// Source is one of the two ways to build a Config: FromArgs or FromFile.
// The set is closed; a Config is never built from both.
type Source interface {
	// Load builds a Config from the source, defaults applied.
	Load() (*Config, error)
	source()
}

// FromArgs builds a Config from command-line arguments that already passed Validate.
type FromArgs struct {
	Args []string
}

// FromFile builds a Config from a JSON or YAML configuration file.
type FromFile struct {
	Path string
}

func (FromArgs) source() {}
func (FromFile) source() {}

// Build loads src. It exists so callers can hold either variant behind Source.
func Build(src Source) (*Config, error) {
	return src.Load()
}

// Load scans Args left to right. A repeated flag keeps its last value,
// and tokens that are not flags are ignored. It never fails.
func (s FromArgs) Load() (*Config, error) {
	cfg := Default()
	args := s.Args
	for i, tok := range args {
		switch {
		case isStylesheet(tok):
			cfg.Stylesheets = append([]string{}, stylesheetRun(args, i)...)
		case isSingleValue(tok):
			if i+1 >= len(args) {
				continue
			}
			v := args[i+1]
			switch {
			case isInput(tok):
				cfg.Input = v
			case isOutput(tok):
				cfg.Output = v
			case isLang(tok):
				cfg.Language = v
			}
		}
	}
	return cfg, nil
}
