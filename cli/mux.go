package cli

import (
	"slices"

	"github.com/wippyai/wasm-component-ld/errors"
	"github.com/wippyai/wasm-component-ld/ldflags"
)

// Parse classifies the expanded arguments (program name excluded) into
// wasm-ld's vocabulary and the tool's own schema in a single forward
// pass, then resolves the tool's own options.
//
// wasm-ld's options are stateful and order sensitive (--whole-archive and
// friends apply to the arguments after them), so forwarded tokens keep
// their exact relative order. On a spelling collision the catalog always
// wins; the wrapped linker's surface cannot be altered. The one
// non-standard flag, -shared, is matched verbatim before anything else.
func Parse(args []string) (*Config, error) {
	// Dropped so this tool can be installed as a generic lld driver.
	if len(args) >= 2 && args[0] == "-flavor" && args[1] == "wasm" {
		args = args[2:]
	}

	s := newSchema()
	var lldArgs, ownArgs []string

	t := newTokenizer(args)
	for {
		if raw, ok := t.rawPeek(); ok && slices.Contains(ldflags.Nonstandard, raw) {
			t.rawNext()
			lldArgs = append(lldArgs, raw)
			if raw == "-shared" {
				s.cfg.Shared = true
			}
			continue
		}

		a, ok := t.next()
		if !ok {
			break
		}
		switch a.kind {
		case argValue:
			// Objects, archives and scripts belong to the linker.
			lldArgs = append(lldArgs, a.value)

		case argShort:
			if f, ok := ldflags.ByShort(a.short); ok {
				forwarded, err := forwardFlag(f, t)
				if err != nil {
					return nil, err
				}
				lldArgs = append(lldArgs, forwarded...)
				continue
			}
			if !s.knowsShort(a.short) {
				return nil, errors.New(errors.StageParse, errors.KindConfig,
					"unknown argument '-%c'", a.short)
			}
			ownArgs = append(ownArgs, "-"+string(a.short))
			if s.shortTakesValue(a.short) {
				v, ok := t.value()
				if !ok {
					return nil, errors.New(errors.StageParse, errors.KindConfig,
						"a value is required for '-%c' but none was supplied", a.short)
				}
				ownArgs = append(ownArgs, v)
			}

		case argLong:
			if f, ok := ldflags.ByLong(a.long); ok {
				forwarded, err := forwardFlag(f, t)
				if err != nil {
					return nil, err
				}
				lldArgs = append(lldArgs, forwarded...)
				continue
			}
			if !s.knowsLong(a.long) {
				return nil, errors.New(errors.StageParse, errors.KindConfig,
					"unknown argument '--%s'", a.long)
			}
			switch {
			case s.longTakesValue(a.long):
				v, ok := t.value()
				if !ok {
					return nil, errors.New(errors.StageParse, errors.KindConfig,
						"a value is required for '--%s' but none was supplied", a.long)
				}
				ownArgs = append(ownArgs, "--"+a.long, v)
			case t.hasAttached():
				// Hand --flag=value through; the schema decides
				// whether the flag accepts an attached value.
				v, _ := t.value()
				ownArgs = append(ownArgs, "--"+a.long+"="+v)
			default:
				ownArgs = append(ownArgs, "--"+a.long)
			}
		}
	}

	if err := s.fs.Parse(ownArgs); err != nil {
		return nil, errors.Wrap(errors.StageParse, errors.KindConfig, err, "failed to parse arguments")
	}

	cfg := s.cfg
	cfg.LinkerArgs = lldArgs
	if cfg.Help || cfg.ShowVersion {
		return cfg, nil
	}
	if cfg.Output == "" {
		return nil, errors.New(errors.StageParse, errors.KindConfig,
			"the required argument '--output <OUTPUT>' was not provided")
	}
	return cfg, nil
}

// forwardFlag reconstructs the canonical spelling of a catalog flag and
// consumes its value the way wasm-ld expects it attached.
func forwardFlag(f ldflags.Flag, t *tokenizer) ([]string, error) {
	name := f.Canonical()
	switch f.Value {
	case ldflags.RequiredSpace:
		v, ok := t.value()
		if !ok {
			return nil, missingValue(name)
		}
		return []string{name, v}, nil

	case ldflags.RequiredEqual:
		v, ok := t.value()
		if !ok {
			return nil, missingValue(name)
		}
		return []string{name + "=" + v}, nil

	case ldflags.Optional:
		if v, ok := t.optionalValue(); ok {
			return []string{name + "=" + v}, nil
		}
		return []string{name}, nil

	default:
		if t.hasAttached() {
			v, _ := t.value()
			return nil, errors.New(errors.StageParse, errors.KindConfig,
				"unexpected value %q for %q", v, name)
		}
		return []string{name}, nil
	}
}

func missingValue(name string) error {
	return errors.New(errors.StageParse, errors.KindConfig,
		"a value is required for %q but none was supplied", name)
}
