package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// AdapterMode selects which default WASI adapter, if any, is injected
// under the wasi_snapshot_preview1 import.
type AdapterMode int

const (
	AdapterUnset AdapterMode = iota // infer from module classification
	AdapterNone
	AdapterCommand
	AdapterReactor
	AdapterProxy
)

func (m AdapterMode) String() string {
	switch m {
	case AdapterNone:
		return "none"
	case AdapterCommand:
		return "command"
	case AdapterReactor:
		return "reactor"
	case AdapterProxy:
		return "proxy"
	default:
		return ""
	}
}

// String encodings recognized for embedded component type metadata.
const (
	EncodingUTF8         = "utf8"
	EncodingUTF16        = "utf16"
	EncodingCompactUTF16 = "compact-utf16"
)

// Adapter is one extra adapter requested with --adapt. The module source
// is read and parsed later, when the assembly stage runs.
type Adapter struct {
	Name string
	Path string
}

// Config is the tool's resolved own-option surface. Everything wasm-ld
// understands is in LinkerArgs instead, in input order.
type Config struct {
	Output                    string
	Adapter                   AdapterMode
	LinkerPath                string
	WasmToolsPath             string
	RspQuoting                string
	ValidateComponent         *bool
	MergeImportsBasedOnSemver *bool
	Adapters                  []Adapter
	ComponentTypes            []string
	StringEncoding            string
	SkipWitComponent          bool
	Verbose                   bool
	Help                      bool
	ShowVersion               bool

	// Shared is set by the non-standard -shared flag; shared libraries
	// skip componentization the same way --skip-wit-component does.
	Shared bool

	LinkerArgs []string
}

// schema binds the declarative option set to a Config. The muxer consults
// the flag set to learn which own flags consume a value, so that
// knowledge lives in exactly one place.
type schema struct {
	fs  *pflag.FlagSet
	cfg *Config
}

func newSchema() *schema {
	cfg := &Config{StringEncoding: EncodingUTF8}
	fs := pflag.NewFlagSet("wasm-component-ld", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)

	fs.StringVarP(&cfg.Output, "output", "o", "", "where to place the component output")
	fs.Var((*adapterModeValue)(&cfg.Adapter), "wasi-adapter", "default WASI adapter to use: command, reactor, proxy or none")
	fs.StringVar(&cfg.LinkerPath, "wasm-ld-path", "", "location of wasm-ld, detected automatically when unset")
	fs.StringVar(&cfg.WasmToolsPath, "wasm-tools-path", "", "location of wasm-tools, detected automatically when unset")
	fs.StringVar(&cfg.RspQuoting, "rsp-quoting", "", "quoting style for response files: posix, windows or shell")
	fs.Var(&optionalBool{&cfg.ValidateComponent}, "validate-component", "whether the output component is validated (default true)")
	fs.Var(&optionalBool{&cfg.MergeImportsBasedOnSemver}, "merge-imports-based-on-semver", "whether imports are deduplicated based on semver (default true)")
	fs.Var(&adapterList{&cfg.Adapters}, "adapt", "extra adapter to inject, repeatable; NAME defaults to the file stem")
	fs.StringArrayVar(&cfg.ComponentTypes, "component-type", nil, "WIT file with additional component type information, repeatable")
	fs.Var(&encodingValue{&cfg.StringEncoding}, "string-encoding", "string encoding for component types: utf8, utf16 or compact-utf16")
	fs.BoolVar(&cfg.SkipWitComponent, "skip-wit-component", false, "emit the linked core module without componentizing")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "print verbose output")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	fs.BoolVarP(&cfg.Help, "help", "h", false, "print help")

	return &schema{fs: fs, cfg: cfg}
}

// knowsLong reports whether the own schema declares the long flag.
func (s *schema) knowsLong(name string) bool {
	return s.fs.Lookup(name) != nil
}

// knowsShort reports whether the own schema declares the short flag.
func (s *schema) knowsShort(c rune) bool {
	return s.fs.ShorthandLookup(string(c)) != nil
}

// longTakesValue reports whether the long own flag consumes a value.
// Flags with a no-option default (plain booleans) do not.
func (s *schema) longTakesValue(name string) bool {
	f := s.fs.Lookup(name)
	return f != nil && f.NoOptDefVal == ""
}

func (s *schema) shortTakesValue(c rune) bool {
	f := s.fs.ShorthandLookup(string(c))
	return f != nil && f.NoOptDefVal == ""
}

type adapterModeValue AdapterMode

func (v *adapterModeValue) Set(s string) error {
	switch s {
	case "none":
		*v = adapterModeValue(AdapterNone)
	case "command":
		*v = adapterModeValue(AdapterCommand)
	case "reactor":
		*v = adapterModeValue(AdapterReactor)
	case "proxy":
		*v = adapterModeValue(AdapterProxy)
	default:
		return fmt.Errorf("unknown wasi adapter %s, must be one of: none, command, reactor, proxy", s)
	}
	return nil
}

func (v *adapterModeValue) String() string { return AdapterMode(*v).String() }
func (v *adapterModeValue) Type() string   { return "command|reactor|proxy|none" }

// optionalBool is a tri-state boolean: nil until set on the command line,
// so the encoder's own defaults apply when the user said nothing.
type optionalBool struct {
	p **bool
}

func (v *optionalBool) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*v.p = &b
	return nil
}

func (v *optionalBool) String() string {
	if v.p == nil || *v.p == nil {
		return ""
	}
	return strconv.FormatBool(**v.p)
}

func (v *optionalBool) Type() string { return "BOOL" }

type adapterList struct {
	p *[]Adapter
}

func (v *adapterList) Set(s string) error {
	name, path := parseOptionallyNamedFile(s)
	for _, a := range *v.p {
		if a.Name == name {
			return fmt.Errorf("adapter %q is specified more than once", name)
		}
	}
	*v.p = append(*v.p, Adapter{Name: name, Path: path})
	return nil
}

func (v *adapterList) String() string {
	var parts []string
	for _, a := range *v.p {
		parts = append(parts, a.Name+"="+a.Path)
	}
	return strings.Join(parts, ",")
}

func (v *adapterList) Type() string { return "[NAME=]MODULE" }

// parseOptionallyNamedFile splits NAME=PATH, defaulting NAME to the file
// stem before the first dot when no name is given.
func parseOptionallyNamedFile(s string) (name, path string) {
	if i := strings.IndexByte(s, '='); i >= 0 {
		return s[:i], s[i+1:]
	}
	name = filepath.Base(s)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return name, s
}

type encodingValue struct {
	p *string
}

func (v *encodingValue) Set(s string) error {
	switch s {
	case EncodingUTF8, EncodingUTF16, EncodingCompactUTF16:
		*v.p = s
		return nil
	}
	return fmt.Errorf("unknown string encoding: %q", s)
}

func (v *encodingValue) String() string { return *v.p }
func (v *encodingValue) Type() string   { return "utf8|utf16|compact-utf16" }
