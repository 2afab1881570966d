package argfile

import (
	"os"
	"strings"

	"github.com/wippyai/wasm-component-ld/errors"
)

// Splitter tokenizes the contents of a response file into arguments.
type Splitter interface {
	Split(contents string) ([]string, error)
}

// Expand replaces every `@file` argument with the tokenized contents of
// the named file, recursively. Other arguments pass through unchanged and
// relative order is preserved. An unreadable file is fatal. There is no
// cycle detection; a file that includes itself fails once the OS does.
func Expand(args []string, split Splitter) ([]string, error) {
	e := expander{split: split}
	for _, arg := range args {
		if err := e.push(arg); err != nil {
			return nil, err
		}
	}
	return e.args, nil
}

type expander struct {
	split Splitter
	args  []string
}

func (e *expander) push(arg string) error {
	if file, ok := strings.CutPrefix(arg, "@"); ok {
		return e.pushFile(file)
	}
	e.args = append(e.args, arg)
	return nil
}

func (e *expander) pushFile(file string) error {
	contents, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(errors.StageExpand, errors.KindIO, err, "failed to read %q", file)
	}
	parts, err := e.split.Split(string(contents))
	if err != nil {
		return errors.Wrap(errors.StageExpand, errors.KindConfig, err, "failed to tokenize %q", file)
	}
	for _, part := range parts {
		if err := e.push(part); err != nil {
			return err
		}
	}
	return nil
}

// StyleFromArgs pre-scans raw arguments for `--rsp-quoting` so the dialect
// is known before any expansion happens. Expansion runs before option
// parsing, so this is the one option read ahead of the normal schema.
func StyleFromArgs(args []string) string {
	for i, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--rsp-quoting="); ok {
			return v
		}
		if arg == "--rsp-quoting" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// NewSplitter selects the tokenization policy for the given style. The
// empty style picks the platform default: POSIX-like splitting everywhere
// except Windows, where the native shell's own rules apply.
func NewSplitter(style string) (Splitter, error) {
	switch style {
	case "":
		return platformSplitter(), nil
	case "posix":
		return posixSplitter{}, nil
	case "windows":
		return windowsSplitter()
	case "shell":
		return shellSplitter{}, nil
	default:
		return nil, errors.New(errors.StageExpand, errors.KindConfig,
			"unknown rsp quoting style %q, must be one of: posix, windows, shell", style)
	}
}
