package argfile

import (
	"mvdan.cc/sh/v3/shell"
)

// shellSplitter delegates tokenization to POSIX shell word splitting.
// Unlike the posix policy this honors the shell's full quoting rules,
// so it is opt-in via `--rsp-quoting shell` rather than a default.
type shellSplitter struct{}

func (shellSplitter) Split(contents string) ([]string, error) {
	return shell.Fields(contents, func(string) string { return "" })
}
