//go:build windows

package argfile

import (
	"strings"

	"golang.org/x/sys/windows"
)

// nativeSplit tokenizes one line with CommandLineToArgv, the same rules
// the platform applies to a process command line. Response files may span
// several lines, which a single command line cannot, so lines are split
// first and empty ones dropped.
type nativeSplit struct{}

func (nativeSplit) Split(contents string) ([]string, error) {
	var out []string
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		args, err := windows.DecomposeCommandLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, args...)
	}
	return out, nil
}

func platformSplitter() Splitter {
	return nativeSplit{}
}

func windowsSplitter() (Splitter, error) {
	return nativeSplit{}, nil
}
