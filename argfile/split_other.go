//go:build !windows

package argfile

import (
	"github.com/wippyai/wasm-component-ld/errors"
)

func platformSplitter() Splitter {
	return posixSplitter{}
}

func windowsSplitter() (Splitter, error) {
	return nil, errors.New(errors.StageExpand, errors.KindConfig,
		"rsp quoting style \"windows\" is only available on windows hosts")
}
