// Package argfile expands `@file` response-file arguments before any
// option parsing happens.
//
// A token starting with `@` names a file whose contents are tokenized and
// spliced in place of the token, recursively. Tokenization is a pluggable
// Splitter capability with one implementation per quoting dialect:
//
//	posix    GNU-style: whitespace separated, '...'/"..." quoting,
//	         backslash escapes the next character even inside quotes
//	windows  the native CommandLineToArgv rules (Windows hosts only)
//	shell    full POSIX shell word splitting
//
// The platform picks the default; `--rsp-quoting` overrides it and is
// pre-scanned from the raw arguments since expansion precedes parsing.
package argfile
