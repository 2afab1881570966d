// Package cli splits one combined command line into wasm-ld's vocabulary
// and this tool's own option schema.
//
// wasm-ld's flags cannot be described to an ordinary flag parser: their
// value attachment is idiosyncratic per flag (`--foo bar` support does
// not imply `--foo=bar`), some are stateful and positional
// (--whole-archive), and -shared is a single-dash long flag. A low-level
// tokenizer therefore walks the arguments once, left to right, and every
// token is routed to exactly one of three places: the forwarded linker
// arguments (order preserved), the tool's own arguments, or consumption
// as the value of the preceding flag. Only the demuxed own arguments are
// then handed to the declarative schema.
//
// Catalog spellings always win over own-schema spellings; the wrapped
// linker's surface is never altered by this tool.
package cli
