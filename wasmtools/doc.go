// Package wasmtools drives the wasm-tools binary as the component
// encoder backend. The binary parser and WIT machinery stay out of
// process; callers stage files, run subcommands, and interpret the
// results. Every operation here maps to exactly one wasm-tools
// invocation.
package wasmtools
