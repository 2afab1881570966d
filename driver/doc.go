// Package driver sequences the pipeline: delegate linking to wasm-ld,
// inspect the linked core module, merge and embed interface metadata,
// and encode the final component. Each stage reports failures through
// the staged error type so the command line can print a usable chain.
package driver
