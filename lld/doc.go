// Package lld locates and drives the delegate linker. All object-level
// linking work belongs to wasm-ld (or a rust-lld driven in its wasm
// flavor); this package only finds the binary and runs it with the
// arguments the command-line mux classified as linker vocabulary.
package lld
