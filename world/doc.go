// Package world models resolved WIT documents just deeply enough to
// pick each document's principal world and to merge several documents
// into one registry before the component encoder runs. Full WIT
// resolution stays in wasm-tools; this package consumes its JSON
// output and decides merge order, first-wins package identity, and
// import/export conflicts.
package world
