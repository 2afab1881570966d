// Package wasm provides the minimal core-module scanning the linker
// frontend needs: a tolerant walk of the binary's sections to classify
// the linked output by its exports, and validation through the wazero
// compiler.
//
// The scanner never rejects a module. Classification runs on whatever
// well-formed export entries it can read, because the linked module goes
// on to the component encoder which performs the authoritative parse:
//
//	if wasm.HasExport(core, "_start") {
//	    // command-style module
//	}
package wasm
