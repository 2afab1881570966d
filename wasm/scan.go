package wasm

import (
	"github.com/wippyai/wasm-component-ld/wasm/internal/binary"
)

// Magic and Version are the core module header constants.
const (
	Magic   uint32 = 0x6D736100 // "\0asm"
	Version uint32 = 1
)

// Section IDs used by the scanner.
const (
	SectionCustom byte = 0
	SectionExport byte = 7
)

// Export kinds.
const (
	KindFunc   byte = 0
	KindTable  byte = 1
	KindMemory byte = 2
	KindGlobal byte = 3
	KindTag    byte = 4
)

// IsBinary reports whether data starts with the binary-format magic.
// Text-format sources fail this check and need parsing first.
func IsBinary(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 0x00 && data[1] == 'a' && data[2] == 's' && data[3] == 'm'
}

// Export is one well-formed entry of an export section.
type Export struct {
	Name  string
	Kind  byte
	Index uint32
}

// Exports scans the module's export sections and returns every
// well-formed entry. The scan is deliberately tolerant: a bad header
// yields nothing, a truncated section ends the scan, and an entry with
// an invalid kind is skipped while later entries are still read. The
// module does not have to validate for the scan to succeed.
func Exports(data []byte) []Export {
	r := binary.NewReader(data)
	if magic, err := r.ReadU32LE(); err != nil || magic != Magic {
		return nil
	}
	if version, err := r.ReadU32LE(); err != nil || version != Version {
		return nil
	}

	var exports []Export
	for r.Len() > 0 {
		id, err := r.ReadByte()
		if err != nil {
			break
		}
		size, err := r.ReadU32()
		if err != nil {
			break
		}
		body, err := r.ReadBytes(int(size))
		if err != nil {
			break
		}
		if id == SectionExport {
			exports = append(exports, sectionExports(body)...)
		}
	}
	return exports
}

func sectionExports(body []byte) []Export {
	r := binary.NewReader(body)
	count, err := r.ReadU32()
	if err != nil {
		return nil
	}
	var exports []Export
	for i := uint32(0); i < count; i++ {
		name, err := r.ReadName()
		if err != nil {
			return exports
		}
		kind, err := r.ReadByte()
		if err != nil {
			return exports
		}
		index, err := r.ReadU32()
		if err != nil {
			return exports
		}
		if kind > KindTag {
			// Malformed entry; the stream is still in sync, keep going.
			continue
		}
		exports = append(exports, Export{Name: name, Kind: kind, Index: index})
	}
	return exports
}

// HasExport reports whether the module exports the given name.
func HasExport(data []byte, name string) bool {
	for _, e := range Exports(data) {
		if e.Name == name {
			return true
		}
	}
	return false
}
