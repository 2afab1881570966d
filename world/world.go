package world

import (
	"encoding/json"
	"fmt"

	"github.com/wippyai/wasm-component-ld/errors"
)

// Package is one WIT package of a resolved document, reduced to the
// qualified names merging operates on.
type Package struct {
	Name       string
	Interfaces []string
	Worlds     []string
}

// World is a named collection of import/export declarations. Keys are the
// world's item keys (kebab names or interface keys); values identify the
// item's target so two documents binding the same key to different
// meanings can be detected.
type World struct {
	Name    string
	Package string
	Imports map[string]string
	Exports map[string]string
}

// Document is one resolved interface-description document. The resolver
// (wasm-tools) performs all parsing; this model only carries what world
// selection and merging need.
type Document struct {
	Packages []*Package
	Worlds   []*World
}

// MainPackage returns the package the document itself defines. The
// resolver emits dependency packages first, so the document's own
// package is the last one.
func (d *Document) MainPackage() *Package {
	if len(d.Packages) == 0 {
		return nil
	}
	return d.Packages[len(d.Packages)-1]
}

// SelectWorld picks the document's principal world: the single world of
// its main package. More than one candidate without an explicit
// selection is an ambiguity error.
func (d *Document) SelectWorld() (*World, error) {
	pkg := d.MainPackage()
	if pkg == nil || len(pkg.Worlds) == 0 {
		return nil, errors.New(errors.StageMerge, errors.KindConfig,
			"no worlds found in package")
	}
	if len(pkg.Worlds) > 1 {
		return nil, errors.New(errors.StageMerge, errors.KindConfig,
			"multiple worlds found in package %s; one must be explicitly chosen", pkg.Name)
	}
	for _, w := range d.Worlds {
		if w.Package == pkg.Name && w.Name == pkg.Worlds[0] {
			return w, nil
		}
	}
	return nil, errors.New(errors.StageMerge, errors.KindFormat,
		"package %s names world %q but the document does not define it", pkg.Name, pkg.Worlds[0])
}

// The resolver's JSON uses arena indices; these shadow structs resolve
// them into names at decode time.

type jsonDocument struct {
	Worlds     []jsonWorld     `json:"worlds"`
	Interfaces []jsonInterface `json:"interfaces"`
	Packages   []jsonPackage   `json:"packages"`
}

type jsonWorld struct {
	Name    string              `json:"name"`
	Imports map[string]jsonItem `json:"imports"`
	Exports map[string]jsonItem `json:"exports"`
}

type jsonInterface struct {
	Name    *string `json:"name"`
	Package *int    `json:"package"`
}

type jsonPackage struct {
	Name       string         `json:"name"`
	Interfaces map[string]int `json:"interfaces"`
	Worlds     map[string]int `json:"worlds"`
}

type jsonItem struct {
	Interface *jsonRef        `json:"interface"`
	Function  json.RawMessage `json:"function"`
	Type      json.RawMessage `json:"type"`
}

// jsonRef accepts both a bare index and an {"id": N} object; the
// resolver has used both encodings.
type jsonRef struct {
	ID int
}

func (r *jsonRef) UnmarshalJSON(data []byte) error {
	var id int
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}
	var obj struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.ID = obj.ID
	return nil
}

// DecodeJSON decodes one resolver output document.
func DecodeJSON(data []byte) (*Document, error) {
	var raw jsonDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.StageMerge, errors.KindFormat, err,
			"failed to decode resolved document")
	}

	// Qualified interface names, by arena index.
	ifaceNames := make([]string, len(raw.Interfaces))
	for i, iface := range raw.Interfaces {
		name := fmt.Sprintf("interface-%d", i)
		if iface.Name != nil {
			name = *iface.Name
		}
		if iface.Package != nil && *iface.Package >= 0 && *iface.Package < len(raw.Packages) {
			name = raw.Packages[*iface.Package].Name + "/" + name
		}
		ifaceNames[i] = name
	}

	doc := &Document{}
	for _, pkg := range raw.Packages {
		p := &Package{Name: pkg.Name}
		for name := range pkg.Interfaces {
			p.Interfaces = append(p.Interfaces, pkg.Name+"/"+name)
		}
		for name := range pkg.Worlds {
			p.Worlds = append(p.Worlds, name)
		}
		doc.Packages = append(doc.Packages, p)
	}

	for i, w := range raw.Worlds {
		world := &World{
			Name:    w.Name,
			Imports: itemTargets(w.Imports, ifaceNames),
			Exports: itemTargets(w.Exports, ifaceNames),
		}
		// Attribute the world to whichever package lists it.
		for pi, pkg := range raw.Packages {
			for name, idx := range pkg.Worlds {
				if idx == i && name == w.Name {
					world.Package = raw.Packages[pi].Name
				}
			}
		}
		doc.Worlds = append(doc.Worlds, world)
	}
	return doc, nil
}

func itemTargets(items map[string]jsonItem, ifaceNames []string) map[string]string {
	out := make(map[string]string, len(items))
	for key, item := range items {
		switch {
		case item.Interface != nil:
			if item.Interface.ID >= 0 && item.Interface.ID < len(ifaceNames) {
				out[key] = "interface " + ifaceNames[item.Interface.ID]
			} else {
				out[key] = fmt.Sprintf("interface #%d", item.Interface.ID)
			}
		case item.Function != nil:
			out[key] = "function " + string(item.Function)
		case item.Type != nil:
			out[key] = "type " + string(item.Type)
		default:
			out[key] = "unknown"
		}
	}
	return out
}
