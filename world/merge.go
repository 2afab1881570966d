package world

import (
	"github.com/wippyai/wasm-component-ld/errors"
)

// Registry accumulates the union of several resolved documents. The
// first document seeds it; later documents fold in under first-wins
// package semantics while the principal world absorbs their imports
// and exports.
type Registry struct {
	Packages []*Package
	World    *World
}

// Merge folds doc into acc. A nil acc is seeded from doc. Package names
// already present keep their first definition. World items merge by
// key; the same key bound to a different target in a later document is
// a conflict.
func Merge(acc *Registry, doc *Document) (*Registry, error) {
	w, err := doc.SelectWorld()
	if err != nil {
		return nil, err
	}

	if acc == nil {
		seed := &World{
			Name:    w.Name,
			Package: w.Package,
			Imports: make(map[string]string, len(w.Imports)),
			Exports: make(map[string]string, len(w.Exports)),
		}
		for k, v := range w.Imports {
			seed.Imports[k] = v
		}
		for k, v := range w.Exports {
			seed.Exports[k] = v
		}
		acc = &Registry{World: seed}
		for _, pkg := range doc.Packages {
			acc.Packages = append(acc.Packages, pkg)
		}
		return acc, nil
	}

	for _, pkg := range doc.Packages {
		if acc.findPackage(pkg.Name) == nil {
			acc.Packages = append(acc.Packages, pkg)
		}
	}

	if err := mergeItems(acc.World.Imports, w.Imports, "import", acc.World.Name, w.Name); err != nil {
		return nil, err
	}
	if err := mergeItems(acc.World.Exports, w.Exports, "export", acc.World.Name, w.Name); err != nil {
		return nil, err
	}
	return acc, nil
}

func mergeItems(dst, src map[string]string, dir, into, from string) error {
	for key, target := range src {
		if have, ok := dst[key]; ok {
			if have != target {
				return errors.New(errors.StageMerge, errors.KindConfig,
					"%s %q from world %s conflicts with world %s: %s vs %s",
					dir, key, from, into, target, have)
			}
			continue
		}
		dst[key] = target
	}
	return nil
}

func (r *Registry) findPackage(name string) *Package {
	for _, pkg := range r.Packages {
		if pkg.Name == name {
			return pkg
		}
	}
	return nil
}
