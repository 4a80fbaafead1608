package catalog

import "fmt"

// catalog holds the module set with precomputed lookup indices.
type catalog struct {
	modules []Module
	byKey   map[string]*Module
	byAlias map[string]string // normalized alias → module key
}

// c is the package-level catalog singleton, built from the embedded data by
// init(). The catalog is read-only after construction.
var c *catalog

func init() {
	modules, err := loadModules(modulesJSON)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	built, err := buildCatalog(modules)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	c = built
}

// buildCatalog validates the module set and constructs the lookup indices.
func buildCatalog(modules []Module) (*catalog, error) {
	if err := validateModules(modules); err != nil {
		return nil, err
	}

	ct := &catalog{
		modules: modules,
		byKey:   make(map[string]*Module, len(modules)),
		byAlias: make(map[string]string),
	}
	for i := range ct.modules {
		m := &ct.modules[i]
		ct.byKey[m.Key] = m
		// The key itself always resolves, alongside the authored aliases.
		ct.byAlias[m.Key] = m.Key
		for _, alias := range m.Aliases {
			ct.byAlias[Normalize(alias)] = m.Key
		}
	}
	return ct, nil
}

// Resolve maps a free-text service name and category to a module key.
// The service name is checked before the category, so a name match wins even
// when both would resolve to different modules. Empty candidates are skipped.
// Returns ("", false) when nothing matches.
func Resolve(serviceName, serviceCategory string) (string, bool) {
	for _, candidate := range []string{serviceName, serviceCategory} {
		if candidate == "" {
			continue
		}
		normalized := Normalize(candidate)
		if normalized == "" {
			continue
		}
		if key, ok := c.byAlias[normalized]; ok {
			return key, true
		}
	}
	return "", false
}

// Get returns the module for the given key, or nil if the key is unknown.
func Get(key string) *Module {
	return c.byKey[key]
}

// Keys returns all module keys in catalog declaration order.
func Keys() []string {
	keys := make([]string, 0, len(c.modules))
	for i := range c.modules {
		keys = append(keys, c.modules[i].Key)
	}
	return keys
}

// All returns all modules in catalog declaration order.
func All() []Module {
	out := make([]Module, len(c.modules))
	copy(out, c.modules)
	return out
}
