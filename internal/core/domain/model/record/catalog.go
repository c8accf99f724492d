package record

import (
	"maps"
	"slices"
	"sync"

	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/pkg/errs"
)

// Declaration describes one model: the validators of its fields, the
// defaults applied on creation and loosely typed augmentation options
// (see augment.ParseOptions).
type Declaration struct {
	Name     string
	Schema   schema.Schema
	Defaults schema.Defaults
	Options  map[string]any
}

// Catalog holds the current declarations, keyed by model name.
// Readers never observe a partially replaced catalog.
type Catalog struct {
	mu    sync.RWMutex
	decls map[string]Declaration
}

// NewCatalog returns a catalog holding decls.
func NewCatalog(decls ...Declaration) *Catalog {
	c := &Catalog{}
	c.Replace(decls)
	return c
}

// Replace swaps the whole catalog content for decls. Later duplicates win.
func (c *Catalog) Replace(decls []Declaration) {
	next := make(map[string]Declaration, len(decls))
	for _, d := range decls {
		next[d.Name] = d
	}

	c.mu.Lock()
	c.decls = next
	c.mu.Unlock()
}

// Put adds or replaces a single declaration.
func (c *Catalog) Put(decl Declaration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.decls == nil {
		c.decls = make(map[string]Declaration)
	}
	c.decls[decl.Name] = decl
}

// Get returns the declaration for model or *errs.ObjectNotFoundError.
func (c *Catalog) Get(model string) (Declaration, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	decl, ok := c.decls[model]
	if !ok {
		return Declaration{}, errs.NewObjectNotFoundError("model", model)
	}
	return decl, nil
}

// Names lists the declared models in lexical order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Sorted(maps.Keys(c.decls))
}
