package tool

import (
	"strings"
	"sync"
)

// Catalog manages a collection of tools with thread-safe operations.
// It provides methods for adding, retrieving, and managing tools by name.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]GenericTool
}

// NewCatalog creates a new empty tool catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tools: make(map[string]GenericTool),
	}
}

// NewCatalogWithTools creates a new catalog pre-populated with the given tools.
// Tool names are taken from each tool's ToolInfo().Name.
func NewCatalogWithTools(tools ...GenericTool) *Catalog {
	catalog := NewCatalog()
	catalog.AddTools(tools...)
	return catalog
}

// AddTools adds multiple tools to the catalog.
// Tool names are automatically extracted from each tool's ToolInfo().Name and stored in lowercase.
// If a tool with the same name already exists, it will be replaced.
func (c *Catalog) AddTools(tools ...GenericTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		info := t.ToolInfo()
		c.tools[strings.ToLower(info.Name)] = t
	}
}

// Get retrieves a tool by name (case-insensitive).
// Returns the tool and true if found, nil and false otherwise.
func (c *Catalog) Get(name string) (GenericTool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tool, exists := c.tools[strings.ToLower(name)]
	return tool, exists
}

// Has checks if a tool with the given name exists (case-insensitive).
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.tools[strings.ToLower(name)]
	return exists
}

// Remove removes a tool from the catalog by name (case-insensitive).
// Returns true if the tool was found and removed, false otherwise.
func (c *Catalog) Remove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	lowerName := strings.ToLower(name)
	if _, exists := c.tools[lowerName]; exists {
		delete(c.tools, lowerName)
		return true
	}
	return false
}

// Tools returns a copy of the internal tool map.
// The returned map can be safely modified without affecting the catalog.
func (c *Catalog) Tools() map[string]GenericTool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	catalogCopy := make(map[string]GenericTool, len(c.tools))
	for name, tool := range c.tools {
		catalogCopy[name] = tool
	}
	return catalogCopy
}

// Size returns the number of tools in the catalog.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}
