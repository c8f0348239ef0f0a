package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "classwalk.dev/pkg/classwalk/internal/model"
)

// inventoryFileName is the file written into the output directory.
const inventoryFileName = "inventory.yaml"

// InventoryStore persists scan inventories so follow-up commands can query
// a prior scan without rescanning the search path.
type InventoryStore interface {
	SaveInventory(dir string, inventory *m.Inventory) error
	LoadInventory(dir string) (*m.Inventory, error)
}

// inventoryRecord is the on-disk shape of one resource.
type inventoryRecord struct {
	Name  string `yaml:"name"`
	Scope string `yaml:"scope"`
}

// inventoryDoc is the on-disk shape of a saved inventory.
type inventoryDoc struct {
	Resources []inventoryRecord `yaml:"resources"`
}

// LocalInventoryStore stores inventories as YAML files on disk.
type LocalInventoryStore struct{}

// NewLocalInventoryStore constructs a LocalInventoryStore.
func NewLocalInventoryStore() *LocalInventoryStore {
	return &LocalInventoryStore{}
}

// SaveInventory writes the inventory into dir, creating it if needed.
func (s *LocalInventoryStore) SaveInventory(dir string, inventory *m.Inventory) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create inventory dir: %w", err)
	}

	doc := inventoryDoc{Resources: make([]inventoryRecord, 0, inventory.Len())}
	for _, resource := range inventory.Resources() {
		doc.Resources = append(doc.Resources, inventoryRecord{
			Name:  resource.Name,
			Scope: resource.Scope.String(),
		})
	}

	content, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}

	target := filepath.Join(dir, inventoryFileName)
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("write inventory %s: %w", target, err)
	}

	return nil
}

// LoadInventory reads a previously saved inventory from dir. Scope identity
// is rebuilt by name: records sharing a scope name share one Scope value.
func (s *LocalInventoryStore) LoadInventory(dir string) (*m.Inventory, error) {
	target := filepath.Join(dir, inventoryFileName)

	content, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("read inventory %s: %w", target, err)
	}

	var doc inventoryDoc
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode inventory %s: %w", target, err)
	}

	scopes := make(map[string]*m.Scope)
	resources := make([]m.Resource, 0, len(doc.Resources))

	for _, record := range doc.Resources {
		scope, known := scopes[record.Scope]
		if !known {
			scope = m.NewScope(record.Scope)
			scopes[record.Scope] = scope
		}

		resources = append(resources, m.Resource{Name: record.Name, Scope: scope})
	}

	return m.NewInventory(resources), nil
}
