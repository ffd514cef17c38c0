// Package manifest loads user-authored example descriptors from a YAML file.
// A manifest extends the built-in registry so teams can document and scaffold
// their own contracts with the same tooling as the bundled examples.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fhe-forge/fheforge/internal/registry"
	"github.com/fhe-forge/fheforge/internal/validation"
)

// File is the shape of a fheforge.yaml manifest.
type File struct {
	Examples []Example `yaml:"examples"`
}

// Example is one manifest entry. Contract and test paths are relative to the
// examples root, exactly like the built-in descriptors.
type Example struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Contract    string `yaml:"contract"`
	Test        string `yaml:"test"`
}

// Load reads a manifest file and converts its entries to registry descriptors,
// preserving file order. Ids are validated here so a bad manifest fails before
// any filesystem output is produced.
func Load(path string) ([]registry.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	descriptors := make([]registry.Descriptor, 0, len(f.Examples))
	for _, e := range f.Examples {
		if err := validation.IsValidExampleID(e.ID); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
		if e.Contract == "" || e.Test == "" {
			return nil, fmt.Errorf("manifest %s: example %q must declare both contract and test paths", path, e.ID)
		}

		category := e.Category
		if category == "" {
			category = "custom"
		}

		descriptors = append(descriptors, registry.Descriptor{
			ID:           e.ID,
			Title:        e.Title,
			Description:  e.Description,
			Category:     category,
			ContractPath: e.Contract,
			TestPath:     e.Test,
		})
	}

	return descriptors, nil
}
