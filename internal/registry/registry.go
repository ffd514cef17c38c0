package registry

import (
	"fmt"
	"strings"
)

// Descriptor is the metadata record for one bundled example.
// Source paths are relative to the examples root, not to any output directory.
type Descriptor struct {
	ID           string
	Title        string
	Description  string
	Category     string
	ContractPath string
	TestPath     string
	DocPath      string // advisory; the doc generator derives output paths from ID
}

// CategoryGroup is one category bucket, in first-appearance order.
type CategoryGroup struct {
	Name     string
	Examples []Descriptor
}

// NotFoundError is returned when an example id cannot be resolved.
// Its message carries the full list of valid ids so every caller
// surfaces them to the user.
type NotFoundError struct {
	ID    string
	Valid []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown example %q, available examples: %s",
		e.ID, strings.Join(e.Valid, ", "))
}

// Registry is an immutable, ordered example lookup table.
// Construct one with New and pass it by reference into the tools;
// there is no package-level mutable state.
type Registry struct {
	ordered []Descriptor
	byID    map[string]int
}

// New builds a Registry from descriptors in declaration order.
// Ids must be non-empty and unique.
func New(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{
		ordered: make([]Descriptor, 0, len(descriptors)),
		byID:    make(map[string]int, len(descriptors)),
	}

	for _, d := range descriptors {
		if d.ID == "" {
			return nil, fmt.Errorf("example descriptor %q has an empty id", d.Title)
		}
		if _, exists := r.byID[d.ID]; exists {
			return nil, fmt.Errorf("duplicate example id %q", d.ID)
		}
		r.byID[d.ID] = len(r.ordered)
		r.ordered = append(r.ordered, d)
	}

	return r, nil
}

// Resolve looks up a descriptor by exact, case-sensitive id match.
func (r *Registry) Resolve(id string) (Descriptor, error) {
	idx, ok := r.byID[id]
	if !ok {
		return Descriptor{}, &NotFoundError{ID: id, Valid: r.IDs()}
	}
	return r.ordered[idx], nil
}

// List returns all descriptors in declaration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// IDs returns all registered ids in declaration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.ordered))
	for i, d := range r.ordered {
		ids[i] = d.ID
	}
	return ids
}

// Len returns the number of registered examples.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// Categories groups descriptors by category. Categories appear in the order
// they are first declared, and examples keep declaration order within each
// group. No alphabetical sorting: the index document depends on this order
// being stable across runs.
func (r *Registry) Categories() []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)

	for _, d := range r.ordered {
		i, ok := index[d.Category]
		if !ok {
			i = len(groups)
			index[d.Category] = i
			groups = append(groups, CategoryGroup{Name: d.Category})
		}
		groups[i].Examples = append(groups[i].Examples, d)
	}

	return groups
}

// Merge returns a new Registry with extra descriptors appended after the
// receiver's. Duplicate ids are rejected, keeping lookups total.
func (r *Registry) Merge(extra ...Descriptor) (*Registry, error) {
	return New(append(r.List(), extra...)...)
}

// ContractName derives a contract identifier from an example id:
// title-cased, separators removed ("fhe-counter" becomes "FheCounter").
// Used for placeholder synthesis when a declared source file is missing.
func ContractName(id string) string {
	var sb strings.Builder
	for _, part := range strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_'
	}) {
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(strings.ToLower(part[1:]))
	}
	return sb.String()
}
