package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoundTrip(t *testing.T) {
	r := Default()

	for _, id := range r.IDs() {
		d, err := r.Resolve(id)
		require.NoError(t, err)
		assert.Equal(t, id, d.ID)
	}
}

func TestResolveUnknownID(t *testing.T) {
	r := Default()

	cases := []string{"", "unknown-example", "FHE-COUNTER", "fhe-counter ", "Fhe-Counter"}
	for _, id := range cases {
		_, err := r.Resolve(id)
		require.Error(t, err, "id %q must not resolve", id)

		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, id, nf.ID)

		// Every registered id must be part of the suggestion list.
		for _, valid := range r.IDs() {
			assert.Contains(t, err.Error(), valid)
		}
	}
}

func TestListKeepsDeclarationOrder(t *testing.T) {
	r, err := New(
		Descriptor{ID: "zeta", Category: "basic"},
		Descriptor{ID: "alpha", Category: "basic"},
		Descriptor{ID: "mid", Category: "basic"},
	)
	require.NoError(t, err)

	ids := r.IDs()
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, ids)
}

func TestNewRejectsDuplicateID(t *testing.T) {
	_, err := New(
		Descriptor{ID: "dup"},
		Descriptor{ID: "dup"},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dup")
}

func TestNewRejectsEmptyID(t *testing.T) {
	_, err := New(Descriptor{Title: "No ID"})
	require.Error(t, err)
}

func TestCategoriesPreserveDeclarationOrder(t *testing.T) {
	// Deliberately non-alphabetical declaration order, with interleaved
	// categories, to assert the grouping respects declaration order and
	// never sorts.
	r, err := New(
		Descriptor{ID: "w1", Category: "web"},
		Descriptor{ID: "b1", Category: "basic"},
		Descriptor{ID: "w2", Category: "web"},
		Descriptor{ID: "a1", Category: "advanced"},
		Descriptor{ID: "b2", Category: "basic"},
	)
	require.NoError(t, err)

	groups := r.Categories()
	require.Len(t, groups, 3)

	assert.Equal(t, "web", groups[0].Name)
	assert.Equal(t, "basic", groups[1].Name)
	assert.Equal(t, "advanced", groups[2].Name)

	assert.Equal(t, "w1", groups[0].Examples[0].ID)
	assert.Equal(t, "w2", groups[0].Examples[1].ID)
	assert.Equal(t, "b1", groups[1].Examples[0].ID)
	assert.Equal(t, "b2", groups[1].Examples[1].ID)
	assert.Equal(t, "a1", groups[2].Examples[0].ID)
}

func TestMerge(t *testing.T) {
	r := Default()

	merged, err := r.Merge(Descriptor{ID: "custom-example", Category: "basic"})
	require.NoError(t, err)
	assert.Equal(t, r.Len()+1, merged.Len())

	// Appended descriptors come after all builtins.
	ids := merged.IDs()
	assert.Equal(t, "custom-example", ids[len(ids)-1])

	// Original registry is untouched.
	_, err = r.Resolve("custom-example")
	require.Error(t, err)

	// Merging a duplicate of a builtin id fails.
	_, err = r.Merge(Descriptor{ID: "fhe-counter"})
	require.Error(t, err)
}

func TestContractName(t *testing.T) {
	cases := []struct {
		id       string
		expected string
	}{
		{"fhe-counter", "FheCounter"},
		{"access-control", "AccessControl"},
		{"transportation-dispatch", "TransportationDispatch"},
		{"single", "Single"},
		{"snake_case_id", "SnakeCaseId"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ContractName(tc.id), "id %q", tc.id)
	}
}

func TestBuiltinDescriptorsComplete(t *testing.T) {
	for _, d := range Builtin() {
		assert.NotEmpty(t, d.Title, "id %q", d.ID)
		assert.NotEmpty(t, d.Description, "id %q", d.ID)
		assert.NotEmpty(t, d.Category, "id %q", d.ID)
		assert.NotEmpty(t, d.ContractPath, "id %q", d.ID)
		assert.NotEmpty(t, d.TestPath, "id %q", d.ID)
	}
}

func TestNotFoundErrorIsTyped(t *testing.T) {
	r := Default()
	_, err := r.Resolve("nope")

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
}
