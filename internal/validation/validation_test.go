package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scaffoldInputs struct {
	ExampleID string `validate:"omitempty,example_id" cli:"example-id"`
	OutputDir string `validate:"omitempty,filepath" cli:"output-dir"`
}

func TestStructWithExampleID(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	valid := []string{"", "fhe-counter", "access-control", "a", "v2-counter"}
	for _, id := range valid {
		assert.NoError(t, v.Struct(scaffoldInputs{ExampleID: id}), "id %q", id)
	}

	invalid := []string{"FheCounter", "fhe counter", "fhe--counter", "-counter", "counter-", "2fast", "über"}
	for _, id := range invalid {
		err := v.Struct(scaffoldInputs{ExampleID: id})
		require.Error(t, err, "id %q", id)
		// The "cli" tag name, not the Go field name, must appear in the message.
		assert.Contains(t, err.Error(), "example-id")
	}
}

func TestIsValidExampleID(t *testing.T) {
	assert.NoError(t, IsValidExampleID("transportation-dispatch"))

	err := IsValidExampleID("Not_An_ID")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not_An_ID")
}
