package docs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fhe-forge/fheforge/internal/registry"
	"github.com/fhe-forge/fheforge/internal/runtime"
	"github.com/fhe-forge/fheforge/internal/testutil"
)

func writeExampleSources(t *testing.T, root string) {
	t.Helper()
	for _, d := range registry.Builtin() {
		for path, content := range map[string]string{
			d.ContractPath: "contract " + registry.ContractName(d.ID) + " {}\n",
			d.TestPath:     "describe(\"" + registry.ContractName(d.ID) + "\", () => {});\n",
		} {
			full := filepath.Join(root, filepath.FromSlash(path))
			require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
			require.NoError(t, os.WriteFile(full, []byte(content), 0600))
		}
	}
}

func newTestContext(t *testing.T) *runtime.Context {
	t.Helper()
	ctx := runtime.NewContext(testutil.NewTestLogger(), viper.New())
	require.NoError(t, ctx.AttachRegistry(""))
	return ctx
}

func TestDocsExecuteSingleExample(t *testing.T) {
	examplesRoot := t.TempDir()
	writeExampleSources(t, examplesRoot)
	out := t.TempDir()

	h := newHandler(newTestContext(t))
	inputs := Inputs{
		ExampleID:    "fhe-counter",
		OutputDir:    out,
		ExamplesRoot: examplesRoot,
	}

	require.NoError(t, h.ValidateInputs(inputs))
	require.NoError(t, h.Execute(inputs))

	doc, err := os.ReadFile(filepath.Join(out, "fhe-counter", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), "# FHE Counter")
	assert.Contains(t, string(doc), "contract FheCounter {}")

	assert.NoFileExists(t, filepath.Join(out, "SUMMARY.md"),
		"single-example generation must not touch the index")
}

func TestDocsExecuteAll(t *testing.T) {
	examplesRoot := t.TempDir()
	writeExampleSources(t, examplesRoot)
	out := t.TempDir()

	h := newHandler(newTestContext(t))
	inputs := Inputs{
		OutputDir:    out,
		ExamplesRoot: examplesRoot,
		All:          true,
	}

	require.NoError(t, h.ValidateInputs(inputs))
	require.NoError(t, h.Execute(inputs))

	for _, d := range registry.Builtin() {
		require.FileExists(t, filepath.Join(out, d.ID, "README.md"))
	}
	require.FileExists(t, filepath.Join(out, "SUMMARY.md"))
	require.FileExists(t, filepath.Join(out, "GETTING_STARTED.md"))
}

func TestDocsValidateInputs(t *testing.T) {
	h := newHandler(newTestContext(t))

	err := h.ValidateInputs(Inputs{
		ExampleID:    "fhe-counter",
		OutputDir:    "docs",
		ExamplesRoot: ".",
		All:          true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")

	require.Error(t, h.Execute(Inputs{}), "unvalidated inputs must not execute")
}

func TestDocsMalformedIDListsExamples(t *testing.T) {
	for _, id := range []string{"FheCounter", "fhe_counter!"} {
		t.Run(id, func(t *testing.T) {
			h := newHandler(newTestContext(t))
			inputs := Inputs{
				ExampleID:    id,
				OutputDir:    t.TempDir(),
				ExamplesRoot: t.TempDir(),
			}

			require.NoError(t, h.ValidateInputs(inputs))

			err := h.Execute(inputs)
			require.Error(t, err)

			var nf *registry.NotFoundError
			require.True(t, errors.As(err, &nf))
			for _, valid := range registry.Default().IDs() {
				assert.Contains(t, err.Error(), valid)
			}
		})
	}
}

func TestDocsResolveInputs(t *testing.T) {
	v := viper.New()
	v.Set("output", "./site")
	v.Set("examples-root", "/opt/fheforge")
	v.Set("all", true)

	h := newHandler(newTestContext(t))
	inputs, err := h.ResolveInputs(nil, v)
	require.NoError(t, err)

	assert.Empty(t, inputs.ExampleID)
	assert.Equal(t, "./site", inputs.OutputDir)
	assert.Equal(t, "/opt/fheforge", inputs.ExamplesRoot)
	assert.True(t, inputs.All)
}
