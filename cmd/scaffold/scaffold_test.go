package scaffold

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

// writeExampleSources lays the bundled source files out on disk under root,
// since the command resolves them through --examples-root.
func writeExampleSources(t *testing.T, root string) {
	t.Helper()
	for _, d := range registry.Builtin() {
		for path, content := range map[string]string{
			d.ContractPath: "// SPDX-License-Identifier: MIT\npragma solidity ^0.8.24;\n\ncontract " + registry.ContractName(d.ID) + " {}\n",
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

func TestScaffoldExecuteFlows(t *testing.T) {
	cases := []struct {
		name             string
		exampleID        string
		expectContract   string
		expectTest       string
		expectReadmeText string
	}{
		{
			name:             "fhe-counter",
			exampleID:        "fhe-counter",
			expectContract:   "FheCounter.sol",
			expectTest:       "FheCounter.test.ts",
			expectReadmeText: "FHE Counter",
		},
		{
			name:             "access-control",
			exampleID:        "access-control",
			expectContract:   "AccessControl.sol",
			expectTest:       "AccessControl.test.ts",
			expectReadmeText: "Encrypted Access Control",
		},
		{
			name:             "transportation-dispatch",
			exampleID:        "transportation-dispatch",
			expectContract:   "TransportationDispatch.sol",
			expectTest:       "TransportationDispatch.test.ts",
			expectReadmeText: "Anonymous Transport Dispatch",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			examplesRoot := t.TempDir()
			writeExampleSources(t, examplesRoot)

			out := filepath.Join(t.TempDir(), tc.exampleID)

			h := newHandler(newTestContext(t))
			inputs := Inputs{
				ExampleID:    tc.exampleID,
				OutputDir:    out,
				ExamplesRoot: examplesRoot,
				SkipGit:      true,
			}

			require.NoError(t, h.ValidateInputs(inputs))
			require.NoError(t, h.Execute(inputs))

			require.FileExists(t, filepath.Join(out, "contracts", tc.expectContract))
			require.FileExists(t, filepath.Join(out, "test", tc.expectTest))
			require.FileExists(t, filepath.Join(out, "README.md"))
			require.FileExists(t, filepath.Join(out, ".gitignore"))
			require.FileExists(t, filepath.Join(out, ".env.example"))

			readme, err := os.ReadFile(filepath.Join(out, "README.md"))
			require.NoError(t, err)
			assert.Contains(t, string(readme), tc.expectReadmeText)
		})
	}
}

func TestScaffoldExecuteUnknownID(t *testing.T) {
	h := newHandler(newTestContext(t))
	inputs := Inputs{
		ExampleID:    "unknown-example",
		OutputDir:    filepath.Join(t.TempDir(), "out"),
		ExamplesRoot: t.TempDir(),
		SkipGit:      true,
	}

	require.NoError(t, h.ValidateInputs(inputs))

	err := h.Execute(inputs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fhe-counter")
}

func TestScaffoldValidateInputs(t *testing.T) {
	h := newHandler(newTestContext(t))

	err := h.ValidateInputs(Inputs{
		OutputDir:    "./out",
		ExamplesRoot: ".",
	})
	require.Error(t, err, "empty example id must not validate")
	assert.Contains(t, err.Error(), "example-id")

	require.Error(t, h.Execute(Inputs{}), "unvalidated inputs must not execute")
}

func TestScaffoldMalformedIDListsExamples(t *testing.T) {
	// Ids that do not even match the id shape still resolve against the
	// registry, so the error always carries the valid-id list.
	for _, id := range []string{"FheCounter", "fhe_counter!", "UNKNOWN"} {
		t.Run(id, func(t *testing.T) {
			h := newHandler(newTestContext(t))
			inputs := Inputs{
				ExampleID:    id,
				OutputDir:    filepath.Join(t.TempDir(), "out"),
				ExamplesRoot: t.TempDir(),
				SkipGit:      true,
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

func TestScaffoldRerunNonInteractiveMerges(t *testing.T) {
	examplesRoot := t.TempDir()
	writeExampleSources(t, examplesRoot)

	out := filepath.Join(t.TempDir(), "out")
	log, buf := testutil.NewBufferedLogger()

	ctx := newTestContext(t)
	ctx.Logger = log
	h := newHandler(ctx)
	h.isInteractive = func() bool { return false }

	inputs := Inputs{
		ExampleID:    "fhe-counter",
		OutputDir:    out,
		ExamplesRoot: examplesRoot,
		SkipGit:      true,
	}

	require.NoError(t, h.ValidateInputs(inputs))
	require.NoError(t, h.Execute(inputs))

	// Re-running into the now non-empty directory without --force must apply
	// the merge policy with a warning instead of prompting.
	require.NoError(t, h.Execute(inputs))
	assert.Contains(t, buf.String(), "merging")
	require.FileExists(t, filepath.Join(out, "contracts", "FheCounter.sol"))
}

func TestScaffoldExecuteWithEnvFile(t *testing.T) {
	examplesRoot := t.TempDir()
	writeExampleSources(t, examplesRoot)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile,
		[]byte("MNEMONIC=abandon abandon about\nIGNORED=yes\n"), 0600))

	out := filepath.Join(t.TempDir(), "seeded")
	h := newHandler(newTestContext(t))
	inputs := Inputs{
		ExampleID:    "fhe-counter",
		OutputDir:    out,
		ExamplesRoot: examplesRoot,
		EnvFile:      envFile,
		SkipGit:      true,
	}

	require.NoError(t, h.ValidateInputs(inputs))
	require.NoError(t, h.Execute(inputs))

	env, err := os.ReadFile(filepath.Join(out, ".env"))
	require.NoError(t, err)
	assert.Contains(t, string(env), "MNEMONIC=abandon abandon about")
	assert.NotContains(t, string(env), "IGNORED")
}

func TestScaffoldRerunOverwrites(t *testing.T) {
	examplesRoot := t.TempDir()
	writeExampleSources(t, examplesRoot)

	out := filepath.Join(t.TempDir(), "out")
	h := newHandler(newTestContext(t))
	inputs := Inputs{
		ExampleID:    "transportation-dispatch",
		OutputDir:    out,
		ExamplesRoot: examplesRoot,
		SkipGit:      true,
		Force:        true, // second run hits a non-empty directory
	}

	require.NoError(t, h.ValidateInputs(inputs))
	require.NoError(t, h.Execute(inputs))
	require.NoError(t, h.Execute(inputs))

	readme, err := os.ReadFile(filepath.Join(out, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "Anonymous Transport Dispatch")
}

func TestScaffoldResolveInputs(t *testing.T) {
	v := viper.New()
	v.Set("skip-git", true)
	v.Set("force", true)
	v.Set("env-file", "custom.env")
	v.Set("examples-root", "/opt/fheforge")

	h := newHandler(newTestContext(t))
	inputs, err := h.ResolveInputs([]string{"fhe-counter", "./out"}, v)
	require.NoError(t, err)

	assert.Equal(t, "fhe-counter", inputs.ExampleID)
	assert.Equal(t, "./out", inputs.OutputDir)
	assert.True(t, inputs.SkipGit)
	assert.True(t, inputs.Force)
	assert.Equal(t, "custom.env", inputs.EnvFile)
	assert.Equal(t, "/opt/fheforge", inputs.ExamplesRoot)
}
