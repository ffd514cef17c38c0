package docs

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fhe-forge/fheforge/cmd/common"
	"github.com/fhe-forge/fheforge/internal/constants"
	"github.com/fhe-forge/fheforge/internal/docgen"
	"github.com/fhe-forge/fheforge/internal/registry"
	"github.com/fhe-forge/fheforge/internal/runtime"
	"github.com/fhe-forge/fheforge/internal/ui"
	"github.com/fhe-forge/fheforge/internal/validation"
)

type Inputs struct {
	// Resolution against the registry is the single authority on ids; an
	// unknown string fails there with the full valid-id list.
	ExampleID    string `cli:"example-id"`
	OutputDir    string `validate:"required" cli:"output"`
	ExamplesRoot string `validate:"required" cli:"examples-root"`
	All          bool
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	var docsCmd = &cobra.Command{
		Use:     "docs [example-id]",
		Aliases: []string{"gendoc"},
		Short:   "Generate markdown documentation for the examples",
		Long: `Generate markdown documentation from the bundled example sources: one
document per example with the contract and test code embedded verbatim.
With --all, also write the category index (SUMMARY.md) and the
getting-started guide.`,
		Example: `  fheforge docs fhe-counter
  fheforge docs --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := newHandler(runtimeContext)

			inputs, err := handler.ResolveInputs(args, runtimeContext.Viper)
			if err != nil {
				return err
			}

			if !inputs.All && inputs.ExampleID == "" {
				// Help appends the example list, matching --help.
				return cmd.Help()
			}

			if err := handler.ValidateInputs(inputs); err != nil {
				return err
			}
			return handler.Execute(inputs)
		},
	}

	docsCmd.Flags().Bool("all", false, "Generate documentation for every example, plus the index and the guide")
	docsCmd.Flags().StringP("output", "o", constants.DefaultDocsDirName, "Output directory for generated documentation")

	defaultHelp := docsCmd.HelpFunc()
	docsCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelp(cmd, args)
		common.PrintExampleList(cmd.OutOrStdout(), runtimeContext.Registry)
	})

	return docsCmd
}

type handler struct {
	log       *zerolog.Logger
	registry  *registry.Registry
	validated bool
}

func newHandler(ctx *runtime.Context) *handler {
	return &handler{
		log:      ctx.Logger,
		registry: ctx.Registry,
	}
}

func (h *handler) ResolveInputs(args []string, v *viper.Viper) (Inputs, error) {
	inputs := Inputs{
		OutputDir:    v.GetString("output"),
		ExamplesRoot: v.GetString("examples-root"),
		All:          v.GetBool("all"),
	}
	if len(args) == 1 {
		inputs.ExampleID = args[0]
	}
	return inputs, nil
}

func (h *handler) ValidateInputs(inputs Inputs) error {
	if inputs.All && inputs.ExampleID != "" {
		return fmt.Errorf("pass either an example id or --all, not both")
	}

	validator, err := validation.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validator.Struct(inputs); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	h.validated = true
	return nil
}

func (h *handler) Execute(inputs Inputs) error {
	if !h.validated {
		return fmt.Errorf("handler inputs not validated")
	}

	generator := docgen.New(
		h.log,
		h.registry,
		os.DirFS(inputs.ExamplesRoot),
		docgen.WithOutputDir(inputs.OutputDir),
	)

	if inputs.All {
		var written []string
		err := ui.WithSpinner("Generating documentation...", func() error {
			var genErr error
			written, genErr = generator.GenerateAll()
			return genErr
		})
		if err != nil {
			return err
		}

		ui.Line()
		ui.Success(fmt.Sprintf("Generated %d document(s) in %s", len(written), inputs.OutputDir))
		ui.Line()
		return nil
	}

	path, err := generator.Generate(inputs.ExampleID)
	if err != nil {
		return err
	}

	ui.Line()
	ui.Success("Documentation generated")
	ui.Code("  " + path)
	ui.Line()
	return nil
}
