package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fhe-forge/fheforge/cmd/common"
	"github.com/fhe-forge/fheforge/internal/registry"
	"github.com/fhe-forge/fheforge/internal/runtime"
	"github.com/fhe-forge/fheforge/internal/scaffold"
	"github.com/fhe-forge/fheforge/internal/ui"
	"github.com/fhe-forge/fheforge/internal/validation"
)

type Inputs struct {
	// The id is deliberately not pattern-checked here: resolution against the
	// registry is the single authority on ids, so any unknown string fails
	// with the full valid-id list.
	ExampleID    string `validate:"required" cli:"example-id"`
	OutputDir    string `validate:"required" cli:"output-dir"`
	EnvFile      string `validate:"omitempty,file" cli:"env-file"`
	ExamplesRoot string `validate:"required" cli:"examples-root"`
	SkipGit      bool
	Force        bool
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	var scaffoldCmd = &cobra.Command{
		Use:     "scaffold <example-id> <output-dir>",
		Aliases: []string{"init"},
		Short:   "Generate a standalone project for one example",
		Long: `Generate a new, independently buildable Hardhat project for one of the
bundled examples: base build files, the example's contract and tests, plus a
README, .gitignore and .env.example.

An existing output directory is merged into: files with matching names are
overwritten, everything else is left untouched.`,
		Example: `  fheforge scaffold fhe-counter ./my-counter
  fheforge scaffold transportation-dispatch ./dispatch --skip-git`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				// Help appends the example list, matching --help.
				return cmd.Help()
			}

			handler := newHandler(runtimeContext)

			inputs, err := handler.ResolveInputs(args, runtimeContext.Viper)
			if err != nil {
				return err
			}
			if err := handler.ValidateInputs(inputs); err != nil {
				return err
			}
			return handler.Execute(inputs)
		},
	}

	scaffoldCmd.Flags().Bool("skip-git", false, "Do not initialize a git repository in the output directory")
	scaffoldCmd.Flags().Bool("force", false, "Write into a non-empty output directory without asking")
	scaffoldCmd.Flags().String("env-file", "", "Seed the generated project's .env from an existing dotenv file")

	defaultHelp := scaffoldCmd.HelpFunc()
	scaffoldCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelp(cmd, args)
		common.PrintExampleList(cmd.OutOrStdout(), runtimeContext.Registry)
	})

	return scaffoldCmd
}

type handler struct {
	log           *zerolog.Logger
	registry      *registry.Registry
	isInteractive func() bool
	validated     bool
}

func newHandler(ctx *runtime.Context) *handler {
	return &handler{
		log:           ctx.Logger,
		registry:      ctx.Registry,
		isInteractive: ui.IsInteractive,
	}
}

func (h *handler) ResolveInputs(args []string, v *viper.Viper) (Inputs, error) {
	return Inputs{
		ExampleID:    args[0],
		OutputDir:    args[1],
		EnvFile:      v.GetString("env-file"),
		ExamplesRoot: v.GetString("examples-root"),
		SkipGit:      v.GetBool("skip-git"),
		Force:        v.GetBool("force"),
	}, nil
}

func (h *handler) ValidateInputs(inputs Inputs) error {
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

	if !inputs.Force {
		if err := h.confirmNonEmptyDirectory(inputs.OutputDir); err != nil {
			return err
		}
	}

	opts := []scaffold.Option{scaffold.WithSkipGit(inputs.SkipGit)}

	if inputs.EnvFile != "" {
		values, err := godotenv.Read(inputs.EnvFile)
		if err != nil {
			return fmt.Errorf("failed to read env file %s: %w", inputs.EnvFile, err)
		}
		opts = append(opts, scaffold.WithEnvSeed(values))
	}

	scaffolder := scaffold.New(h.log, h.registry, os.DirFS(inputs.ExamplesRoot), opts...)

	result, err := scaffolder.Scaffold(inputs.ExampleID, inputs.OutputDir)
	if err != nil {
		return err
	}

	ui.Line()
	ui.Success(fmt.Sprintf("Project generated in %s", result.OutputDir))
	if result.ContractPlaceholder || result.TestPlaceholder {
		ui.Warning("Some source files were missing; placeholders were generated and need a human to finish them")
	}

	ui.Line()
	ui.Bold("Next steps:")
	ui.Dim("1. Install dependencies:")
	ui.Command(fmt.Sprintf("   cd %s && npm install", filepath.Base(result.OutputDir)))
	ui.Dim("2. Run the example's tests:")
	ui.Command("   npx hardhat test")
	ui.Dim("3. Read up on FHEVM:")
	ui.URL("   https://docs.zama.ai/fhevm")
	ui.Line()

	return nil
}

// confirmNonEmptyDirectory asks before layering files into a directory that
// already has content. Matching filenames get overwritten; that is the
// documented merge policy, but an interactive user opts into it. Without a
// terminal the merge proceeds with a warning, so re-scaffolding keeps working
// in CI and piped runs.
func (h *handler) confirmNonEmptyDirectory(outputDir string) error {
	entries, err := os.ReadDir(outputDir)
	if err != nil || len(entries) == 0 {
		// Missing or empty directory needs no confirmation.
		return nil
	}

	if !h.isInteractive() {
		h.log.Warn().Msgf("Directory %s is not empty, merging; files with matching names will be overwritten", outputDir)
		return nil
	}

	proceed, err := ui.Confirm(
		fmt.Sprintf("Directory %s is not empty. Files with matching names will be overwritten.", outputDir),
		ui.WithDescription("Do you want to continue?"),
		ui.WithLabels("Continue", "Abort"),
	)
	if err != nil {
		return fmt.Errorf("failed to prompt for confirmation: %w", err)
	}
	if !proceed {
		return fmt.Errorf("scaffold aborted by user")
	}
	return nil
}
