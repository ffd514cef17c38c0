package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/fhe-forge/fheforge/cmd/docs"
	"github.com/fhe-forge/fheforge/cmd/list"
	"github.com/fhe-forge/fheforge/cmd/scaffold"
	"github.com/fhe-forge/fheforge/cmd/version"
	"github.com/fhe-forge/fheforge/internal/constants"
	"github.com/fhe-forge/fheforge/internal/logger"
	"github.com/fhe-forge/fheforge/internal/runtime"
	"github.com/fhe-forge/fheforge/internal/ui"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCommand()

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

// NewRootCommand builds a fresh root command with its own runtime context.
// Tests construct their own instance instead of sharing RootCmd.
func NewRootCommand() *cobra.Command {
	rootLogger := logger.NewConsoleLogger()
	rootViper := viper.New()
	runtimeContext := runtime.NewContext(rootLogger, rootViper)

	// By defining a RunE we force PersistentPreRunE to execute even when
	// fheforge is called with no subcommand, so help always sees a registry.
	helpRunE := func(cmd *cobra.Command, args []string) error {
		if err := cmd.Help(); err != nil {
			return fmt.Errorf("fail to show help: %w", err)
		}
		return nil
	}

	rootCmd := &cobra.Command{
		Use:               "fheforge",
		Short:             "FHEVM example scaffolder and doc generator",
		Long: `A command line tool for the FHEVM example bundle: scaffold standalone
Hardhat projects from the bundled examples and generate their markdown
documentation.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true, // Execute prints fatal errors through ui.Error
		RunE:              helpRunE,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log := runtimeContext.Logger
			v := runtimeContext.Viper

			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if verbose := v.GetBool("verbose"); verbose {
				newLogger := log.Level(zerolog.DebugLevel)
				runtimeContext.Logger = &newLogger
			}

			manifestPath := v.GetString("manifest")
			if err := runtimeContext.AttachRegistry(manifestPath); err != nil {
				return err
			}

			return nil
		},
	}

	cobra.AddTemplateFunc("wrappedFlagUsages", func(fs *pflag.FlagSet) string {
		// 100 = wrap width
		return strings.TrimRight(fs.FlagUsagesWrapped(100), "\n")
	})

	rootCmd.SetHelpTemplate(`
{{- with (or .Long .Short)}}{{.}}{{end}}

Usage:
{{- if .Runnable}}
  {{.UseLine}}
{{- end}}
{{- if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]
{{- end}}

{{- if .HasAvailableSubCommands}}

Available Commands:
{{- range .Commands}}
  {{- if (and (not .Hidden) (.IsAvailableCommand))}}
  {{rpad .Name .NamePadding}}  {{.Short}}
  {{- end}}
{{- end}}
{{- end}}

{{- if .HasExample}}

Examples:
{{.Example}}
{{- end}}

{{- $local := (.LocalFlags | wrappedFlagUsages) -}}
{{- if $local}}

Flags:
{{$local}}
{{- end}}

{{- $inherited := (.InheritedFlags | wrappedFlagUsages) -}}
{{- if $inherited}}

Global Flags:
{{$inherited}}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.
{{- end}}

💡 Tip: New here? Run:
  $ fheforge list
    to browse the bundled examples, then:
  $ fheforge scaffold <example-id> <output-dir>
    to create your first project.
`)

	rootCmd.PersistentFlags().BoolP(
		"verbose",
		"v",
		false,
		"Run command in VERBOSE mode",
	)

	rootCmd.PersistentFlags().String(
		"examples-root",
		constants.DefaultExamplesRoot,
		"Directory the bundled example sources are resolved against",
	)

	rootCmd.PersistentFlags().String(
		"manifest",
		"",
		fmt.Sprintf("Path to a %s manifest with extra examples", constants.DefaultManifestFileName),
	)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.AddCommand(
		scaffold.New(runtimeContext),
		docs.New(runtimeContext),
		list.New(runtimeContext),
		version.New(runtimeContext),
	)

	return rootCmd
}
