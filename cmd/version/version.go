package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fhe-forge/fheforge/internal/runtime"
)

// Default placeholder value
var Version = "development"

func New(runtimeContext *runtime.Context) *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the fheforge version",
		Long:  "This command prints the current version of fheforge",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "fheforge", Version)
			return nil
		},
	}

	return versionCmd
}
