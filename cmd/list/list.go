package list

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fhe-forge/fheforge/internal/runtime"
	"github.com/fhe-forge/fheforge/internal/ui"
)

func New(runtimeContext *runtime.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists the bundled examples",
		Long:  `Displays every example known to the registry, including entries merged from a manifest.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.Line()
			ui.Title("Available Examples")
			ui.Line()

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "Title", "Category", "Description"})
			for _, d := range runtimeContext.Registry.List() {
				t.AppendRow(table.Row{d.ID, d.Title, d.Category, d.Description})
			}
			t.SetStyle(table.StyleLight)
			t.Render()

			ui.Line()
			ui.Dim("Scaffold an example with:")
			ui.Command("  fheforge scaffold <example-id> <output-dir>")
			ui.Line()

			return nil
		},
	}

	return cmd
}
