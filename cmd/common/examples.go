package common

import (
	"fmt"
	"io"

	"github.com/fhe-forge/fheforge/internal/registry"
	"github.com/fhe-forge/fheforge/internal/ui"
)

// PrintExampleList enumerates every registered example. Shared by the
// scaffold and docs commands, which print it with their usage text both on
// --help and when called without arguments.
func PrintExampleList(w io.Writer, reg *registry.Registry) {
	if reg == nil {
		// Help can run before the registry is attached to the runtime context.
		reg = registry.Default()
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.BoldStyle.Render("Available examples:"))
	for _, d := range reg.List() {
		fmt.Fprintln(w, ui.CommandStyle.Render("  "+d.ID))
		fmt.Fprintln(w, ui.DimStyle.Render(fmt.Sprintf("    %s: %s", d.Title, d.Description)))
	}
	fmt.Fprintln(w)
}
