package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra/doc"

	"github.com/fhe-forge/fheforge/cmd"
)

// Generates the CLI command reference into docs/cli. The example
// documentation itself is produced by "fheforge docs --all".
func main() {

	log.Println("Generating CLI reference...")
	outputDir := filepath.Join("docs", "cli")
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		err := os.MkdirAll(outputDir, 0755)
		if err != nil {
			log.Fatal("Error creating docs dir: " + err.Error())
		}
	}

	err := doc.GenMarkdownTree(cmd.RootCmd, outputDir)
	if err != nil {
		log.Fatal("Error generating documentation: " + err.Error())
	}
	log.Println("CLI reference generated in " + outputDir)
}
