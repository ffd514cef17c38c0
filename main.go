package main

import (
	"github.com/fhe-forge/fheforge/cmd"
)

func main() {
	cmd.Execute()
}
