package testutil

import (
	"testing/fstest"

	"github.com/fhe-forge/fheforge/internal/registry"
)

// SourcesFor builds an in-memory source filesystem containing the declared
// contract and test files for the given descriptors. Descriptors whose id is
// listed in missing get no files, to exercise placeholder paths.
func SourcesFor(descriptors []registry.Descriptor, missing ...string) fstest.MapFS {
	skip := make(map[string]bool, len(missing))
	for _, id := range missing {
		skip[id] = true
	}

	fsys := fstest.MapFS{}
	for _, d := range descriptors {
		if skip[d.ID] {
			continue
		}
		fsys[d.ContractPath] = &fstest.MapFile{
			Data: []byte("// SPDX-License-Identifier: MIT\npragma solidity ^0.8.24;\n\ncontract " + registry.ContractName(d.ID) + " {}\n"),
		}
		fsys[d.TestPath] = &fstest.MapFile{
			Data: []byte("describe(\"" + registry.ContractName(d.ID) + "\", () => {});\n"),
		}
	}
	return fsys
}
