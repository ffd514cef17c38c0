package registry

// Builtin returns the descriptors for the examples shipped with fheforge,
// in the order they are presented to users. Declaration order here is the
// ordering contract for generated documentation.
func Builtin() []Descriptor {
	return []Descriptor{
		{
			ID:           "fhe-counter",
			Title:        "FHE Counter",
			Description:  "A counter whose value lives on-chain as an encrypted integer, incremented and decremented without ever being decrypted.",
			Category:     "basic",
			ContractPath: "examples/contracts/FheCounter.sol",
			TestPath:     "examples/test/FheCounter.test.ts",
			DocPath:      "docs/fhe-counter/README.md",
		},
		{
			ID:           "access-control",
			Title:        "Encrypted Access Control",
			Description:  "Role-gated reads of encrypted state, showing how decryption permissions are granted per address.",
			Category:     "intermediate",
			ContractPath: "examples/contracts/AccessControl.sol",
			TestPath:     "examples/test/AccessControl.test.ts",
			DocPath:      "docs/access-control/README.md",
		},
		{
			ID:           "transportation-dispatch",
			Title:        "Anonymous Transport Dispatch",
			Description:  "Riders and drivers are matched on encrypted coordinates so neither party's location is revealed on-chain.",
			Category:     "advanced",
			ContractPath: "examples/contracts/TransportationDispatch.sol",
			TestPath:     "examples/test/TransportationDispatch.test.ts",
			DocPath:      "docs/transportation-dispatch/README.md",
		},
	}
}

// Default returns the registry of bundled examples.
func Default() *Registry {
	r, err := New(Builtin()...)
	if err != nil {
		// The builtin table is authored in this package; an invalid entry
		// is a programming error, not a runtime condition.
		panic(err)
	}
	return r
}
