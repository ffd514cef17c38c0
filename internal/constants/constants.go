package constants

const (
	// Generated project layout
	ContractsDirName      = "contracts"
	TestDirName           = "test"
	ReadmeFileName        = "README.md"
	GitIgnoreFileName     = ".gitignore"
	EnvExampleFileName    = ".env.example"
	EnvFileName           = ".env"
	PackageManifestName   = "package.json"
	HardhatConfigFileName = "hardhat.config.ts"
	TSConfigFileName      = "tsconfig.json"

	// Bundled example sources, relative to the examples root
	ContractSourceDirName = "examples/contracts"
	TestSourceDirName     = "examples/test"

	// Documentation output
	DefaultDocsDirName      = "docs"
	SummaryFileName         = "SUMMARY.md"
	GettingStartedFileName  = "GETTING_STARTED.md"
	CommandReferenceDirName = "cli"

	// Flags and config
	DefaultExamplesRoot     = "."
	DefaultManifestFileName = "fheforge.yaml"

	// Source file extensions of the bundled Hardhat examples
	ContractFileExt = ".sol"
	TestFileExt     = ".test.ts"

	// Seedable keys copied from --env-file into a generated project's .env
	EnvKeyMnemonic      = "MNEMONIC"
	EnvKeyInfuraAPIKey  = "INFURA_API_KEY"
	EnvKeyEtherscanKey  = "ETHERSCAN_API_KEY"
	EnvKeySepoliaRPCURL = "SEPOLIA_RPC_URL"
)
