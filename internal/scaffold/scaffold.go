// Package scaffold materializes a standalone Hardhat project for one bundled
// example: base build files, the example's contract and test sources, and the
// generated project files (README, .gitignore, .env.example).
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/fhe-forge/fheforge/internal/constants"
	"github.com/fhe-forge/fheforge/internal/examplesrc"
	"github.com/fhe-forge/fheforge/internal/registry"
)

//go:embed template/base/* template/project/* template/placeholder/*
var templateContent embed.FS

// GitRunner initializes a version-control repository in dir.
// Injectable so tests never shell out.
type GitRunner func(log *zerolog.Logger, dir string) error

// Scaffolder generates new example projects. Construct with New.
type Scaffolder struct {
	log      *zerolog.Logger
	registry *registry.Registry
	sources  fs.FS
	git      GitRunner
	skipGit  bool
	envSeed  map[string]string
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithGitRunner replaces the default git invocation.
func WithGitRunner(runner GitRunner) Option {
	return func(s *Scaffolder) {
		s.git = runner
	}
}

// WithSkipGit disables repository initialization entirely.
func WithSkipGit(skip bool) Option {
	return func(s *Scaffolder) {
		s.skipGit = skip
	}
}

// WithEnvSeed writes a .env into the generated project carrying the given
// key/value pairs, alongside the always-generated .env.example.
func WithEnvSeed(values map[string]string) Option {
	return func(s *Scaffolder) {
		s.envSeed = values
	}
}

// New creates a Scaffolder reading example sources from sources.
func New(log *zerolog.Logger, reg *registry.Registry, sources fs.FS, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		log:      log,
		registry: reg,
		sources:  sources,
		git:      GitInit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result describes what a successful scaffold produced.
type Result struct {
	OutputDir           string
	ProjectName         string
	ContractFile        string
	TestFile            string
	ContractPlaceholder bool
	TestPlaceholder     bool
	GitInitialized      bool
}

// Scaffold generates a project for exampleID under outputDir. An existing
// directory is merged into: same-named files are overwritten, unrelated files
// are left alone. There is no rollback; a failed file operation aborts with an
// error naming the path and may leave a partial project behind.
func (s *Scaffolder) Scaffold(exampleID, outputDir string) (*Result, error) {
	descriptor, err := s.registry.Resolve(exampleID)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, pkgerrors.Wrapf(err, "create output directory %s", outputDir)
	}

	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "resolve output directory %s", outputDir)
	}

	result := &Result{
		OutputDir:   outputDir,
		ProjectName: filepath.Base(absOut),
	}

	if err := s.copyBaseTemplate(outputDir, descriptor, result.ProjectName); err != nil {
		return nil, err
	}

	if err := s.placeContract(outputDir, descriptor, result); err != nil {
		return nil, err
	}
	if err := s.placeTest(outputDir, descriptor, result); err != nil {
		return nil, err
	}

	if err := s.generateProjectFiles(outputDir, descriptor, result.ProjectName); err != nil {
		return nil, err
	}

	if !s.skipGit {
		if err := s.git(s.log, outputDir); err != nil {
			// Best effort only: a missing git binary or a parent repository
			// must never fail the scaffold.
			s.log.Warn().Err(err).Msg("Could not initialize a git repository, continuing without one")
		} else {
			result.GitInitialized = true
		}
	}

	return result, nil
}

// copyBaseTemplate walks the embedded base template and writes every entry
// under outputDir, stripping the .tpl suffix and substituting placeholders.
func (s *Scaffolder) copyBaseTemplate(outputDir string, d registry.Descriptor, projectName string) error {
	const templateRoot = "template/base"

	replacements := map[string]string{
		"ProjectName": projectName,
		"Description": d.Description,
	}

	return fs.WalkDir(templateContent, templateRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(templateRoot, path)
		if relPath == "." {
			return nil
		}

		if entry.IsDir() {
			return os.MkdirAll(filepath.Join(outputDir, relPath), 0755)
		}

		targetPath := filepath.Join(outputDir, strings.TrimSuffix(relPath, ".tpl"))

		content, err := templateContent.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read embedded template %s: %w", path, err)
		}

		finalContent := renderTemplate(string(content), replacements)

		if err := os.WriteFile(targetPath, []byte(finalContent), 0600); err != nil {
			return pkgerrors.Wrapf(err, "write %s", targetPath)
		}

		s.log.Debug().Msgf("Copied base file to: %s", targetPath)
		return nil
	})
}

func (s *Scaffolder) placeContract(outputDir string, d registry.Descriptor, result *Result) error {
	contractsDir := filepath.Join(outputDir, constants.ContractsDirName)
	if err := os.MkdirAll(contractsDir, 0755); err != nil {
		return pkgerrors.Wrapf(err, "create directory %s", contractsDir)
	}

	src, err := examplesrc.Load(s.sources, d.ContractPath)
	if err != nil {
		return err
	}

	if src.Found {
		targetPath := filepath.Join(contractsDir, filepath.Base(d.ContractPath))
		if err := os.WriteFile(targetPath, src.Content, 0600); err != nil {
			return pkgerrors.Wrapf(err, "write %s", targetPath)
		}
		result.ContractFile = targetPath
		return nil
	}

	// The declared source is not written yet. Synthesize a compilable skeleton
	// so the scaffold still succeeds; a human has to finish it.
	s.log.Warn().Msgf("Contract source %s is missing, generating a placeholder", d.ContractPath)

	contractName := registry.ContractName(d.ID)
	targetPath := filepath.Join(contractsDir, contractName+constants.ContractFileExt)
	if err := s.writePlaceholder(targetPath, "template/placeholder/Contract.sol.tpl", d, contractName); err != nil {
		return err
	}

	result.ContractFile = targetPath
	result.ContractPlaceholder = true
	return nil
}

func (s *Scaffolder) placeTest(outputDir string, d registry.Descriptor, result *Result) error {
	testDir := filepath.Join(outputDir, constants.TestDirName)
	if err := os.MkdirAll(testDir, 0755); err != nil {
		return pkgerrors.Wrapf(err, "create directory %s", testDir)
	}

	src, err := examplesrc.Load(s.sources, d.TestPath)
	if err != nil {
		return err
	}

	if src.Found {
		targetPath := filepath.Join(testDir, filepath.Base(d.TestPath))
		if err := os.WriteFile(targetPath, src.Content, 0600); err != nil {
			return pkgerrors.Wrapf(err, "write %s", targetPath)
		}
		result.TestFile = targetPath
		return nil
	}

	s.log.Warn().Msgf("Test source %s is missing, generating a placeholder", d.TestPath)

	contractName := registry.ContractName(d.ID)
	targetPath := filepath.Join(testDir, contractName+constants.TestFileExt)
	if err := s.writePlaceholder(targetPath, "template/placeholder/Contract.test.ts.tpl", d, contractName); err != nil {
		return err
	}

	result.TestFile = targetPath
	result.TestPlaceholder = true
	return nil
}

func (s *Scaffolder) writePlaceholder(targetPath, templatePath string, d registry.Descriptor, contractName string) error {
	content, err := templateContent.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read embedded template %s: %w", templatePath, err)
	}

	finalContent := renderTemplate(string(content), map[string]string{
		"ContractName": contractName,
		"Title":        d.Title,
		"ExampleID":    d.ID,
	})

	if err := os.WriteFile(targetPath, []byte(finalContent), 0600); err != nil {
		return pkgerrors.Wrapf(err, "write %s", targetPath)
	}
	return nil
}

func (s *Scaffolder) generateProjectFiles(outputDir string, d registry.Descriptor, projectName string) error {
	contractName := registry.ContractName(d.ID)

	files := []struct {
		template string
		target   string
		repl     map[string]string
	}{
		{
			template: "template/project/README.md.tpl",
			target:   constants.ReadmeFileName,
			repl: map[string]string{
				"Title":            d.Title,
				"Description":      d.Description,
				"Category":         d.Category,
				"ExampleID":        d.ID,
				"ProjectName":      projectName,
				"ContractFileName": contractName + constants.ContractFileExt,
				"TestFileName":     contractName + constants.TestFileExt,
			},
		},
		{
			// The leading dot is added here; embed patterns skip dotfiles.
			template: "template/project/gitignore.tpl",
			target:   constants.GitIgnoreFileName,
		},
		{
			template: "template/project/env.example.tpl",
			target:   constants.EnvExampleFileName,
		},
	}

	for _, f := range files {
		content, err := templateContent.ReadFile(f.template)
		if err != nil {
			return fmt.Errorf("failed to read embedded template %s: %w", f.template, err)
		}

		targetPath := filepath.Join(outputDir, f.target)
		if err := os.WriteFile(targetPath, []byte(renderTemplate(string(content), f.repl)), 0600); err != nil {
			return pkgerrors.Wrapf(err, "write %s", targetPath)
		}
		s.log.Debug().Msgf("Generated %s", targetPath)
	}

	if len(s.envSeed) > 0 {
		if err := s.writeSeededEnv(outputDir); err != nil {
			return err
		}
	}

	return nil
}

// writeSeededEnv writes a real .env with values taken from the user's own
// dotenv file. Only known keys are carried over, in a fixed order so repeated
// scaffolds produce identical files.
func (s *Scaffolder) writeSeededEnv(outputDir string) error {
	keys := []string{
		constants.EnvKeyMnemonic,
		constants.EnvKeyInfuraAPIKey,
		constants.EnvKeyEtherscanKey,
		constants.EnvKeySepoliaRPCURL,
	}

	var sb strings.Builder
	for _, key := range keys {
		if value, ok := s.envSeed[key]; ok {
			fmt.Fprintf(&sb, "%s=%s\n", key, value)
		}
	}

	if sb.Len() == 0 {
		return nil
	}

	targetPath := filepath.Join(outputDir, constants.EnvFileName)
	if err := os.WriteFile(targetPath, []byte(sb.String()), 0600); err != nil {
		return pkgerrors.Wrapf(err, "write %s", targetPath)
	}

	s.log.Debug().Msgf("Seeded %s from the provided env file", targetPath)
	return nil
}

// renderTemplate substitutes {{Key}} placeholders. Plain string replacement,
// no template engine: generated files are code and config, not HTML.
func renderTemplate(content string, replacements map[string]string) string {
	var replacerArgs []string
	for key, value := range replacements {
		replacerArgs = append(replacerArgs, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(replacerArgs...).Replace(content)
}
