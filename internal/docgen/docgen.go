// Package docgen renders the bundled examples into markdown documentation:
// one document per example with the contract and test sources embedded
// verbatim, an index grouped by category, and a static getting-started guide.
package docgen

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/fhe-forge/fheforge/internal/constants"
	"github.com/fhe-forge/fheforge/internal/examplesrc"
	"github.com/fhe-forge/fheforge/internal/registry"
)

//go:embed template/*.tpl
var templateContent embed.FS

// generateAllParallelism bounds the fan-out of GenerateAll. The index is
// collated from registry order after all workers finish, so completion order
// never leaks into the output.
const generateAllParallelism = 4

// Generator renders example documentation. Construct with New.
type Generator struct {
	log      *zerolog.Logger
	registry *registry.Registry
	sources  fs.FS
	outDir   string
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutputDir overrides the docs output directory.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outDir = dir
	}
}

// New creates a Generator reading example sources from sources.
func New(log *zerolog.Logger, reg *registry.Registry, sources fs.FS, opts ...Option) *Generator {
	g := &Generator{
		log:      log,
		registry: reg,
		sources:  sources,
		outDir:   constants.DefaultDocsDirName,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders the document for one example and writes it to
// <outDir>/<exampleID>/README.md. Output is a pure function of the registry
// and the source file contents: unchanged inputs produce byte-identical files.
func (g *Generator) Generate(exampleID string) (string, error) {
	descriptor, err := g.registry.Resolve(exampleID)
	if err != nil {
		return "", err
	}

	content, err := g.renderExample(descriptor)
	if err != nil {
		return "", err
	}

	targetPath := filepath.Join(g.outDir, descriptor.ID, constants.ReadmeFileName)
	if err := g.writeFile(targetPath, content); err != nil {
		return "", err
	}

	return targetPath, nil
}

// GenerateAll renders every registered example, the category index, and the
// getting-started guide. Example documents are rendered concurrently; the
// index is built from registry declaration order afterwards.
func (g *Generator) GenerateAll() ([]string, error) {
	descriptors := g.registry.List()

	var eg errgroup.Group
	eg.SetLimit(generateAllParallelism)

	written := make([]string, len(descriptors))
	for i, d := range descriptors {
		eg.Go(func() error {
			path, err := g.Generate(d.ID)
			if err != nil {
				return err
			}
			written[i] = path
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	summaryPath := filepath.Join(g.outDir, constants.SummaryFileName)
	if err := g.writeFile(summaryPath, g.renderSummary()); err != nil {
		return nil, err
	}
	written = append(written, summaryPath)

	guidePath := filepath.Join(g.outDir, constants.GettingStartedFileName)
	guide, err := templateContent.ReadFile("template/getting_started.md.tpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded template: %w", err)
	}
	if err := g.writeFile(guidePath, string(guide)); err != nil {
		return nil, err
	}
	written = append(written, guidePath)

	return written, nil
}

func (g *Generator) renderExample(d registry.Descriptor) (string, error) {
	contract, err := examplesrc.Load(g.sources, d.ContractPath)
	if err != nil {
		return "", err
	}
	test, err := examplesrc.Load(g.sources, d.TestPath)
	if err != nil {
		return "", err
	}

	tpl, err := templateContent.ReadFile("template/example.md.tpl")
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template: %w", err)
	}

	replacements := map[string]string{
		"Title":           d.Title,
		"Description":     d.Description,
		"Category":        d.Category,
		"ExampleID":       d.ID,
		"ContractSection": g.renderSourceSection(contract, "solidity"),
		"TestSection":     g.renderSourceSection(test, "typescript"),
	}

	var replacerArgs []string
	for key, value := range replacements {
		replacerArgs = append(replacerArgs, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(replacerArgs...).Replace(string(tpl)), nil
}

// renderSourceSection embeds a source file verbatim in a fenced code block,
// or a visible warning when the file is missing. The section is never
// silently omitted.
func (g *Generator) renderSourceSection(src examplesrc.SourceFile, lang string) string {
	if !src.Found {
		g.log.Warn().Msgf("Source file %s is missing, emitting a placeholder section", src.Path)
		return fmt.Sprintf("> **Warning:** source file `%s` is not available yet. This section will be completed once the example is authored.", src.Path)
	}

	text := src.Text()
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	return fmt.Sprintf("`%s`\n\n```%s\n%s```", src.Path, lang, text)
}

// renderSummary builds the index document. Category order and per-category
// example order follow registry declaration order exactly.
func (g *Generator) renderSummary() string {
	var sb strings.Builder

	sb.WriteString("# Examples\n\n")
	sb.WriteString("Index of all bundled examples, grouped by category.\n")

	for _, group := range g.registry.Categories() {
		fmt.Fprintf(&sb, "\n## %s\n\n", group.Name)
		for _, d := range group.Examples {
			fmt.Fprintf(&sb, "- [%s](%s/%s): %s\n", d.Title, d.ID, constants.ReadmeFileName, d.Description)
		}
	}

	return sb.String()
}

func (g *Generator) writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return pkgerrors.Wrapf(err, "create directory %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return pkgerrors.Wrapf(err, "write %s", path)
	}

	g.log.Debug().Msgf("Generated %s", path)
	return nil
}
