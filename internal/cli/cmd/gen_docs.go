package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/readably/internal/infrastructure/config"
)

const docsDirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files
  yaml      One YAML file per command, for site generators

Man pages go to $XDG_DATA_HOME/man/man1 by default so 'man readably'
works without root. Run 'mandb' if the index is stale.

Examples:
  readably gen-docs                       # Install man pages
  readably gen-docs --format markdown     # Write ./docs/*.md
  readably gen-docs --output ./man`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown, yaml")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	outputDir, ext, err := docsTarget(genDocsFormat, genDocsOutputDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, docsDirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// No timestamp footer, so regenerated docs diff cleanly.
	rootCmd.DisableAutoGenTag = true

	switch genDocsFormat {
	case "man":
		now := time.Now()
		header := &doc.GenManHeader{
			Title:   "READABLY",
			Section: "1",
			Source:  "readably " + buildInfo.Version,
			Manual:  "Readably Manual",
			Date:    &now,
		}
		err = doc.GenManTree(rootCmd, header, outputDir)
	case "markdown":
		err = doc.GenMarkdownTree(rootCmd, outputDir)
	case "yaml":
		err = doc.GenYamlTree(rootCmd, outputDir)
	}
	if err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	fmt.Printf("Generated %s docs in %s\n", genDocsFormat, outputDir)
	printGenerated(outputDir, ext)
	return nil
}

// docsTarget resolves the output directory and file extension for format.
func docsTarget(format, outputDir string) (dir, ext string, err error) {
	switch format {
	case "man":
		ext = ".1"
		if outputDir == "" {
			outputDir, err = config.GetManDir()
			if err != nil {
				return "", "", fmt.Errorf("resolve man directory: %w", err)
			}
		}
	case "markdown":
		ext = ".md"
	case "yaml":
		ext = ".yaml"
	default:
		return "", "", fmt.Errorf("unsupported format %q (use: man, markdown, yaml)", format)
	}
	if outputDir == "" {
		outputDir = "./docs"
	}
	return outputDir, ext, nil
}

func printGenerated(dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Printf("  - %s\n", e.Name())
		}
	}
}
