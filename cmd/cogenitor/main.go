// Command cogenitor generates typed Go client libraries from OpenAPI 3.x
// documents.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"

	"github.com/upachler/cogenitor"
	"github.com/upachler/cogenitor/generator"
	"github.com/upachler/cogenitor/internal/mcpserver"
	"github.com/upachler/cogenitor/parser"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("cogenitor v%s\n", cogenitor.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := handleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "parse":
		if err := handleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// generateFlags contains flags for the generate command
type generateFlags struct {
	outputDir   string
	packageName string
	jsonOutput  bool
	verbose     bool
}

func setupGenerateFlags() (*flag.FlagSet, *generateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &generateFlags{}

	fs.StringVar(&flags.outputDir, "output", "generated", "directory to write generated files to")
	fs.StringVar(&flags.packageName, "package", "client", "Go package name for generated code")
	fs.BoolVar(&flags.jsonOutput, "json", false, "print the generation summary as JSON")
	fs.BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: cogenitor generate [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Generate a typed Go client library from an OpenAPI 3.x document.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  cogenitor generate openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  cogenitor generate --output ./petstore --package petstore openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  cogenitor generate --json openapi.json\n")
	}

	return fs, flags
}

// generateSummary is the JSON shape printed by generate --json
type generateSummary struct {
	Success             bool     `json:"success"`
	PackageName         string   `json:"package_name"`
	OutputDir           string   `json:"output_dir"`
	Files               []string `json:"files"`
	GeneratedTypes      int      `json:"generated_types"`
	GeneratedOperations int      `json:"generated_operations"`
	WarningCount        int      `json:"warning_count"`
	Issues              []string `json:"issues,omitempty"`
}

func handleGenerate(args []string) error {
	fs, flags := setupGenerateFlags()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one input file")
	}

	opts := []generator.Option{
		generator.WithFilePath(fs.Arg(0)),
		generator.WithPackageName(flags.packageName),
	}
	if flags.verbose {
		opts = append(opts, generator.WithLogger(newVerboseLogger()))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return err
	}
	if err := generator.WriteFiles(result, flags.outputDir); err != nil {
		return err
	}

	if flags.jsonOutput {
		summary := generateSummary{
			Success:             result.Success,
			PackageName:         result.PackageName,
			OutputDir:           flags.outputDir,
			GeneratedTypes:      result.GeneratedTypes,
			GeneratedOperations: result.GeneratedOperations,
			WarningCount:        result.WarningCount,
		}
		for _, f := range result.Files {
			summary.Files = append(summary.Files, f.Name)
		}
		for _, issue := range result.Issues {
			summary.Issues = append(summary.Issues, issue.String())
		}
		return printJSON(summary)
	}

	fmt.Printf("Generated %d types and %d operations into %s (package %s)\n",
		result.GeneratedTypes, result.GeneratedOperations, flags.outputDir, result.PackageName)
	for _, issue := range result.Issues {
		fmt.Println(issue.String())
	}
	return nil
}

// parseCmdFlags contains flags for the parse command
type parseCmdFlags struct {
	jsonOutput bool
}

func setupParseFlags() (*flag.FlagSet, *parseCmdFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &parseCmdFlags{}

	fs.BoolVar(&flags.jsonOutput, "json", false, "print the document summary as JSON")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: cogenitor parse [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Parse an OpenAPI 3.x document and print its structure.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// parseSummary is the JSON shape printed by parse --json
type parseSummary struct {
	Title      string   `json:"title"`
	Version    string   `json:"version"`
	OASVersion string   `json:"oas_version"`
	Format     string   `json:"format"`
	Paths      int      `json:"paths"`
	Operations []string `json:"operations"`
	Schemas    []string `json:"schemas,omitempty"`
}

func handleParse(args []string) error {
	fs, flags := setupParseFlags()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one input file")
	}

	doc, err := parser.ParseWithOptions(parser.WithFilePath(fs.Arg(0)))
	if err != nil {
		return err
	}

	summary := parseSummary{
		Title:      doc.Info.Title,
		Version:    doc.Info.Version,
		OASVersion: doc.OpenAPI,
		Format:     doc.SourceFormat.String(),
		Paths:      len(doc.Paths),
	}
	for _, pathEntry := range doc.Paths {
		for _, opEntry := range pathEntry.Item.Operations {
			summary.Operations = append(summary.Operations,
				fmt.Sprintf("%s %s", opEntry.Method, pathEntry.Path))
		}
	}
	for _, named := range doc.Components.Schemas {
		summary.Schemas = append(summary.Schemas, named.Name)
	}

	if flags.jsonOutput {
		return printJSON(summary)
	}

	fmt.Printf("%s %s (OpenAPI %s, %s)\n", summary.Title, summary.Version, summary.OASVersion, summary.Format)
	fmt.Printf("Operations (%d):\n", len(summary.Operations))
	for _, op := range summary.Operations {
		fmt.Printf("  %s\n", op)
	}
	if len(summary.Schemas) > 0 {
		fmt.Printf("Schemas (%d):\n", len(summary.Schemas))
		for _, name := range summary.Schemas {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func newVerboseLogger() parser.Logger {
	return parser.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func printUsage() {
	fmt.Printf(`cogenitor v%s — typed Go client generation from OpenAPI 3.x

Usage: cogenitor <command> [flags]

Commands:
  generate    Generate a typed client library from an OAS document
  parse       Parse an OAS document and print its structure
  mcp         Run as an MCP server over stdio
  version     Print the version
  help        Show this help

Run 'cogenitor <command> -h' for command-specific flags.
`, cogenitor.Version())
}
