package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/upachler/cogenitor/generrors"
	"github.com/upachler/cogenitor/internal/issues"
	"github.com/upachler/cogenitor/internal/severity"
	"github.com/upachler/cogenitor/parser"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates constructs that were skipped rather than generated
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates constructs that cannot be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "types.go", "client.go")
	Name string
	// Content is the generated Go source code
	Content []byte
}

// GenerateResult contains the results of generating a client library from an
// OpenAPI document
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// Module is the assembled module the files were rendered from
	Module *Module
	// SourceVersion is the document's OpenAPI version string
	SourceVersion string
	// SourceFormat is the format of the source text (JSON or YAML)
	SourceFormat parser.SourceFormat
	// PackageName is the Go package name used in generation
	PackageName string
	// Issues contains all non-fatal generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// Success is true when generation completed
	Success bool
	// LoadTime is the time taken to parse the source document
	LoadTime time.Duration
	// GenerateTime is the time taken to assemble and render the module
	GenerateTime time.Duration
	// GeneratedTypes is the count of named types in the module
	GeneratedTypes int
	// GeneratedOperations is the count of synthesized operations
	GeneratedOperations int
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	source   []byte
	document *parser.Document

	packageName string
	includeInfo bool
	logger      parser.Logger
}

// WithFilePath sets the OpenAPI document to load from the local filesystem
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		if path == "" {
			return &generrors.ConfigError{Option: "WithFilePath", Message: "path must not be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithSource sets the OpenAPI document from in-memory bytes
func WithSource(source []byte) Option {
	return func(cfg *generateConfig) error {
		if len(source) == 0 {
			return &generrors.ConfigError{Option: "WithSource", Message: "source must not be empty"}
		}
		cfg.source = source
		return nil
	}
}

// WithDocument sets an already parsed document as the input
func WithDocument(doc *parser.Document) Option {
	return func(cfg *generateConfig) error {
		if doc == nil {
			return &generrors.ConfigError{Option: "WithDocument", Message: "document must not be nil"}
		}
		cfg.document = doc
		return nil
	}
}

// WithPackageName sets the Go package name for generated code (default "client")
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return &generrors.ConfigError{Option: "WithPackageName", Message: "package name must not be empty"}
		}
		cfg.packageName = name
		return nil
	}
}

// WithIncludeInfo controls whether informational messages are included
// in the result (default true)
func WithIncludeInfo(include bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = include
		return nil
	}
}

// WithLogger sets the logger used during generation (default no-op)
func WithLogger(logger parser.Logger) Option {
	return func(cfg *generateConfig) error {
		if logger == nil {
			return &generrors.ConfigError{Option: "WithLogger", Message: "logger must not be nil"}
		}
		cfg.logger = logger
		return nil
	}
}

func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		packageName: "client",
		includeInfo: true,
		logger:      parser.NewNoopLogger(),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.source != nil {
		sources++
	}
	if cfg.document != nil {
		sources++
	}
	if sources != 1 {
		return nil, &generrors.ConfigError{
			Option:  "input",
			Message: "exactly one of WithFilePath, WithSource or WithDocument must be provided",
		}
	}
	return cfg, nil
}

// GenerateWithOptions generates a typed client library from an OpenAPI
// document using functional options.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("openapi.yaml"),
//	    generator.WithPackageName("petstore"),
//	)
//
// Generation is all-or-nothing: any schema resolution failure, unsupported
// construct or naming collision aborts with an error and no files.
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	loadStart := time.Now()
	doc := cfg.document
	if doc == nil {
		var parseOpts []parser.Option
		if cfg.filePath != nil {
			parseOpts = append(parseOpts, parser.WithFilePath(*cfg.filePath))
		} else {
			parseOpts = append(parseOpts, parser.WithSource(cfg.source))
		}
		parseOpts = append(parseOpts, parser.WithLogger(cfg.logger))
		doc, err = parser.ParseWithOptions(parseOpts...)
		if err != nil {
			return nil, err
		}
	}
	loadTime := time.Since(loadStart)

	generateStart := time.Now()
	g := &generation{
		module:     NewModule(),
		logger:     cfg.logger,
		resolving:  make(map[*parser.Schema]bool),
		registered: make(map[*parser.Schema]string),
	}
	if err := g.assemble(doc); err != nil {
		return nil, err
	}

	files, err := renderModule(g.module, cfg.packageName)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Files:               files,
		Module:              g.module,
		SourceVersion:       doc.OpenAPI,
		SourceFormat:        doc.SourceFormat,
		PackageName:         cfg.packageName,
		Success:             true,
		LoadTime:            loadTime,
		GenerateTime:        time.Since(generateStart),
		GeneratedTypes:      len(g.module.Definitions()),
		GeneratedOperations: len(g.module.Operations()),
	}
	for _, issue := range g.issues {
		if issue.Severity == severity.SeverityInfo && !cfg.includeInfo {
			continue
		}
		result.Issues = append(result.Issues, issue)
		switch issue.Severity {
		case severity.SeverityInfo:
			result.InfoCount++
		case severity.SeverityWarning:
			result.WarningCount++
		}
	}
	return result, nil
}

// WriteFiles writes all generated files into dir, creating it if needed
func WriteFiles(result *GenerateResult, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("generator: creating output directory: %w", err)
	}
	for _, file := range result.Files {
		path := filepath.Join(dir, file.Name)
		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			return fmt.Errorf("generator: writing %s: %w", file.Name, err)
		}
	}
	return nil
}

// generation is the single-owner assembly state for one run
type generation struct {
	module *Module
	logger parser.Logger
	issues []issues.Issue
	// resolving tracks schemas currently being mapped, for cycle detection.
	resolving map[*parser.Schema]bool
	// registered maps completed component schemas to their identifiers, so
	// repeat references short-circuit without masking a distinct schema that
	// derives the same identifier.
	registered map[*parser.Schema]string
}

func (g *generation) report(issue issues.Issue) {
	g.issues = append(g.issues, issue)
}

// assemble walks the document in declaration order: component schemas first,
// so their records occupy the leading module positions, then one operation
// per path+verb pair. Sum types synthesized for an operation are registered
// at the point the operation is reached.
func (g *generation) assemble(doc *parser.Document) error {
	for _, named := range doc.Components.Schemas {
		path := "components.schemas." + named.Name
		if _, err := g.mapSchema(named.Schema, path); err != nil {
			return err
		}
	}

	for _, pathEntry := range doc.Paths {
		for _, opEntry := range pathEntry.Item.Operations {
			op, err := g.synthesizeOperation(pathEntry.Path, opEntry.Method, pathEntry.Item, opEntry.Operation)
			if err != nil {
				return err
			}
			g.module.AddOperation(op)
			g.logger.Debug("synthesized operation",
				"identifier", op.Identifier,
				"path", op.Path,
				"method", op.Method)
		}
	}

	if unresolved := g.module.unresolved(); len(unresolved) > 0 {
		return &generrors.SchemaError{
			Message: fmt.Sprintf("unresolved forward references: %v", unresolved),
		}
	}
	return nil
}
