package parser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/upachler/cogenitor/generrors"
)

// Parser parses OpenAPI 3.x documents into the document model.
type Parser struct {
	// Logger receives structured diagnostics during parsing.
	// Defaults to a no-op logger.
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{Logger: NewNoopLogger()}
}

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	source   []byte

	logger Logger
}

// ParseWithOptions parses an OpenAPI document using functional options.
//
// Example:
//
//	doc, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.yaml"),
//	)
func ParseWithOptions(opts ...Option) (*Document, error) {
	cfg := &parseConfig{logger: NewNoopLogger()}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("parser: invalid options: %w", err)
		}
	}

	if cfg.filePath == nil && cfg.source == nil {
		return nil, &generrors.ConfigError{
			Message: "must specify an input source (use WithFilePath or WithSource)",
		}
	}
	if cfg.filePath != nil && cfg.source != nil {
		return nil, &generrors.ConfigError{
			Message: "must specify exactly one input source",
		}
	}

	p := &Parser{Logger: cfg.logger}
	if cfg.filePath != nil {
		return p.Parse(*cfg.filePath)
	}
	return p.ParseSource(cfg.source)
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithSource specifies raw document bytes as the input source
func WithSource(source []byte) Option {
	return func(cfg *parseConfig) error {
		cfg.source = source
		return nil
	}
}

// WithLogger specifies a structured logger for parse diagnostics
func WithLogger(logger Logger) Option {
	return func(cfg *parseConfig) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// Parse reads and parses the OpenAPI document at the given file path.
func (p *Parser) Parse(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &generrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	doc, err := p.ParseSource(data)
	if err != nil {
		// Attach the file path to parse failures for better diagnostics.
		var parseErr *generrors.ParseError
		if errors.As(err, &parseErr) && parseErr.Path == "" {
			parseErr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// ParseSource parses an OpenAPI document from raw bytes. The source may be
// YAML or JSON; JSON documents are parsed through the YAML reader, which
// accepts them as a subset.
func (p *Parser) ParseSource(source []byte) (*Document, error) {
	logger := p.Logger
	if logger == nil {
		logger = NewNoopLogger()
	}

	var root yaml.Node
	if err := yaml.Unmarshal(source, &root); err != nil {
		return nil, &generrors.ParseError{Message: "invalid document syntax", Cause: err}
	}

	doc, err := buildDocument(&root)
	if err != nil {
		return nil, err
	}
	doc.SourceFormat = detectFormat(source)

	logger.Debug("document decoded",
		"version", doc.OpenAPI,
		"format", doc.SourceFormat.String(),
		"paths", len(doc.Paths),
		"schemas", len(doc.Components.Schemas))

	if err := resolveDocument(doc); err != nil {
		return nil, err
	}

	logger.Debug("local references resolved")
	return doc, nil
}

// detectFormat sniffs the first non-whitespace byte to classify the source.
func detectFormat(source []byte) SourceFormat {
	trimmed := strings.TrimLeft(string(source), " \t\r\n")
	if strings.HasPrefix(trimmed, "{") {
		return FormatJSON
	}
	return FormatYAML
}
