package mcpserver

import (
	"fmt"

	"github.com/upachler/cogenitor/parser"
)

// specInput represents the ways an OAS document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// resolve parses the provided document.
func (s specInput) resolve() (*parser.Document, error) {
	switch {
	case s.File != "" && s.Content != "":
		return nil, fmt.Errorf("provide either file or content, not both")
	case s.File != "":
		return parser.ParseWithOptions(parser.WithFilePath(s.File))
	case s.Content != "":
		return parser.ParseWithOptions(parser.WithSource([]byte(s.Content)))
	default:
		return nil, fmt.Errorf("either file or content is required")
	}
}
