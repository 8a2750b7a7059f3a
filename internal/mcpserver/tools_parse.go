package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Spec specInput `json:"spec" jsonschema:"The OAS document to parse"`
}

type operationInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	OperationID string `json:"operation_id,omitempty"`
	Responses   int    `json:"responses"`
}

type parseOutput struct {
	Title          string          `json:"title"`
	Version        string          `json:"version"`
	OASVersion     string          `json:"oas_version"`
	Format         string          `json:"format"`
	PathCount      int             `json:"path_count"`
	OperationCount int             `json:"operation_count"`
	SchemaCount    int             `json:"schema_count"`
	Operations     []operationInfo `json:"operations,omitempty"`
	Schemas        []string        `json:"schemas,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Title:       doc.Info.Title,
		Version:     doc.Info.Version,
		OASVersion:  doc.OpenAPI,
		Format:      doc.SourceFormat.String(),
		PathCount:   len(doc.Paths),
		SchemaCount: len(doc.Components.Schemas),
	}

	for _, pathEntry := range doc.Paths {
		for _, opEntry := range pathEntry.Item.Operations {
			output.Operations = append(output.Operations, operationInfo{
				Method:      opEntry.Method,
				Path:        pathEntry.Path,
				OperationID: opEntry.Operation.OperationID,
				Responses:   len(opEntry.Operation.Responses),
			})
		}
	}
	output.OperationCount = len(output.Operations)

	output.Schemas = makeSlice[string](len(doc.Components.Schemas))
	for _, named := range doc.Components.Schemas {
		output.Schemas = append(output.Schemas, named.Name)
	}

	return nil, output, nil
}
