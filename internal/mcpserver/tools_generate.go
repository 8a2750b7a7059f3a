package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/upachler/cogenitor/generator"
)

type generateInput struct {
	Spec        specInput `json:"spec"                   jsonschema:"The OAS document to generate a client from"`
	PackageName string    `json:"package_name,omitempty" jsonschema:"Go package name for generated code (default: client)"`
	OutputDir   string    `json:"output_dir"             jsonschema:"Directory to write generated files to"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type generateOutput struct {
	Success             bool                `json:"success"`
	OutputDir           string              `json:"output_dir"`
	PackageName         string              `json:"package_name"`
	FileCount           int                 `json:"file_count"`
	Files               []generatedFileInfo `json:"files"`
	GeneratedTypes      int                 `json:"generated_types"`
	GeneratedOperations int                 `json:"generated_operations"`
	WarningCount        int                 `json:"warning_count"`
	Warnings            []string            `json:"warnings,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	opts := []generator.Option{generator.WithDocument(doc)}
	if input.PackageName != "" {
		opts = append(opts, generator.WithPackageName(input.PackageName))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if err := generator.WriteFiles(result, input.OutputDir); err != nil {
		return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
	}

	output := generateOutput{
		Success:             result.Success,
		OutputDir:           input.OutputDir,
		PackageName:         result.PackageName,
		FileCount:           len(result.Files),
		GeneratedTypes:      result.GeneratedTypes,
		GeneratedOperations: result.GeneratedOperations,
		WarningCount:        result.WarningCount,
	}

	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{
			Name: f.Name,
			Size: len(f.Content),
		})
	}
	output.Warnings = makeSlice[string](len(result.Issues))
	for _, issue := range result.Issues {
		output.Warnings = append(output.Warnings, issue.String())
	}

	return nil, output, nil
}
