package parser

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/upachler/cogenitor/generrors"
	"github.com/upachler/cogenitor/internal/httputil"
)

// buildDocument converts a decoded yaml.Node tree into the document model,
// preserving the declaration order of every mapping.
func buildDocument(root *yaml.Node) (*Document, error) {
	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, &generrors.ParseError{Message: "empty document"}
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, &generrors.ParseError{Message: "document root must be a mapping"}
	}

	doc := &Document{}
	for key, value := range mappingEntries(node) {
		switch key {
		case "openapi":
			doc.OpenAPI = value.Value
		case "info":
			if err := decodeInfo(value, &doc.Info); err != nil {
				return nil, err
			}
		case "paths":
			paths, err := decodePaths(value)
			if err != nil {
				return nil, err
			}
			doc.Paths = paths
		case "components":
			if err := decodeComponents(value, &doc.Components); err != nil {
				return nil, err
			}
		}
	}

	if doc.OpenAPI == "" {
		return nil, &generrors.ParseError{Message: "missing 'openapi' version field"}
	}
	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		return nil, &generrors.ParseError{
			Message: fmt.Sprintf("unsupported OAS version %q: only 3.x documents are supported", doc.OpenAPI),
		}
	}

	return doc, nil
}

// mappingEntries iterates the key/value pairs of a mapping node in
// declaration order.
func mappingEntries(node *yaml.Node) func(yield func(string, *yaml.Node) bool) {
	return func(yield func(string, *yaml.Node) bool) {
		if node == nil || node.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			if !yield(node.Content[i].Value, node.Content[i+1]) {
				return
			}
		}
	}
}

func decodeInfo(node *yaml.Node, info *Info) error {
	for key, value := range mappingEntries(node) {
		switch key {
		case "title":
			info.Title = value.Value
		case "version":
			info.Version = value.Value
		}
	}
	return nil
}

func decodePaths(node *yaml.Node) ([]PathEntry, error) {
	var paths []PathEntry
	for path, itemNode := range mappingEntries(node) {
		if strings.HasPrefix(path, "x-") {
			continue
		}
		item, err := decodePathItem(itemNode, "paths."+path)
		if err != nil {
			return nil, err
		}
		paths = append(paths, PathEntry{Path: path, Item: item})
	}
	return paths, nil
}

func decodePathItem(node *yaml.Node, path string) (*PathItem, error) {
	item := &PathItem{}
	for key, value := range mappingEntries(node) {
		switch key {
		case "parameters":
			params, err := decodeParameters(value, path+".parameters")
			if err != nil {
				return nil, err
			}
			item.Parameters = params
		default:
			if !isOperationKey(key) {
				continue
			}
			op, err := decodeOperation(value, path+"."+key)
			if err != nil {
				return nil, err
			}
			item.Operations = append(item.Operations, OperationEntry{Method: key, Operation: op})
		}
	}
	return item, nil
}

func isOperationKey(key string) bool {
	for _, m := range httputil.Methods {
		if key == m {
			return true
		}
	}
	return false
}

func decodeOperation(node *yaml.Node, path string) (*Operation, error) {
	op := &Operation{}
	for key, value := range mappingEntries(node) {
		switch key {
		case "operationId":
			op.OperationID = value.Value
		case "summary":
			op.Summary = value.Value
		case "description":
			op.Description = value.Value
		case "deprecated":
			op.Deprecated = value.Value == "true"
		case "parameters":
			params, err := decodeParameters(value, path+".parameters")
			if err != nil {
				return nil, err
			}
			op.Parameters = params
		case "requestBody":
			body, err := decodeRequestBody(value, path+".requestBody")
			if err != nil {
				return nil, err
			}
			op.RequestBody = body
		case "responses":
			if err := decodeResponses(value, op, path+".responses"); err != nil {
				return nil, err
			}
		}
	}
	return op, nil
}

func decodeResponses(node *yaml.Node, op *Operation, path string) error {
	for code, value := range mappingEntries(node) {
		if strings.HasPrefix(code, "x-") {
			continue
		}
		resp, err := decodeResponse(value, path+"."+code)
		if err != nil {
			return err
		}
		if code == "default" {
			op.DefaultResponse = resp
			continue
		}
		op.Responses = append(op.Responses, ResponseEntry{Code: code, Response: resp})
	}
	return nil
}

func decodeResponse(node *yaml.Node, path string) (*Response, error) {
	resp := &Response{}
	for key, value := range mappingEntries(node) {
		switch key {
		case "$ref":
			resp.Ref = value.Value
		case "description":
			resp.Description = value.Value
		case "content":
			content, err := decodeContent(value, path+".content")
			if err != nil {
				return nil, err
			}
			resp.Content = content
		}
	}
	return resp, nil
}

func decodeContent(node *yaml.Node, path string) ([]ContentEntry, error) {
	var content []ContentEntry
	for mediaType, value := range mappingEntries(node) {
		if !httputil.IsValidMediaType(mediaType) {
			return nil, &generrors.ParseError{
				Message: fmt.Sprintf("invalid media type %q at %s", mediaType, path),
			}
		}
		entry := ContentEntry{MediaType: mediaType}
		for key, mtValue := range mappingEntries(value) {
			if key == "schema" {
				schema, err := decodeSchema(mtValue, path+"."+mediaType+".schema")
				if err != nil {
					return nil, err
				}
				entry.Schema = schema
			}
		}
		content = append(content, entry)
	}
	return content, nil
}

func decodeRequestBody(node *yaml.Node, path string) (*RequestBody, error) {
	body := &RequestBody{}
	for key, value := range mappingEntries(node) {
		switch key {
		case "description":
			body.Description = value.Value
		case "required":
			body.Required = value.Value == "true"
		case "content":
			content, err := decodeContent(value, path+".content")
			if err != nil {
				return nil, err
			}
			body.Content = content
		}
	}
	return body, nil
}

func decodeParameters(node *yaml.Node, path string) ([]*Parameter, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, &generrors.ParseError{
			Message: fmt.Sprintf("%s must be a sequence", path),
		}
	}
	params := make([]*Parameter, 0, len(node.Content))
	for i, itemNode := range node.Content {
		param, err := decodeParameter(itemNode, fmt.Sprintf("%s.%d", path, i))
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}

func decodeParameter(node *yaml.Node, path string) (*Parameter, error) {
	param := &Parameter{}
	for key, value := range mappingEntries(node) {
		switch key {
		case "$ref":
			param.Ref = value.Value
		case "name":
			param.Name = value.Value
		case "in":
			param.In = ParameterLocation(value.Value)
		case "description":
			param.Description = value.Value
		case "required":
			param.Required = value.Value == "true"
		case "schema":
			schema, err := decodeSchema(value, path+".schema")
			if err != nil {
				return nil, err
			}
			param.Schema = schema
		}
	}
	return param, nil
}

func decodeComponents(node *yaml.Node, components *Components) error {
	for key, value := range mappingEntries(node) {
		switch key {
		case "schemas":
			for name, schemaNode := range mappingEntries(value) {
				schema, err := decodeSchema(schemaNode, "components.schemas."+name)
				if err != nil {
					return err
				}
				schema.Name = name
				components.Schemas = append(components.Schemas, NamedSchema{Name: name, Schema: schema})
			}
		case "responses":
			for name, respNode := range mappingEntries(value) {
				resp, err := decodeResponse(respNode, "components.responses."+name)
				if err != nil {
					return err
				}
				components.Responses = append(components.Responses, NamedResponse{Name: name, Response: resp})
			}
		case "parameters":
			for name, paramNode := range mappingEntries(value) {
				param, err := decodeParameter(paramNode, "components.parameters."+name)
				if err != nil {
					return err
				}
				components.Parameters = append(components.Parameters, NamedParameter{Name: name, Parameter: param})
			}
		}
	}
	return nil
}

func decodeSchema(node *yaml.Node, path string) (*Schema, error) {
	schema := &Schema{}
	for key, value := range mappingEntries(node) {
		switch key {
		case "$ref":
			schema.Ref = value.Value
		case "type":
			if value.Kind == yaml.SequenceNode {
				// OAS 3.1 type arrays: a single-element array is equivalent
				// to the scalar form; anything else is carried for the
				// generator to reject.
				if len(value.Content) == 1 {
					schema.Type = value.Content[0].Value
				} else {
					for _, item := range value.Content {
						schema.MultiType = append(schema.MultiType, item.Value)
					}
				}
			} else {
				schema.Type = value.Value
			}
		case "format":
			schema.Format = value.Value
		case "title":
			schema.Title = value.Value
		case "description":
			schema.Description = value.Value
		case "nullable":
			schema.Nullable = value.Value == "true"
		case "required":
			for _, item := range value.Content {
				schema.Required = append(schema.Required, item.Value)
			}
		case "properties":
			for name, propNode := range mappingEntries(value) {
				prop, err := decodeSchema(propNode, path+".properties."+name)
				if err != nil {
					return nil, err
				}
				schema.Properties = append(schema.Properties, Property{Name: name, Schema: prop})
			}
		case "items":
			items, err := decodeSchema(value, path+".items")
			if err != nil {
				return nil, err
			}
			schema.Items = items
		case "enum":
			for _, item := range value.Content {
				var v any
				if err := item.Decode(&v); err != nil {
					return nil, &generrors.ParseError{Message: "invalid enum value at " + path, Cause: err}
				}
				schema.Enum = append(schema.Enum, v)
			}
		case "oneOf", "anyOf", "allOf":
			schemas, err := decodeSchemaList(value, path+"."+key)
			if err != nil {
				return nil, err
			}
			switch key {
			case "oneOf":
				schema.OneOf = schemas
			case "anyOf":
				schema.AnyOf = schemas
			case "allOf":
				schema.AllOf = schemas
			}
		case "additionalProperties":
			if value.Kind == yaml.MappingNode {
				sub, err := decodeSchema(value, path+".additionalProperties")
				if err != nil {
					return nil, err
				}
				schema.AdditionalProperties = sub
			} else if value.Value == "true" {
				schema.AdditionalProperties = true
			}
		}
	}
	return schema, nil
}

func decodeSchemaList(node *yaml.Node, path string) ([]*Schema, error) {
	schemas := make([]*Schema, 0, len(node.Content))
	for i, item := range node.Content {
		sub, err := decodeSchema(item, fmt.Sprintf("%s.%d", path, i))
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, sub)
	}
	return schemas, nil
}
