package parser

import (
	"strings"

	"github.com/upachler/cogenitor/generrors"
)

// Local reference prefixes the resolver understands. Anything else is a
// non-local reference, which must be resolved by an external tool before the
// document reaches cogenitor.
const (
	schemaRefPrefix    = "#/components/schemas/"
	responseRefPrefix  = "#/components/responses/"
	parameterRefPrefix = "#/components/parameters/"
)

// resolver dereferences all local $ref occurrences in a decoded document so
// that downstream consumers never see a reference. Resolved references share
// the component instance they point to; pointer identity is what later
// identifies named schemas.
type resolver struct {
	doc *Document
	// visited guards the schema walk against reference cycles
	visited map[*Schema]bool
}

// resolveDocument dereferences every local reference in the document.
func resolveDocument(doc *Document) error {
	r := &resolver{doc: doc, visited: make(map[*Schema]bool)}

	// Component schemas first: operations may reference them, and alias
	// entries (a named schema that is itself a bare $ref) collapse onto
	// their target.
	for i := range doc.Components.Schemas {
		entry := &doc.Components.Schemas[i]
		resolved, err := r.resolveSchema(entry.Schema, "components.schemas."+entry.Name)
		if err != nil {
			return err
		}
		entry.Schema = resolved
	}

	for i := range doc.Components.Responses {
		entry := &doc.Components.Responses[i]
		resolved, err := r.resolveResponse(entry.Response, "components.responses."+entry.Name)
		if err != nil {
			return err
		}
		entry.Response = resolved
	}

	for i := range doc.Components.Parameters {
		entry := &doc.Components.Parameters[i]
		resolved, err := r.resolveParameter(entry.Parameter, "components.parameters."+entry.Name)
		if err != nil {
			return err
		}
		entry.Parameter = resolved
	}

	for _, pathEntry := range doc.Paths {
		basePath := "paths." + pathEntry.Path
		if err := r.resolveParameterList(pathEntry.Item.Parameters, basePath+".parameters"); err != nil {
			return err
		}
		for _, opEntry := range pathEntry.Item.Operations {
			opPath := basePath + "." + opEntry.Method
			op := opEntry.Operation
			if err := r.resolveParameterList(op.Parameters, opPath+".parameters"); err != nil {
				return err
			}
			for i := range op.Responses {
				respEntry := &op.Responses[i]
				resolved, err := r.resolveResponse(respEntry.Response, opPath+".responses."+respEntry.Code)
				if err != nil {
					return err
				}
				respEntry.Response = resolved
			}
			if op.DefaultResponse != nil {
				resolved, err := r.resolveResponse(op.DefaultResponse, opPath+".responses.default")
				if err != nil {
					return err
				}
				op.DefaultResponse = resolved
			}
			if op.RequestBody != nil {
				if err := r.resolveContent(op.RequestBody.Content, opPath+".requestBody.content"); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// resolveSchema follows a schema's reference chain to its target and then
// resolves all schemas reachable from it. A reference cycle through bare
// $ref entries is an error; cycles through object properties are expected
// and handled by the visited set.
func (r *resolver) resolveSchema(schema *Schema, path string) (*Schema, error) {
	seen := make(map[*Schema]bool)
	for schema.Ref != "" {
		if seen[schema] {
			return nil, &generrors.SchemaError{
				Path:    path,
				Ref:     schema.Ref,
				Message: "reference cycle with no object in between",
			}
		}
		seen[schema] = true

		name, ok := strings.CutPrefix(schema.Ref, schemaRefPrefix)
		if !ok {
			return nil, &generrors.SchemaError{
				Path:    path,
				Ref:     schema.Ref,
				Message: "only local schema references are supported",
			}
		}
		target := r.doc.Components.SchemaByName(name)
		if target == nil {
			return nil, &generrors.SchemaError{Path: path, Ref: schema.Ref}
		}
		schema = target
	}

	if err := r.walkSchema(schema, path); err != nil {
		return nil, err
	}
	return schema, nil
}

// walkSchema resolves the references held by a schema's children in place.
func (r *resolver) walkSchema(schema *Schema, path string) error {
	if r.visited[schema] {
		return nil
	}
	r.visited[schema] = true

	for i := range schema.Properties {
		prop := &schema.Properties[i]
		resolved, err := r.resolveSchema(prop.Schema, path+".properties."+prop.Name)
		if err != nil {
			return err
		}
		prop.Schema = resolved
	}

	if schema.Items != nil {
		resolved, err := r.resolveSchema(schema.Items, path+".items")
		if err != nil {
			return err
		}
		schema.Items = resolved
	}

	// Composition members are resolved so that diagnostics downstream can
	// name them, even though the generator rejects composition itself.
	for _, list := range [][]*Schema{schema.OneOf, schema.AnyOf, schema.AllOf} {
		for i, sub := range list {
			resolved, err := r.resolveSchema(sub, path)
			if err != nil {
				return err
			}
			list[i] = resolved
		}
	}

	if sub, ok := schema.AdditionalProperties.(*Schema); ok {
		resolved, err := r.resolveSchema(sub, path+".additionalProperties")
		if err != nil {
			return err
		}
		schema.AdditionalProperties = resolved
	}

	return nil
}

func (r *resolver) resolveResponse(resp *Response, path string) (*Response, error) {
	seen := make(map[*Response]bool)
	for resp.Ref != "" {
		if seen[resp] {
			return nil, &generrors.SchemaError{
				Path:    path,
				Ref:     resp.Ref,
				Message: "response reference cycle",
			}
		}
		seen[resp] = true

		name, ok := strings.CutPrefix(resp.Ref, responseRefPrefix)
		if !ok {
			return nil, &generrors.SchemaError{
				Path:    path,
				Ref:     resp.Ref,
				Message: "only local response references are supported",
			}
		}
		target := r.doc.Components.ResponseByName(name)
		if target == nil {
			return nil, &generrors.SchemaError{Path: path, Ref: resp.Ref}
		}
		resp = target
	}

	if err := r.resolveContent(resp.Content, path+".content"); err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *resolver) resolveContent(content []ContentEntry, path string) error {
	for i := range content {
		entry := &content[i]
		if entry.Schema == nil {
			continue
		}
		resolved, err := r.resolveSchema(entry.Schema, path+"."+entry.MediaType+".schema")
		if err != nil {
			return err
		}
		entry.Schema = resolved
	}
	return nil
}

func (r *resolver) resolveParameter(param *Parameter, path string) (*Parameter, error) {
	seen := make(map[*Parameter]bool)
	for param.Ref != "" {
		if seen[param] {
			return nil, &generrors.SchemaError{
				Path:    path,
				Ref:     param.Ref,
				Message: "parameter reference cycle",
			}
		}
		seen[param] = true

		name, ok := strings.CutPrefix(param.Ref, parameterRefPrefix)
		if !ok {
			return nil, &generrors.SchemaError{
				Path:    path,
				Ref:     param.Ref,
				Message: "only local parameter references are supported",
			}
		}
		target := r.doc.Components.ParameterByName(name)
		if target == nil {
			return nil, &generrors.SchemaError{Path: path, Ref: param.Ref}
		}
		param = target
	}

	if param.Schema != nil {
		resolved, err := r.resolveSchema(param.Schema, path+".schema")
		if err != nil {
			return nil, err
		}
		param.Schema = resolved
	}
	return param, nil
}

func (r *resolver) resolveParameterList(params []*Parameter, path string) error {
	for i, param := range params {
		resolved, err := r.resolveParameter(param, path)
		if err != nil {
			return err
		}
		params[i] = resolved
	}
	return nil
}
