package generator

import (
	"fmt"

	"github.com/upachler/cogenitor/generrors"
	"github.com/upachler/cogenitor/parser"
)

// mapSchema converts a resolved schema node into a type descriptor,
// registering named record types in the module as a side effect. The mapping
// is strict: every construct outside the supported subset fails loudly
// rather than being approximated.
func (g *generation) mapSchema(schema *parser.Schema, path string) (TypeDescriptor, error) {
	if schema == nil {
		return TypeDescriptor{}, &generrors.SchemaError{
			Path:    path,
			Message: "schema is missing",
		}
	}
	if schema.HasComposition() {
		return TypeDescriptor{}, &generrors.UnsupportedConstructError{
			Path:      path,
			Construct: compositionKeyword(schema),
			Message:   "schema composition is not supported",
		}
	}
	if len(schema.Enum) > 0 {
		return TypeDescriptor{}, &generrors.UnsupportedConstructError{
			Path:      path,
			Construct: "enum",
			Message:   "enum constraints are not supported",
		}
	}
	if len(schema.MultiType) > 0 {
		return TypeDescriptor{}, &generrors.UnsupportedConstructError{
			Path:      path,
			Construct: "type",
			Message:   fmt.Sprintf("multi-valued type %v is not supported", schema.MultiType),
		}
	}
	if schema.Nullable {
		return TypeDescriptor{}, &generrors.UnsupportedConstructError{
			Path:      path,
			Construct: "nullable",
			Message:   "nullable schemas are not supported",
		}
	}
	if schema.AdditionalProperties != nil {
		return TypeDescriptor{}, &generrors.UnsupportedConstructError{
			Path:      path,
			Construct: "additionalProperties",
			Message:   "additionalProperties maps are not supported",
		}
	}

	switch schema.Type {
	case "boolean":
		return Primitive(KindBool), nil
	case "string":
		return Primitive(KindString), nil
	case "integer":
		if schema.Format == "int32" {
			return Primitive(KindInt32), nil
		}
		return Primitive(KindInt64), nil
	case "number":
		if schema.Format == "float" {
			return Primitive(KindFloat32), nil
		}
		return Primitive(KindFloat64), nil
	case "array":
		if schema.Items == nil {
			return TypeDescriptor{}, &generrors.SchemaError{
				Path:    path,
				Message: "array schema without items",
			}
		}
		elem, err := g.mapSchema(schema.Items, path+".items")
		if err != nil {
			return TypeDescriptor{}, err
		}
		return Sequence(elem), nil
	case "object":
		return g.mapObject(schema, path)
	case "":
		// Objects commonly omit the type keyword when properties are present.
		if len(schema.Properties) > 0 {
			return g.mapObject(schema, path)
		}
		return TypeDescriptor{}, &generrors.SchemaError{
			Path:    path,
			Message: "schema has no type",
		}
	case "null":
		return TypeDescriptor{}, &generrors.UnsupportedConstructError{
			Path:      path,
			Construct: "null",
			Message:   "the null type is not supported",
		}
	default:
		return TypeDescriptor{}, &generrors.SchemaError{
			Path:    path,
			Message: fmt.Sprintf("unknown schema type %q", schema.Type),
		}
	}
}

// mapObject registers a named component schema as a record type and returns
// a Named descriptor. Anonymous inline objects have no identity to derive a
// stable name from and are rejected.
func (g *generation) mapObject(schema *parser.Schema, path string) (TypeDescriptor, error) {
	if schema.Name == "" {
		return TypeDescriptor{}, &generrors.UnsupportedConstructError{
			Path:      path,
			Construct: "object",
			Message:   "inline object schemas are not supported; declare the schema under #/components/schemas",
		}
	}

	identifier := schemaTypeIdentifier(schema.Name)

	// Re-entry during a cycle returns the forward reference immediately;
	// the reservation is filled when the outermost registration completes.
	if g.resolving[schema] {
		return Named(identifier), nil
	}
	// Only this exact schema short-circuits; a different schema deriving the
	// same identifier must reach Register so the collision surfaces.
	if _, ok := g.registered[schema]; ok {
		return Named(identifier), nil
	}

	g.resolving[schema] = true
	defer delete(g.resolving, schema)
	g.module.Reserve(identifier, path)

	fields := make([]Field, 0, len(schema.Properties))
	for _, prop := range schema.Properties {
		fieldType, err := g.mapSchema(prop.Schema, path+".properties."+prop.Name)
		if err != nil {
			return TypeDescriptor{}, err
		}
		fields = append(fields, Field{
			Name:     prop.Name,
			Type:     fieldType,
			Required: schema.IsRequired(prop.Name),
		})
	}

	err := g.module.Register(&NamedTypeDefinition{
		Identifier: identifier,
		Kind:       DefinitionRecord,
		Fields:     fields,
		SourcePath: path,
	})
	if err != nil {
		return TypeDescriptor{}, err
	}
	g.registered[schema] = identifier
	return Named(identifier), nil
}

func compositionKeyword(schema *parser.Schema) string {
	switch {
	case len(schema.OneOf) > 0:
		return "oneOf"
	case len(schema.AnyOf) > 0:
		return "anyOf"
	default:
		return "allOf"
	}
}
