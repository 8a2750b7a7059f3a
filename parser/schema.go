package parser

// Schema represents a JSON Schema node as used by OAS 3.x documents.
//
// Only the keywords relevant for type generation are modeled. Keywords that
// the generator recognizes but does not support (enum, composition,
// additionalProperties) are captured so the generator can fail loudly
// instead of silently approximating them.
type Schema struct {
	// Name is set for schemas declared under components/schemas; empty for
	// inline schemas. Resolved references share the named schema instance,
	// so a non-empty Name identifies a named type target.
	Name string

	// Ref is the original reference string for schemas declared as a bare
	// $ref. It is retained for diagnostics after resolution.
	Ref string

	// Type is the declared type keyword (e.g., "object", "string").
	// Empty when the schema declares no type.
	Type string
	// MultiType holds the declared 3.1-style type array when it has more
	// than one entry. The generator rejects these.
	MultiType []string
	// Format is the declared format keyword (e.g., "int64", "float")
	Format string

	Title       string
	Description string

	// Properties lists the object properties in declaration order
	Properties []Property
	// Required lists the property names that are required
	Required []string

	// Items is the element schema for array types
	Items *Schema

	// Recognized but unsupported keywords, captured for loud failure.

	// Enum is non-nil when the schema constrains values to an enumeration
	Enum []any
	// OneOf, AnyOf, AllOf capture composition keywords
	OneOf []*Schema
	AnyOf []*Schema
	AllOf []*Schema
	// AdditionalProperties is true or a schema when the document declares
	// the keyword, nil otherwise. An explicit "additionalProperties: false"
	// restricts nothing the generator emits and is treated as absent.
	AdditionalProperties any
	// Nullable is the OAS 3.0 nullable flag
	Nullable bool
}

// Property pairs a property name with its schema, preserving declaration
// order.
type Property struct {
	Name   string
	Schema *Schema
}

// IsRequired reports whether the named property is in the schema's required
// set.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// HasComposition reports whether the schema uses any of the composition
// keywords (oneOf, anyOf, allOf).
func (s *Schema) HasComposition() bool {
	return len(s.OneOf) > 0 || len(s.AnyOf) > 0 || len(s.AllOf) > 0
}
