package generator

import (
	"github.com/upachler/cogenitor/generrors"
	"github.com/upachler/cogenitor/parser"
)

// PrimitiveKind enumerates the scalar types a schema can map to, plus the
// two opaque capture kinds used only by error sum types.
type PrimitiveKind int

const (
	// KindBool maps boolean schemas
	KindBool PrimitiveKind = iota
	// KindString maps string schemas without enum constraints
	KindString
	// KindInt32 maps integer schemas with format int32
	KindInt32
	// KindInt64 maps integer schemas with format int64 or no format
	KindInt64
	// KindFloat32 maps number schemas with format float
	KindFloat32
	// KindFloat64 maps number schemas with format double or no format
	KindFloat64
	// KindRawResponse is the payload of an UnknownResponse error variant:
	// the undecoded HTTP response
	KindRawResponse
	// KindErrorCapture is the payload of an OtherError error variant:
	// a transport or decoding failure
	KindErrorCapture
)

// String returns the kind name for diagnostics
func (k PrimitiveKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindRawResponse:
		return "raw-response"
	case KindErrorCapture:
		return "error-capture"
	default:
		return "unknown"
	}
}

// DescriptorKind discriminates the TypeDescriptor variants
type DescriptorKind int

const (
	// DescriptorUnit is the empty type: no payload
	DescriptorUnit DescriptorKind = iota
	// DescriptorPrimitive is a scalar type
	DescriptorPrimitive
	// DescriptorNamed references a registered named type by identifier
	DescriptorNamed
	// DescriptorSequence is an ordered collection of an element type
	DescriptorSequence
)

// TypeDescriptor is the closed set of type shapes the mapper produces.
// Descriptors are immutable values and may be freely shared.
type TypeDescriptor struct {
	// Kind discriminates which of the remaining fields is meaningful
	Kind DescriptorKind
	// Primitive is set when Kind is DescriptorPrimitive
	Primitive PrimitiveKind
	// Name is set when Kind is DescriptorNamed; it is an identifier
	// registered (or reserved) in the module
	Name string
	// Elem is set when Kind is DescriptorSequence
	Elem *TypeDescriptor
}

// Unit returns the descriptor for the empty type
func Unit() TypeDescriptor {
	return TypeDescriptor{Kind: DescriptorUnit}
}

// Primitive returns a scalar descriptor
func Primitive(kind PrimitiveKind) TypeDescriptor {
	return TypeDescriptor{Kind: DescriptorPrimitive, Primitive: kind}
}

// Named returns a descriptor referencing a registered type by identifier
func Named(identifier string) TypeDescriptor {
	return TypeDescriptor{Kind: DescriptorNamed, Name: identifier}
}

// Sequence returns a descriptor for an ordered collection of elem
func Sequence(elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Kind: DescriptorSequence, Elem: &elem}
}

// IsUnit reports whether the descriptor is the empty type
func (d TypeDescriptor) IsUnit() bool {
	return d.Kind == DescriptorUnit
}

// Equal reports structural equality of two descriptors
func (d TypeDescriptor) Equal(other TypeDescriptor) bool {
	if d.Kind != other.Kind {
		return false
	}
	switch d.Kind {
	case DescriptorPrimitive:
		return d.Primitive == other.Primitive
	case DescriptorNamed:
		return d.Name == other.Name
	case DescriptorSequence:
		return d.Elem.Equal(*other.Elem)
	default:
		return true
	}
}

// Field is one record field in declaration order
type Field struct {
	// Name is the property name as written in the document
	Name string
	// Type is the mapped field type
	Type TypeDescriptor
	// Required reports whether the property is listed in the schema's
	// required set; optional fields render as pointers
	Required bool
}

// Variant is one alternative of a sum type, in declaration order
type Variant struct {
	// Name is the variant identifier fragment (status fragment, media
	// fragment, or one of the fixed UnknownResponse/OtherError names)
	Name string
	// Payload is the variant's payload type; Unit means no payload
	Payload TypeDescriptor
	// MediaType is set on media-type variants only; the rendered client
	// uses it to select a decoder by Content-Type
	MediaType string
}

// DefinitionKind discriminates the NamedTypeDefinition variants
type DefinitionKind int

const (
	// DefinitionRecord is a product type with ordered named fields
	DefinitionRecord DefinitionKind = iota
	// DefinitionSum is a tagged union with ordered variants
	DefinitionSum
)

// NamedTypeDefinition is a type owned by the module's identifier namespace:
// either a record mapped from a component schema or a sum type synthesized
// for a response taxonomy.
type NamedTypeDefinition struct {
	// Identifier is the unique name within the module
	Identifier string
	// Kind discriminates Fields vs Variants
	Kind DefinitionKind
	// Fields holds the record fields when Kind is DefinitionRecord
	Fields []Field
	// Variants holds the alternatives when Kind is DefinitionSum
	Variants []Variant
	// SourcePath is the document location that caused the registration,
	// reported on naming collisions
	SourcePath string

	// reserved marks a forward declaration awaiting its definition
	reserved bool
}

func (d *NamedTypeDefinition) equalShape(other *NamedTypeDefinition) bool {
	if d.Kind != other.Kind {
		return false
	}
	switch d.Kind {
	case DefinitionRecord:
		if len(d.Fields) != len(other.Fields) {
			return false
		}
		for i, f := range d.Fields {
			o := other.Fields[i]
			if f.Name != o.Name || f.Required != o.Required || !f.Type.Equal(o.Type) {
				return false
			}
		}
	case DefinitionSum:
		if len(d.Variants) != len(other.Variants) {
			return false
		}
		for i, v := range d.Variants {
			o := other.Variants[i]
			if v.Name != o.Name || v.MediaType != o.MediaType || !v.Payload.Equal(o.Payload) {
				return false
			}
		}
	}
	return true
}

// Parameter is one operation parameter in effective declaration order
type Parameter struct {
	// Name is the parameter name as written in the document
	Name string
	// Location is where the parameter travels (path, query, header, cookie)
	Location parser.ParameterLocation
	// Type is the mapped parameter type
	Type TypeDescriptor
	// Required reports whether callers must supply the parameter
	Required bool
}

// ResponseCase is one declared response of an operation after status
// parsing and content mapping, in declaration order. The rendered client
// switches on these to classify observed statuses.
type ResponseCase struct {
	// Code is the declared HTTP status code
	Code int
	// Content is the mapped content type of the response
	Content TypeDescriptor
	// MediaType is the declared media type when the response has exactly
	// one content entry; empty otherwise (the media sum type carries the
	// per-variant media types itself)
	MediaType string
	// Success reports whether Code is in the 2xx range
	Success bool
}

// OperationDescriptor is the synthesized client-facing description of one
// path+verb pair.
type OperationDescriptor struct {
	// Identifier is the snake_case operation fragment, e.g. "pet_petid_get".
	// It is unique within the module.
	Identifier string
	// Method is the lowercase HTTP verb
	Method string
	// Path is the path template as written in the document
	Path string
	// OperationID carries the document's operationId when present; it is
	// informational only and never participates in name derivation
	OperationID string
	// Summary and Description carry documentation text for rendering
	Summary     string
	Description string
	// Parameters is the effective parameter list: path-item parameters in
	// declaration order, overridden in place by operation parameters with
	// the same name and location, followed by the remaining operation
	// parameters in their declaration order
	Parameters []Parameter
	// Responses holds the declared response cases in declaration order
	Responses []ResponseCase
	// Success is the operation's success result shape
	Success TypeDescriptor
	// Error names the operation's error sum type
	Error TypeDescriptor
}

// Module is the generated module under assembly: a single identifier
// namespace with insertion-ordered type definitions and document-ordered
// operations. It has a single owner and is not safe for concurrent use.
type Module struct {
	order      []string
	defs       map[string]*NamedTypeDefinition
	operations []*OperationDescriptor
}

// NewModule returns an empty module
func NewModule() *Module {
	return &Module{defs: make(map[string]*NamedTypeDefinition)}
}

// Reserve enters a forward declaration for identifier so that cyclic
// references can name it before its definition is complete. Reserving an
// identifier that is already present is a no-op.
func (m *Module) Reserve(identifier, sourcePath string) {
	if _, ok := m.defs[identifier]; ok {
		return
	}
	m.defs[identifier] = &NamedTypeDefinition{
		Identifier: identifier,
		SourcePath: sourcePath,
		reserved:   true,
	}
	m.order = append(m.order, identifier)
}

// Register enters def into the namespace. Registering the definition for a
// reserved identifier fills the reservation in place, keeping its insertion
// position. Registering an identical shape twice is idempotent; registering
// a distinct shape under an existing identifier is a fatal naming collision.
func (m *Module) Register(def *NamedTypeDefinition) error {
	existing, ok := m.defs[def.Identifier]
	if !ok {
		m.defs[def.Identifier] = def
		m.order = append(m.order, def.Identifier)
		return nil
	}
	if existing.reserved {
		def.reserved = false
		*existing = *def
		return nil
	}
	if existing.equalShape(def) {
		return nil
	}
	return &generrors.NamingCollisionError{
		Identifier: def.Identifier,
		FirstPath:  existing.SourcePath,
		SecondPath: def.SourcePath,
	}
}

// Lookup returns the definition registered or reserved under identifier
func (m *Module) Lookup(identifier string) (*NamedTypeDefinition, bool) {
	def, ok := m.defs[identifier]
	return def, ok
}

// Definitions returns all named type definitions in insertion order
func (m *Module) Definitions() []*NamedTypeDefinition {
	defs := make([]*NamedTypeDefinition, 0, len(m.order))
	for _, id := range m.order {
		defs = append(defs, m.defs[id])
	}
	return defs
}

// AddOperation appends op to the module's operation list. Operations keep
// document order: paths as declared, verbs as declared within each path.
func (m *Module) AddOperation(op *OperationDescriptor) {
	m.operations = append(m.operations, op)
}

// Operations returns the synthesized operations in document order
func (m *Module) Operations() []*OperationDescriptor {
	return m.operations
}

// unresolved returns the identifiers still reserved but never registered.
// A completed assembly has none.
func (m *Module) unresolved() []string {
	var ids []string
	for _, id := range m.order {
		if m.defs[id].reserved {
			ids = append(ids, id)
		}
	}
	return ids
}
