package parser

// SourceFormat identifies the textual format of the source document.
type SourceFormat int

const (
	// FormatYAML indicates the source document was YAML.
	FormatYAML SourceFormat = iota
	// FormatJSON indicates the source document was JSON.
	FormatJSON
)

// String returns the string representation of the source format.
func (f SourceFormat) String() string {
	switch f {
	case FormatYAML:
		return "YAML"
	case FormatJSON:
		return "JSON"
	default:
		return "unknown"
	}
}

// Document is the root of the parsed OpenAPI document model.
//
// All slices preserve the declaration order of the source document. The
// document is an immutable snapshot: nothing in cogenitor mutates it after
// parsing, and it may be shared freely.
type Document struct {
	// OpenAPI is the declared OAS version string (e.g., "3.0.3")
	OpenAPI string
	// Info holds the document metadata
	Info Info
	// Paths lists the documented paths in declaration order
	Paths []PathEntry
	// Components holds the named, reusable objects of the document
	Components Components
	// SourceFormat is the detected format of the source text
	SourceFormat SourceFormat
}

// Info holds the metadata fields of the document the generator cares about.
type Info struct {
	Title   string
	Version string
}

// PathEntry pairs a path template with its path item, preserving declaration
// order.
type PathEntry struct {
	// Path is the path template (e.g., "/pet/{petId}")
	Path string
	// Item describes the operations available on the path
	Item *PathItem
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	// Parameters apply to every operation on the path unless shadowed
	Parameters []*Parameter
	// Operations lists the declared operations in the OAS fixed-field order
	// (get, put, post, delete, options, head, patch, trace)
	Operations []OperationEntry
}

// OperationEntry pairs an HTTP verb with its operation.
type OperationEntry struct {
	// Method is the lowercase HTTP verb (e.g., "get")
	Method string
	// Operation describes the operation
	Operation *Operation
}

// Operation describes a single API operation on a path.
type Operation struct {
	OperationID string
	Summary     string
	Description string
	Deprecated  bool
	// Parameters lists the operation's own parameters in declaration order
	Parameters []*Parameter
	// RequestBody is the declared request body, if any
	RequestBody *RequestBody
	// Responses lists the declared responses in declaration order.
	// The catch-all "default" entry is carried separately.
	Responses []ResponseEntry
	// DefaultResponse is the "default" response entry, if declared
	DefaultResponse *Response
}

// ResponseEntry pairs a status code key with its response.
type ResponseEntry struct {
	// Code is the declared status code string (e.g., "200")
	Code string
	// Response describes the response; references are already resolved
	Response *Response
}

// Response describes a single response from an API operation.
type Response struct {
	// Ref is the original reference string for responses declared as a bare
	// $ref. It is retained for diagnostics after resolution.
	Ref         string
	Description string
	// Content lists the media-type entries in declaration order
	Content []ContentEntry
}

// ContentEntry pairs a media type range with its schema.
type ContentEntry struct {
	// MediaType is the media type range key (e.g., "application/json", "text/*")
	MediaType string
	// Schema is the body schema; references are already resolved.
	// Nil when the media type declares no schema.
	Schema *Schema
}

// RequestBody describes a declared request body.
type RequestBody struct {
	Description string
	Required    bool
	// Content lists the media-type entries in declaration order
	Content []ContentEntry
}

// ParameterLocation identifies where a parameter is serialized.
type ParameterLocation string

const (
	// LocationQuery is a query string parameter.
	LocationQuery ParameterLocation = "query"
	// LocationHeader is a request header parameter.
	LocationHeader ParameterLocation = "header"
	// LocationPath is a path template parameter.
	LocationPath ParameterLocation = "path"
	// LocationCookie is a cookie parameter.
	LocationCookie ParameterLocation = "cookie"
)

// Parameter describes a single operation parameter.
type Parameter struct {
	// Ref is the original reference string for parameters declared as a bare
	// $ref. It is retained for diagnostics after resolution.
	Ref         string
	Name        string
	In          ParameterLocation
	Description string
	Required    bool
	// Schema is the parameter schema; references are already resolved
	Schema *Schema
}

// Components holds the named, reusable objects of the document.
type Components struct {
	// Schemas lists the named schemas in declaration order
	Schemas []NamedSchema
	// Responses lists the named response templates in declaration order
	Responses []NamedResponse
	// Parameters lists the named parameters in declaration order
	Parameters []NamedParameter
}

// NamedSchema pairs a component schema name with its schema.
type NamedSchema struct {
	Name   string
	Schema *Schema
}

// NamedResponse pairs a component response name with its response.
type NamedResponse struct {
	Name     string
	Response *Response
}

// NamedParameter pairs a component parameter name with its parameter.
type NamedParameter struct {
	Name      string
	Parameter *Parameter
}

// SchemaByName returns the named component schema, or nil if absent.
func (c *Components) SchemaByName(name string) *Schema {
	for _, entry := range c.Schemas {
		if entry.Name == name {
			return entry.Schema
		}
	}
	return nil
}

// ResponseByName returns the named component response, or nil if absent.
func (c *Components) ResponseByName(name string) *Response {
	for _, entry := range c.Responses {
		if entry.Name == name {
			return entry.Response
		}
	}
	return nil
}

// ParameterByName returns the named component parameter, or nil if absent.
func (c *Components) ParameterByName(name string) *Parameter {
	for _, entry := range c.Parameters {
		if entry.Name == name {
			return entry.Parameter
		}
	}
	return nil
}
