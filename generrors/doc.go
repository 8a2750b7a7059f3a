// Package generrors provides structured error types for cogenitor.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of generation failures and point a fix at the document source.
//
// # Error Categories
//
//   - ParseError: YAML/JSON parsing failures and structural issues
//   - SchemaError: undefined references and unsupported schema shapes
//     (inline objects, composition keywords, additionalProperties maps)
//   - NamingCollisionError: two distinct entities deriving the same identifier
//   - UnsupportedConstructError: recognized-but-unimplemented constructs
//     (enum-constrained strings, the "default" response, null types)
//   - ConfigError: invalid configuration or input options
//
// All generation errors are fatal to the whole run: generation either
// completes and yields one consistent module, or fails and yields none.
//
// # Usage with errors.As
//
//	result, err := generator.GenerateWithOptions(generator.WithFilePath("api.yaml"))
//	if err != nil {
//	    var schemaErr *generrors.SchemaError
//	    if errors.As(err, &schemaErr) {
//	        fmt.Println("fix the document at", schemaErr.Path)
//	    }
//	}
package generrors
