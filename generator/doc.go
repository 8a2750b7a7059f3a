// Package generator turns a parsed OpenAPI 3.x document into Go source for
// a typed client library.
//
// The mapping works in three stages. Component schemas become named record
// types registered in a Module, an ordered identifier namespace. Each
// path+verb pair is synthesized into an OperationDescriptor whose success and
// error result shapes are derived from the declared responses: multiple
// success statuses or media types become sum types, and the error shape is
// always a sum type that additionally carries an UnknownResponse variant for
// undeclared statuses and an OtherError variant for transport failures.
// Finally the module renders to formatted Go source (types.go and client.go).
//
// Identifier derivation is deterministic: the same document always produces
// byte-identical output, and names depend only on the deriving path, verb,
// status code and media type, so edits elsewhere in the document never rename
// unrelated entities.
package generator
