// Package parser reads OpenAPI 3.x documents into an immutable,
// declaration-order-preserving document model.
//
// The model is deliberately small: it captures exactly the information the
// generator package consumes (named schemas, operations keyed by path and
// verb, responses, parameters, content maps) and preserves the declaration
// order of every map in the source document. Declaration order is
// load-bearing downstream: generated field order, variant order, and module
// entry order all derive from it.
//
// Local references of the form "#/components/schemas/...",
// "#/components/responses/..." and "#/components/parameters/..." are
// dereferenced during parsing; the generator never sees a $ref. An
// unresolvable reference fails the parse with a *generrors.SchemaError.
//
// # Usage
//
//	doc, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, entry := range doc.Components.Schemas {
//		fmt.Println(entry.Name)
//	}
//
// The returned Document is a read-only snapshot; no cogenitor component
// mutates it after Parse returns.
package parser
