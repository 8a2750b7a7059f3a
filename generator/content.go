package generator

import (
	"github.com/upachler/cogenitor/parser"
)

// mapContent maps a response content map to a type descriptor. An empty map
// means the response carries no payload and maps to Unit. A single entry is
// unwrapped to its schema type. Multiple entries are disambiguated into a
// sum type named typeName, with one variant per media type in declaration
// order.
func (g *generation) mapContent(content []parser.ContentEntry, typeName, path string) (TypeDescriptor, error) {
	switch len(content) {
	case 0:
		return Unit(), nil
	case 1:
		return g.mapSchema(content[0].Schema, path+".content."+content[0].MediaType+".schema")
	}

	variants := make([]Variant, 0, len(content))
	for _, entry := range content {
		payload, err := g.mapSchema(entry.Schema, path+".content."+entry.MediaType+".schema")
		if err != nil {
			return TypeDescriptor{}, err
		}
		variants = append(variants, Variant{
			Name:      mediaFragment(entry.MediaType),
			Payload:   payload,
			MediaType: entry.MediaType,
		})
	}

	err := g.module.Register(&NamedTypeDefinition{
		Identifier: typeName,
		Kind:       DefinitionSum,
		Variants:   variants,
		SourcePath: path + ".content",
	})
	if err != nil {
		return TypeDescriptor{}, err
	}
	return Named(typeName), nil
}
