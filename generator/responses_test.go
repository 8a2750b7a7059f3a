package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upachler/cogenitor/generrors"
	"github.com/upachler/cogenitor/parser"
)

func parseDoc(t *testing.T, source string) *parser.Document {
	t.Helper()
	doc, err := parser.ParseWithOptions(parser.WithSource([]byte(source)))
	require.NoError(t, err)
	return doc
}

func firstOperation(t *testing.T, doc *parser.Document) (string, string, *parser.PathItem, *parser.Operation) {
	t.Helper()
	require.NotEmpty(t, doc.Paths)
	entry := doc.Paths[0]
	require.NotEmpty(t, entry.Item.Operations)
	op := entry.Item.Operations[0]
	return entry.Path, op.Method, entry.Item, op.Operation
}

const docHeader = "openapi: \"3.0.0\"\ninfo:\n  title: t\n  version: \"1\"\n"

func TestNoSuccessResponseMapsToUnit(t *testing.T) {
	doc := parseDoc(t, docHeader+`paths:
  /foo/bar:
    get:
      responses:
        "404":
          description: gone
`)
	g := newGeneration(t)
	path, method, item, op := firstOperation(t, doc)

	desc, err := g.synthesizeOperation(path, method, item, op)
	require.NoError(t, err)

	assert.Equal(t, "foo_bar_get", desc.Identifier)
	assert.True(t, desc.Success.IsUnit(), "no 2xx response means the unit success shape")
	assert.True(t, Named("GetFooBarError").Equal(desc.Error))
}

func TestSingleSuccessUnwrapped(t *testing.T) {
	doc := parseDoc(t, docHeader+`paths:
  /pet:
    get:
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
`)
	g := newGeneration(t)
	path, method, item, op := firstOperation(t, doc)

	desc, err := g.synthesizeOperation(path, method, item, op)
	require.NoError(t, err)

	assert.True(t, Named("Pet").Equal(desc.Success), "a single success with a single media type unwraps to the schema type")
	_, ok := g.module.Lookup("GetPetSuccess")
	assert.False(t, ok, "no success sum is synthesized for a single success response")
}

func TestMultipleSuccessStatusesBecomeSum(t *testing.T) {
	doc := parseDoc(t, docHeader+`paths:
  /pet:
    post:
      responses:
        "200":
          description: existing
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
        "201":
          description: created
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
`)
	g := newGeneration(t)
	path, method, item, op := firstOperation(t, doc)

	desc, err := g.synthesizeOperation(path, method, item, op)
	require.NoError(t, err)

	assert.True(t, Named("PostPetSuccess").Equal(desc.Success))
	def, ok := g.module.Lookup("PostPetSuccess")
	require.True(t, ok)
	require.Len(t, def.Variants, 2)
	assert.Equal(t, "Ok200", def.Variants[0].Name)
	assert.True(t, Named("Pet").Equal(def.Variants[0].Payload))
	assert.Equal(t, "Created201", def.Variants[1].Name)
	assert.True(t, def.Variants[1].Payload.IsUnit())
}

func TestMultipleMediaTypesBecomeContentSum(t *testing.T) {
	doc := parseDoc(t, docHeader+`paths:
  /pet:
    put:
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
            application/xml:
              schema:
                $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
`)
	g := newGeneration(t)
	path, method, item, op := firstOperation(t, doc)

	desc, err := g.synthesizeOperation(path, method, item, op)
	require.NoError(t, err)

	assert.True(t, Named("PutPetOk200Content").Equal(desc.Success))
	def, ok := g.module.Lookup("PutPetOk200Content")
	require.True(t, ok)
	require.Len(t, def.Variants, 2)
	assert.Equal(t, "ApplicationJson", def.Variants[0].Name)
	assert.Equal(t, "application/json", def.Variants[0].MediaType)
	assert.Equal(t, "ApplicationXml", def.Variants[1].Name)
	assert.Equal(t, "application/xml", def.Variants[1].MediaType)
}

func TestErrorSumAlwaysSynthesized(t *testing.T) {
	doc := parseDoc(t, docHeader+`paths:
  /pet:
    get:
      responses:
        "200":
          description: ok
        "404":
          description: missing
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Problem"
        "500":
          description: broken
components:
  schemas:
    Problem:
      type: object
      properties:
        message:
          type: string
`)
	g := newGeneration(t)
	path, method, item, op := firstOperation(t, doc)

	desc, err := g.synthesizeOperation(path, method, item, op)
	require.NoError(t, err)

	assert.True(t, Named("GetPetError").Equal(desc.Error))
	def, ok := g.module.Lookup("GetPetError")
	require.True(t, ok)
	require.Len(t, def.Variants, 4)
	assert.Equal(t, "NotFound404", def.Variants[0].Name)
	assert.True(t, Named("Problem").Equal(def.Variants[0].Payload))
	assert.Equal(t, "InternalServerError500", def.Variants[1].Name)
	assert.True(t, def.Variants[1].Payload.IsUnit())
	assert.Equal(t, "UnknownResponse", def.Variants[2].Name)
	assert.True(t, Primitive(KindRawResponse).Equal(def.Variants[2].Payload))
	assert.Equal(t, "OtherError", def.Variants[3].Name)
	assert.True(t, Primitive(KindErrorCapture).Equal(def.Variants[3].Payload))
}

func TestErrorSumWithNoDeclaredFailures(t *testing.T) {
	doc := parseDoc(t, docHeader+`paths:
  /ping:
    get:
      responses:
        "204":
          description: pong
`)
	g := newGeneration(t)
	path, method, item, op := firstOperation(t, doc)

	desc, err := g.synthesizeOperation(path, method, item, op)
	require.NoError(t, err)

	def, ok := g.module.Lookup("GetPingError")
	require.True(t, ok)
	require.Len(t, def.Variants, 2, "the error sum still carries the fixed variants")
	assert.Equal(t, "UnknownResponse", def.Variants[0].Name)
	assert.Equal(t, "OtherError", def.Variants[1].Name)
	assert.True(t, desc.Success.IsUnit())
}

func TestDefaultResponseUnsupported(t *testing.T) {
	doc := parseDoc(t, docHeader+`paths:
  /pet:
    get:
      responses:
        "200":
          description: ok
        default:
          description: anything else
`)
	g := newGeneration(t)
	path, method, item, op := firstOperation(t, doc)

	_, err := g.synthesizeOperation(path, method, item, op)
	require.Error(t, err)

	var unsupported *generrors.UnsupportedConstructError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "default", unsupported.Construct)
}

func TestWildcardStatusCodeUnsupported(t *testing.T) {
	doc := parseDoc(t, docHeader+`paths:
  /pet:
    get:
      responses:
        "2XX":
          description: some success
`)
	g := newGeneration(t)
	path, method, item, op := firstOperation(t, doc)

	_, err := g.synthesizeOperation(path, method, item, op)
	require.Error(t, err)

	var unsupported *generrors.UnsupportedConstructError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "2XX", unsupported.Construct)
}
