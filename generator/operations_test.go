package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upachler/cogenitor/internal/severity"
	"github.com/upachler/cogenitor/parser"
)

func TestSynthesizeOperationParameters(t *testing.T) {
	doc := parseDoc(t, docHeader+`paths:
  /pet/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
        schema:
          type: integer
          format: int64
      - name: verbose
        in: query
        schema:
          type: boolean
    get:
      parameters:
        - name: petId
          in: path
          required: true
          schema:
            type: string
        - name: limit
          in: query
          schema:
            type: integer
            format: int32
      responses:
        "204":
          description: ok
`)
	g := newGeneration(t)
	path, method, item, op := firstOperation(t, doc)

	desc, err := g.synthesizeOperation(path, method, item, op)
	require.NoError(t, err)

	assert.Equal(t, "pet_petid_get", desc.Identifier)
	require.Len(t, desc.Parameters, 3)

	// The shadowed path-item petId is dropped from the shared list, so the
	// unshadowed verbose comes first and the operation's own petId takes
	// its operation-declaration position.
	assert.Equal(t, "verbose", desc.Parameters[0].Name)
	assert.Equal(t, parser.LocationQuery, desc.Parameters[0].Location)
	assert.False(t, desc.Parameters[0].Required)

	assert.Equal(t, "petId", desc.Parameters[1].Name)
	assert.Equal(t, parser.LocationPath, desc.Parameters[1].Location)
	assert.True(t, Primitive(KindString).Equal(desc.Parameters[1].Type))

	assert.Equal(t, "limit", desc.Parameters[2].Name)
	assert.True(t, Primitive(KindInt32).Equal(desc.Parameters[2].Type))
}

func TestSynthesizeOperationRequestBodySkipped(t *testing.T) {
	doc := parseDoc(t, docHeader+`paths:
  /pet:
    post:
      requestBody:
        content:
          application/json:
            schema:
              type: string
      responses:
        "204":
          description: ok
`)
	g := newGeneration(t)
	path, method, item, op := firstOperation(t, doc)

	desc, err := g.synthesizeOperation(path, method, item, op)
	require.NoError(t, err)
	assert.Empty(t, desc.Parameters, "no body parameter is synthesized")

	require.Len(t, g.issues, 1)
	assert.Equal(t, severity.SeverityWarning, g.issues[0].Severity)
	assert.Equal(t, "paths./pet.post.requestBody", g.issues[0].Path)
}

func TestSynthesizeOperationResponseCases(t *testing.T) {
	doc := parseDoc(t, docHeader+`paths:
  /pet:
    get:
      responses:
        "404":
          description: missing
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: string
`)
	g := newGeneration(t)
	path, method, item, op := firstOperation(t, doc)

	desc, err := g.synthesizeOperation(path, method, item, op)
	require.NoError(t, err)

	require.Len(t, desc.Responses, 2)
	assert.Equal(t, 404, desc.Responses[0].Code, "cases keep declaration order")
	assert.False(t, desc.Responses[0].Success)
	assert.Equal(t, 200, desc.Responses[1].Code)
	assert.True(t, desc.Responses[1].Success)
	assert.Equal(t, "application/json", desc.Responses[1].MediaType)
}
