package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upachler/cogenitor/generrors"
	"github.com/upachler/cogenitor/parser"
)

const petstoreDoc = `openapi: "3.0.3"
info:
  title: Petstore
  version: "1.0.0"
paths:
  /pet:
    put:
      responses:
        "200":
          description: updated
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
            application/xml:
              schema:
                $ref: "#/components/schemas/Pet"
        "404":
          description: missing
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Problem"
  /pet/{petId}:
    get:
      parameters:
        - name: petId
          in: path
          required: true
          schema:
            type: integer
            format: int64
      responses:
        "200":
          description: found
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
        "404":
          description: missing
  /ping:
    get:
      responses:
        "204":
          description: pong
components:
  schemas:
    Pet:
      type: object
      required:
        - id
        - name
      properties:
        id:
          type: integer
          format: int64
        name:
          type: string
        tags:
          type: array
          items:
            type: string
    Problem:
      type: object
      properties:
        message:
          type: string
`

func TestGenerateWithOptions(t *testing.T) {
	result, err := GenerateWithOptions(
		WithSource([]byte(petstoreDoc)),
		WithPackageName("petstore"),
	)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "3.0.3", result.SourceVersion)
	assert.Equal(t, "petstore", result.PackageName)
	assert.Equal(t, 3, result.GeneratedOperations)

	require.NotNil(t, result.GetFile("types.go"))
	require.NotNil(t, result.GetFile("client.go"))
	assert.Nil(t, result.GetFile("missing.go"))
}

func TestGenerateModuleAssembly(t *testing.T) {
	result, err := GenerateWithOptions(WithSource([]byte(petstoreDoc)))
	require.NoError(t, err)

	var ids []string
	for _, def := range result.Module.Definitions() {
		ids = append(ids, def.Identifier)
	}
	assert.Equal(t, []string{
		"Pet",
		"Problem",
		"PutPetOk200Content",
		"PutPetError",
		"GetPetPetIdError",
		"GetPingError",
	}, ids, "component records first in declaration order, then operation sums in document order")

	var ops []string
	for _, op := range result.Module.Operations() {
		ops = append(ops, op.Identifier)
	}
	assert.Equal(t, []string{"pet_put", "pet_petid_get", "ping_get"}, ops)
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := GenerateWithOptions(WithSource([]byte(petstoreDoc)))
	require.NoError(t, err)
	second, err := GenerateWithOptions(WithSource([]byte(petstoreDoc)))
	require.NoError(t, err)

	require.Len(t, second.Files, len(first.Files))
	for i := range first.Files {
		assert.Equal(t, first.Files[i].Name, second.Files[i].Name)
		assert.Equal(t, string(first.Files[i].Content), string(second.Files[i].Content),
			"repeated runs over the same document are byte-identical")
	}
}

func TestGenerateLocality(t *testing.T) {
	// Adding an unrelated path leaves every previously derived name intact.
	extended := petstoreDoc + `    Extra:
      type: object
      properties:
        note:
          type: string
`
	base, err := GenerateWithOptions(WithSource([]byte(petstoreDoc)))
	require.NoError(t, err)
	more, err := GenerateWithOptions(WithSource([]byte(extended)))
	require.NoError(t, err)

	var baseIDs, moreIDs []string
	for _, def := range base.Module.Definitions() {
		baseIDs = append(baseIDs, def.Identifier)
	}
	for _, def := range more.Module.Definitions() {
		moreIDs = append(moreIDs, def.Identifier)
	}
	assert.Contains(t, moreIDs, "Extra")
	for _, id := range baseIDs {
		assert.Contains(t, moreIDs, id, "identifier %q unchanged by unrelated edit", id)
	}
}

func TestGenerateTypesSource(t *testing.T) {
	result, err := GenerateWithOptions(WithSource([]byte(petstoreDoc)), WithPackageName("petstore"))
	require.NoError(t, err)

	types := string(result.GetFile("types.go").Content)
	assert.Contains(t, types, "package petstore")
	assert.Contains(t, types, "type Pet struct")
	assert.Regexp(t, "Id\\s+int64\\s+`json:\"id\"`", types)
	assert.Regexp(t, "Name\\s+string\\s+`json:\"name\"`", types)
	assert.Regexp(t, "Tags\\s+\\[\\]string\\s+`json:\"tags,omitempty\"`", types)

	assert.Contains(t, types, "type PutPetOk200Content struct")
	assert.Contains(t, types, "PutPetOk200ContentKindApplicationJson")
	assert.Contains(t, types, "PutPetOk200ContentKindApplicationXml")

	assert.Contains(t, types, "type PutPetError struct")
	assert.Regexp(t, `NotFound404\s+\*Problem`, types)
	assert.Regexp(t, `UnknownResponse\s+\*http\.Response`, types)
	assert.Regexp(t, `OtherError\s+error`, types)
	assert.Contains(t, types, "func (e PutPetError) Error() string")
}

func TestGenerateClientSource(t *testing.T) {
	result, err := GenerateWithOptions(WithSource([]byte(petstoreDoc)), WithPackageName("petstore"))
	require.NoError(t, err)

	client := string(result.GetFile("client.go").Content)
	assert.Contains(t, client, "func NewClient(baseURL string, opts ...ClientOption) *Client")
	assert.Contains(t, client, "func (c *Client) PetPut(ctx context.Context) (PutPetOk200Content, error)")
	assert.Contains(t, client, "func (c *Client) PetPetidGet(ctx context.Context, params GetPetPetIdParams) (Pet, error)")
	assert.Contains(t, client, "func (c *Client) PingGet(ctx context.Context) error")
	assert.Contains(t, client, "url.PathEscape(fmt.Sprint(params.PetId))")
	assert.Contains(t, client, "NewPutPetErrorUnknownResponse(resp)")
	assert.Contains(t, client, "case 404:")
}

func TestGenerateNamingCollision(t *testing.T) {
	// A component schema occupying an identifier a synthesized sum needs is
	// fatal; there is no disambiguation policy.
	doc := docHeader + `paths:
  /pet:
    get:
      responses:
        "404":
          description: missing
components:
  schemas:
    GetPetError:
      type: object
      properties:
        reason:
          type: string
`
	_, err := GenerateWithOptions(WithSource([]byte(doc)))
	require.Error(t, err)
	assert.ErrorIs(t, err, generrors.ErrNamingCollision)
}

func TestGenerateSchemaIdentifierCollision(t *testing.T) {
	// Two component schemas whose names differ only in case derive the same
	// type identifier. The run must fail rather than drop the second
	// schema's fields and resolve its references to the first record.
	doc := docHeader + `paths: {}
components:
  schemas:
    pet:
      type: object
      properties:
        a:
          type: string
    Pet:
      type: object
      properties:
        b:
          type: integer
          format: int64
`
	_, err := GenerateWithOptions(WithSource([]byte(doc)))
	require.Error(t, err)
	assert.ErrorIs(t, err, generrors.ErrNamingCollision)
}

func TestGenerateRequestBodyWarning(t *testing.T) {
	doc := docHeader + `paths:
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
`
	result, err := GenerateWithOptions(WithSource([]byte(doc)))
	require.NoError(t, err)

	assert.True(t, result.HasWarnings())
	assert.Equal(t, 1, result.WarningCount)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "paths./pet.post.requestBody", result.Issues[0].Path)
}

func TestGenerateWithDocument(t *testing.T) {
	doc, err := parser.ParseWithOptions(parser.WithSource([]byte(petstoreDoc)))
	require.NoError(t, err)

	result, err := GenerateWithOptions(WithDocument(doc))
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestGenerateOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"no input", nil},
		{"two inputs", []Option{WithSource([]byte("x")), WithFilePath("spec.yaml")}},
		{"empty package name", []Option{WithSource([]byte("x")), WithPackageName("")}},
		{"nil document", []Option{WithDocument(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateWithOptions(tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, generrors.ErrConfig)
		})
	}
}

func TestWriteFiles(t *testing.T) {
	result, err := GenerateWithOptions(WithSource([]byte(petstoreDoc)), WithPackageName("petstore"))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, WriteFiles(result, dir))

	for _, name := range []string{"types.go", "client.go"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, string(result.GetFile(name).Content), string(data))
	}
}
