package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationFragment(t *testing.T) {
	tests := []struct {
		path   string
		method string
		want   string
	}{
		{"/pet", "put", "pet_put"},
		{"/foo/bar", "get", "foo_bar_get"},
		{"/pet/findByStatus", "get", "pet_findbystatus_get"},
		{"/pet/{petId}", "get", "pet_petid_get"},
		{"/", "get", "get"},
		{"/store/order/{orderId}", "delete", "store_order_orderid_delete"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, operationFragment(tt.path, tt.method))
		})
	}
}

func TestOperationTypePrefix(t *testing.T) {
	tests := []struct {
		path   string
		method string
		want   string
	}{
		{"/pet", "put", "PutPet"},
		{"/foo/bar", "get", "GetFooBar"},
		{"/pet/findByStatus", "get", "GetPetFindByStatus"},
		{"/pet/{petId}", "delete", "DeletePetPetId"},
		{"/", "get", "Get"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, operationTypePrefix(tt.path, tt.method))
		})
	}
}

func TestStatusFragment(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "Ok200"},
		{201, "Created201"},
		{204, "NoContent204"},
		{404, "NotFound404"},
		{500, "InternalServerError500"},
		{599, "Status599"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFragment(tt.code))
		})
	}
}

func TestMediaFragment(t *testing.T) {
	tests := []struct {
		mediaType string
		want      string
	}{
		{"application/json", "ApplicationJson"},
		{"application/xml", "ApplicationXml"},
		{"text/plain", "TextPlain"},
		{"text/*", "TextAny"},
		{"*/*", "AnyAny"},
		{"application/vnd.api+json", "ApplicationVndApiJson"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, mediaFragment(tt.mediaType))
		})
	}
}

func TestSchemaTypeIdentifier(t *testing.T) {
	assert.Equal(t, "Pet", schemaTypeIdentifier("Pet"))
	assert.Equal(t, "Pet", schemaTypeIdentifier("pet"))
	assert.Equal(t, "OrderItem", schemaTypeIdentifier("order_item"))
	assert.Equal(t, "ApiKey", schemaTypeIdentifier("api-key"))
}

func TestFragmentDeterminism(t *testing.T) {
	// Fragments depend only on their own inputs, so repeated derivation is
	// byte-identical.
	for range 3 {
		assert.Equal(t, "pet_petid_get", operationFragment("/pet/{petId}", "get"))
		assert.Equal(t, "GetPetPetId", operationTypePrefix("/pet/{petId}", "get"))
		assert.Equal(t, "NotFound404", statusFragment(404))
		assert.Equal(t, "ApplicationJson", mediaFragment("application/json"))
	}
}
