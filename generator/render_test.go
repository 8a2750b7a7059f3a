package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/upachler/cogenitor/parser"
)

func TestGoTypeOf(t *testing.T) {
	tests := []struct {
		name string
		desc TypeDescriptor
		want string
	}{
		{"unit", Unit(), "struct{}"},
		{"bool", Primitive(KindBool), "bool"},
		{"string", Primitive(KindString), "string"},
		{"int32", Primitive(KindInt32), "int32"},
		{"int64", Primitive(KindInt64), "int64"},
		{"float32", Primitive(KindFloat32), "float32"},
		{"float64", Primitive(KindFloat64), "float64"},
		{"raw response", Primitive(KindRawResponse), "*http.Response"},
		{"error capture", Primitive(KindErrorCapture), "error"},
		{"named", Named("Pet"), "Pet"},
		{"sequence", Sequence(Named("Pet")), "[]Pet"},
		{"nested sequence", Sequence(Sequence(Primitive(KindString))), "[][]string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, goTypeOf(tt.desc))
		})
	}
}

func TestZeroValueOf(t *testing.T) {
	assert.Equal(t, "false", zeroValueOf(Primitive(KindBool)))
	assert.Equal(t, `""`, zeroValueOf(Primitive(KindString)))
	assert.Equal(t, "0", zeroValueOf(Primitive(KindInt64)))
	assert.Equal(t, "Pet{}", zeroValueOf(Named("Pet")))
	assert.Equal(t, "nil", zeroValueOf(Sequence(Named("Pet"))))
}

func TestURLExpr(t *testing.T) {
	op := &OperationDescriptor{
		Path: "/store/order/{orderId}",
		Parameters: []Parameter{
			{Name: "orderId", Location: parser.LocationPath, Type: Primitive(KindInt64), Required: true},
		},
	}
	assert.Equal(t,
		`c.baseURL + "/store/order/" + url.PathEscape(fmt.Sprint(params.OrderId))`,
		urlExpr(op))

	plain := &OperationDescriptor{Path: "/pet/findByStatus"}
	assert.Equal(t, `c.baseURL + "/pet/findByStatus"`, urlExpr(plain))
}

func TestMediaCondition(t *testing.T) {
	assert.Equal(t, `ct == "application/json"`, mediaCondition("application/json"))
	assert.Equal(t, `strings.HasPrefix(ct, "text/")`, mediaCondition("text/*"))
	assert.Equal(t, "true", mediaCondition("*/*"))
}

func TestIsJSONMedia(t *testing.T) {
	assert.True(t, isJSONMedia(""))
	assert.True(t, isJSONMedia("application/json"))
	assert.True(t, isJSONMedia("application/vnd.api+json"))
	assert.False(t, isJSONMedia("text/plain"))
	assert.False(t, isJSONMedia("application/xml"))
}
