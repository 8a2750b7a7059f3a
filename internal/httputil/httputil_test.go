package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReasonWord(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{200, "Ok"},
		{201, "Created"},
		{204, "NoContent"},
		{404, "NotFound"},
		{418, "Teapot"},
		{500, "InternalServerError"},
		{599, ""},
		{299, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ReasonWord(tt.code), "ReasonWord(%d)", tt.code)
	}
}

func TestParseStatusCode(t *testing.T) {
	tests := []struct {
		input string
		code  int
		ok    bool
	}{
		{"200", 200, true},
		{"404", 404, true},
		{"599", 599, true},
		{"100", 100, true},
		{"099", 0, false},
		{"600", 0, false},
		{"2XX", 0, false},
		{"default", 0, false},
		{"x-custom", 0, false},
		{"20", 0, false},
		{"2000", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			code, ok := ParseStatusCode(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestIsSuccessCode(t *testing.T) {
	assert.True(t, IsSuccessCode(200))
	assert.True(t, IsSuccessCode(299))
	assert.False(t, IsSuccessCode(199))
	assert.False(t, IsSuccessCode(300))
	assert.False(t, IsSuccessCode(404))
}

func TestIsValidMediaType(t *testing.T) {
	assert.True(t, IsValidMediaType("application/json"))
	assert.True(t, IsValidMediaType("text/*"))
	assert.True(t, IsValidMediaType("*/*"))
	assert.False(t, IsValidMediaType("*/json"))
	assert.False(t, IsValidMediaType("application"))
	assert.False(t, IsValidMediaType(""))
}

func TestSplitMediaType(t *testing.T) {
	typ, sub := SplitMediaType("application/json")
	assert.Equal(t, "application", typ)
	assert.Equal(t, "json", sub)

	typ, sub = SplitMediaType("text/*")
	assert.Equal(t, "text", typ)
	assert.Equal(t, "*", sub)

	typ, sub = SplitMediaType("application/json; charset=utf-8")
	assert.Equal(t, "application", typ)
	assert.Equal(t, "json", sub)
}
