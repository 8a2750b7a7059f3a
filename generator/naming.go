package generator

import (
	"strconv"
	"strings"

	"github.com/upachler/cogenitor/internal/httputil"
	"github.com/upachler/cogenitor/internal/naming"
)

// Name derivation is pure and deterministic: every fragment depends only on
// the entity it derives from (path+verb, status code, media type), so edits
// elsewhere in a document never rename unrelated identifiers.

// pathSegments splits a path template into its non-empty segments with
// non-alphanumeric characters removed, so "/pet/{petId}" yields
// ["pet", "petId"].
func pathSegments(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		var b strings.Builder
		for _, r := range seg {
			if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			segments = append(segments, b.String())
		}
	}
	return segments
}

// operationFragment derives the operation identifier from a path template
// and verb: lowercased path segments joined by underscores, then the
// lowercased verb. "/pet/findByStatus"+GET -> "pet_findbystatus_get".
func operationFragment(path, method string) string {
	parts := pathSegments(path)
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	parts = append(parts, strings.ToLower(method))
	return strings.Join(parts, "_")
}

// operationTypePrefix derives the prefix for types synthesized on behalf of
// an operation: title-cased verb followed by each capitalized path segment.
// PUT /pet -> "PutPet", GET /foo/bar -> "GetFooBar".
func operationTypePrefix(path, method string) string {
	var b strings.Builder
	b.WriteString(naming.TitleWord(method))
	for _, seg := range pathSegments(path) {
		b.WriteString(naming.Capitalize(seg))
	}
	return b.String()
}

// statusFragment derives the identifier fragment for a status code from the
// built-in reason-word table: 200 -> "Ok200", 404 -> "NotFound404". Codes
// without a reason word fall back to "Status{code}".
func statusFragment(code int) string {
	if word := httputil.ReasonWord(code); word != "" {
		return word + strconv.Itoa(code)
	}
	return "Status" + strconv.Itoa(code)
}

// mediaFragment derives the identifier fragment for a media type. Type and
// subtype are split into alphanumeric words, each title-cased; "*" becomes
// "Any". "application/json" -> "ApplicationJson", "text/*" -> "TextAny",
// "application/vnd.api+json" -> "ApplicationVndApiJson".
func mediaFragment(mediaType string) string {
	var b strings.Builder
	for _, part := range strings.Split(mediaType, "/") {
		if part == "*" {
			b.WriteString("Any")
			continue
		}
		var word strings.Builder
		flush := func() {
			if word.Len() > 0 {
				b.WriteString(naming.TitleWord(word.String()))
				word.Reset()
			}
		}
		for _, r := range part {
			if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
				word.WriteRune(r)
			} else {
				flush()
			}
		}
		flush()
	}
	return b.String()
}

// schemaTypeIdentifier derives the module identifier for a named component
// schema. Component names are used as-is apart from ensuring an exported
// first letter: "Pet" -> "Pet", "order_item" -> "OrderItem".
func schemaTypeIdentifier(name string) string {
	if strings.ContainsAny(name, "_-./ ") {
		return naming.ToPascalCase(name)
	}
	return naming.Capitalize(name)
}
