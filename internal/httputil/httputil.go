// Package httputil provides HTTP-related validation utilities and the
// canonical status reason-word table used for naming generated types.
package httputil

import (
	"strconv"
	"strings"
)

// HTTP Status Code Constants
const (
	StatusCodeLength = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode    = 100 // Minimum valid HTTP status code
	MaxStatusCode    = 599 // Maximum valid HTTP status code
)

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists the OAS path-item operation keys in their fixed-field order.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

// statusReasonWords maps RFC 9110 status codes to their reason phrase in
// identifier form. The table is fixed rather than derived from
// http.StatusText so that generated identifiers are stable across Go
// releases.
var statusReasonWords = map[int]string{
	// 1xx Informational
	100: "Continue", 101: "SwitchingProtocols", 102: "Processing", 103: "EarlyHints",
	// 2xx Success
	200: "Ok", 201: "Created", 202: "Accepted", 203: "NonAuthoritativeInformation",
	204: "NoContent", 205: "ResetContent", 206: "PartialContent", 207: "MultiStatus",
	208: "AlreadyReported", 226: "ImUsed",
	// 3xx Redirection
	300: "MultipleChoices", 301: "MovedPermanently", 302: "Found", 303: "SeeOther",
	304: "NotModified", 305: "UseProxy", 307: "TemporaryRedirect", 308: "PermanentRedirect",
	// 4xx Client Error
	400: "BadRequest", 401: "Unauthorized", 402: "PaymentRequired", 403: "Forbidden",
	404: "NotFound", 405: "MethodNotAllowed", 406: "NotAcceptable",
	407: "ProxyAuthenticationRequired", 408: "RequestTimeout", 409: "Conflict",
	410: "Gone", 411: "LengthRequired", 412: "PreconditionFailed",
	413: "ContentTooLarge", 414: "UriTooLong", 415: "UnsupportedMediaType",
	416: "RangeNotSatisfiable", 417: "ExpectationFailed", 418: "Teapot",
	421: "MisdirectedRequest", 422: "UnprocessableContent", 423: "Locked",
	424: "FailedDependency", 425: "TooEarly", 426: "UpgradeRequired",
	428: "PreconditionRequired", 429: "TooManyRequests",
	431: "RequestHeaderFieldsTooLarge", 451: "UnavailableForLegalReasons",
	// 5xx Server Error
	500: "InternalServerError", 501: "NotImplemented", 502: "BadGateway",
	503: "ServiceUnavailable", 504: "GatewayTimeout", 505: "HttpVersionNotSupported",
	506: "VariantAlsoNegotiates", 507: "InsufficientStorage", 508: "LoopDetected",
	510: "NotExtended", 511: "NetworkAuthenticationRequired",
}

// ReasonWord returns the identifier-form reason phrase for a status code,
// or the empty string for codes outside the built-in table.
func ReasonWord(code int) string {
	return statusReasonWords[code]
}

// ParseStatusCode parses a 3-digit numeric status code string. It returns
// the code and true on success, or 0 and false for anything that is not a
// plain numeric code in the valid range (wildcards, "default", extensions).
func ParseStatusCode(code string) (int, bool) {
	if len(code) != StatusCodeLength {
		return 0, false
	}
	for i := 0; i < StatusCodeLength; i++ {
		if code[i] < '0' || code[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(code)
	if err != nil || n < MinStatusCode || n > MaxStatusCode {
		return 0, false
	}
	return n, true
}

// IsSuccessCode reports whether a status code is in the 2xx range.
func IsSuccessCode(code int) bool {
	return code >= 200 && code <= 299
}

// IsValidMediaType validates a media type string. It accepts wildcards
// (*/* and type/*) and plain type/subtype pairs, and rejects the invalid
// */subtype combination.
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}

	parts := strings.Split(mediaType, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	if parts[0] == "*" {
		return false
	}
	return true
}

// SplitMediaType splits a media type into its type and subtype parts,
// dropping any parameters (e.g. "; charset=utf-8").
func SplitMediaType(mediaType string) (string, string) {
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	typ, subtype, ok := strings.Cut(mediaType, "/")
	if !ok {
		return mediaType, ""
	}
	return typ, subtype
}
