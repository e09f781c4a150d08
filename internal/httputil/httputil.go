// Package httputil holds the HTTP vocabulary of an OpenAPI path item and
// response map: operation methods, status code keys and media types.
package httputil

import (
	"mime"
	"strconv"
	"strings"
)

// Operation methods, in the order path items are scanned.
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

// Methods lists every operation method in scan order.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

// MatchMethod returns the key from keys that names method, comparing case
// insensitively. The first match in keys wins.
func MatchMethod(method string, keys []string) (string, bool) {
	for _, k := range keys {
		if strings.EqualFold(k, method) {
			return k, true
		}
	}
	return "", false
}

// IsMethod reports whether key names an operation method in any case.
func IsMethod(key string) bool {
	for _, m := range Methods {
		if strings.EqualFold(key, m) {
			return true
		}
	}
	return false
}

// IsExtension reports whether key is a specification extension ("x-...").
func IsExtension(key string) bool {
	return strings.HasPrefix(key, "x-")
}

// ValidateStatusCode reports whether code is a legal responses map key:
// "default", an extension, a range such as "2XX", or a code in 100-599.
func ValidateStatusCode(code string) bool {
	if code == "default" || IsExtension(code) {
		return true
	}
	if len(code) != 3 {
		return false
	}
	if code[1] == 'X' && code[2] == 'X' {
		return code[0] >= '1' && code[0] <= '5'
	}
	n, err := strconv.Atoi(code)
	return err == nil && code[0] != '-' && code[0] != '+' && n >= 100 && n <= 599
}

// IsValidMediaType validates a media type per RFC 2045, accepting "*/*" and
// "type/*" ranges.
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}
	if typ, ok := strings.CutSuffix(mediaType, "/*"); ok {
		return typ != "" && typ != "*" && !strings.Contains(typ, "/")
	}
	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}
