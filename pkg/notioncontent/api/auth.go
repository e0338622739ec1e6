package api

import (
	"net/http"
	"strings"
)

// TokenExtractor pulls a Notion token out of a request, reporting whether it
// found one. Extractors are tried in order; extraction strategies stay
// pluggable instead of growing nested header conditionals.
type TokenExtractor func(r *http.Request) (string, bool)

// BearerToken extracts a token from a standard "Authorization: Bearer"
// header.
func BearerToken() TokenExtractor {
	return func(r *http.Request) (string, bool) {
		value := r.Header.Get("Authorization")
		const prefix = "Bearer "
		if len(value) <= len(prefix) || !strings.EqualFold(value[:len(prefix)], prefix) {
			return "", false
		}
		token := strings.TrimSpace(value[len(prefix):])
		return token, token != ""
	}
}

// HeaderToken extracts a token from an arbitrary header.
func HeaderToken(name string) TokenExtractor {
	return func(r *http.Request) (string, bool) {
		token := strings.TrimSpace(r.Header.Get(name))
		return token, token != ""
	}
}

// DefaultExtractors is the gateway's extraction order: a standard bearer
// token first, then the legacy "Auth" header.
func DefaultExtractors() []TokenExtractor {
	return []TokenExtractor{
		BearerToken(),
		HeaderToken("Auth"),
	}
}

// TokenFromRequest runs the extractors in order and returns the first token
// found.
func TokenFromRequest(r *http.Request, extractors ...TokenExtractor) (string, bool) {
	for _, extract := range extractors {
		if token, ok := extract(r); ok {
			return token, true
		}
	}
	return "", false
}
