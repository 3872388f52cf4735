// Package auth handles the OAuth deep-link callback.
//
// The sign-in flow opens the provider in the system browser; the
// provider redirects back through a custom URL scheme, and the code is
// pulled out of that URL here. Codes may ride in the query string or,
// for implicit-grant providers, in the fragment.
package auth

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNoCode is returned when a callback URL carries no auth code.
var ErrNoCode = errors.New("auth: no code in callback URL")

// Callback is the payload delivered to the sign-in flow once a
// deep-link URL has been decoded.
type Callback struct {
	Code string `json:"code"`
}

// ExtractCode pulls the authorization code out of a deep-link callback
// URL. The query parameter "code" wins; the fragment is consulted next,
// accepting either "code" or "access_token". Unparseable URLs fall back
// to a plain string scan so malformed custom-scheme links still work.
func ExtractCode(rawURL string) (Callback, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return extractManually(rawURL)
	}

	if code := u.Query().Get("code"); code != "" {
		return Callback{Code: code}, nil
	}

	if u.Fragment != "" {
		if code, ok := scanParams(u.Fragment, "code", "access_token"); ok {
			return Callback{Code: code}, nil
		}
	}

	return Callback{}, ErrNoCode
}

// extractManually scans the raw string for query and fragment params
// without URL parsing.
func extractManually(rawURL string) (Callback, error) {
	if _, query, ok := strings.Cut(rawURL, "?"); ok {
		// The fragment is not part of the query.
		query, _, _ = strings.Cut(query, "#")
		if code, found := scanParams(query, "code"); found {
			return Callback{Code: code}, nil
		}
	}
	if _, fragment, ok := strings.Cut(rawURL, "#"); ok {
		if code, found := scanParams(fragment, "code", "access_token"); found {
			return Callback{Code: code}, nil
		}
	}
	return Callback{}, ErrNoCode
}

// scanParams looks through an &-separated parameter list for the first
// of the given keys with a non-empty value.
func scanParams(params string, keys ...string) (string, bool) {
	for _, param := range strings.Split(params, "&") {
		k, v, ok := strings.Cut(param, "=")
		if !ok || v == "" {
			continue
		}
		for _, key := range keys {
			if k == key {
				return v, true
			}
		}
	}
	return "", false
}
