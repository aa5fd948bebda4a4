package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Key derives a deterministic cache key from an endpoint name and its
// parameter map. Parameter maps that differ only in iteration order produce
// the same key; any difference in endpoint or parameter values produces a
// different key.
//
// Keys and values are query-escaped in the canonical form so the delimiters
// stay unambiguous: a value containing "&" or "=" can never read as extra
// parameters. The key is a SHA-256 digest of that canonical form, so the
// original parameters cannot be recovered from it. Callers must never include
// the upstream credential in params; it is appended at the network boundary
// only.
func Key(endpoint string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(url.QueryEscape(endpoint))
	for i, name := range names {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[name]))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
