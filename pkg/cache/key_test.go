package cache

import (
	"testing"
)

func TestKey_Deterministic(t *testing.T) {
	params := map[string]string{
		"q":       "golang",
		"max":     "10",
		"lang":    "en",
		"country": "us",
		"sortby":  "relevance",
	}

	first := Key("search", params)
	for i := 0; i < 10; i++ {
		if got := Key("search", params); got != first {
			t.Errorf("Key() = %v, want %v (not deterministic)", got, first)
		}
	}
}

// TestKey_OrderIndependent ensures maps built in different insertion orders
// produce the same key.
func TestKey_OrderIndependent(t *testing.T) {
	forward := make(map[string]string)
	forward["a"] = "1"
	forward["b"] = "2"
	forward["c"] = "3"

	backward := make(map[string]string)
	backward["c"] = "3"
	backward["b"] = "2"
	backward["a"] = "1"

	if Key("search", forward) != Key("search", backward) {
		t.Error("keys differ for identical parameter sets")
	}
}

func TestKey_Distinct(t *testing.T) {
	base := map[string]string{"q": "golang", "max": "10"}
	baseKey := Key("search", base)

	tests := []struct {
		name     string
		endpoint string
		params   map[string]string
	}{
		{
			name:     "different endpoint",
			endpoint: "top-headlines",
			params:   map[string]string{"q": "golang", "max": "10"},
		},
		{
			name:     "different value",
			endpoint: "search",
			params:   map[string]string{"q": "rust", "max": "10"},
		},
		{
			name:     "extra parameter",
			endpoint: "search",
			params:   map[string]string{"q": "golang", "max": "10", "lang": "en"},
		},
		{
			name:     "missing parameter",
			endpoint: "search",
			params:   map[string]string{"q": "golang"},
		},
		{
			name:     "ampersand inside a value",
			endpoint: "search",
			params:   map[string]string{"q": "golang", "max": "10&lang=en"},
		},
		{
			name:     "equals sign inside a value",
			endpoint: "search",
			params:   map[string]string{"q": "golang=rust", "max": "10"},
		},
		{
			name:     "question mark inside the endpoint",
			endpoint: "search?q=golang",
			params:   map[string]string{"max": "10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.endpoint, tt.params); got == baseKey {
				t.Errorf("Key(%q, %v) collides with base key", tt.endpoint, tt.params)
			}
		})
	}
}

// TestKey_DelimiterInjection pins the canonical form as injective: a value
// carrying the "&name=value" delimiters must not collide with a map that
// spells those out as real parameters. Both shapes are reachable from the
// HTTP layer, where q and sort_by are arbitrary user strings.
func TestKey_DelimiterInjection(t *testing.T) {
	smuggled := map[string]string{
		"q":       "hello&sortby=publishedAt",
		"sortby":  "relevance",
		"max":     "10",
		"lang":    "en",
		"country": "us",
	}
	spelled := map[string]string{
		"q":       "hello",
		"sortby":  "publishedAt&sortby=relevance",
		"max":     "10",
		"lang":    "en",
		"country": "us",
	}

	if Key("search", smuggled) == Key("search", spelled) {
		t.Error("distinct parameter maps collide via delimiter injection")
	}

	// A smuggled pair must also differ from the map that genuinely contains it.
	genuine := map[string]string{"q": "hello", "sortby": "publishedAt"}
	injected := map[string]string{"q": "hello&sortby=publishedAt"}
	if Key("search", genuine) == Key("search", injected) {
		t.Error("value with embedded delimiters collides with real parameter pair")
	}
}

func TestKey_EmptyParams(t *testing.T) {
	if Key("search", nil) != Key("search", map[string]string{}) {
		t.Error("nil and empty parameter maps should derive the same key")
	}
	if Key("search", nil) == Key("top-headlines", nil) {
		t.Error("endpoint must change the key even without parameters")
	}
}

func TestKey_Opaque(t *testing.T) {
	key := Key("search", map[string]string{"q": "golang"})

	// SHA-256 hex digest: fixed length, no parameter material leaks through.
	if len(key) != 64 {
		t.Errorf("key length = %d, want 64", len(key))
	}
	for _, c := range key {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			t.Errorf("unexpected character %q in key", c)
		}
	}
}
