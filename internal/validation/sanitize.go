package validation

import (
	"regexp"
	"strings"
)

// scriptTag casa blocos <script>...</script> inteiros, caso-insensível.
// RE2 não tem lookahead, então usamos um match não-guloso equivalente
// ao regex do express original.
var scriptTag = regexp.MustCompile(`(?is)<script\b.*?</script\s*>`)

// CleanString trims whitespace and strips embedded script-tag content.
// Defense in depth against stored XSS; output encoding still belongs to
// the consumer.
func CleanString(s string) string {
	return strings.TrimSpace(scriptTag.ReplaceAllString(s, ""))
}

// CleanBody walks a decoded JSON document and sanitizes every
// string-valued field in place, recursing into objects and arrays.
func CleanBody(doc any) any {
	switch v := doc.(type) {
	case string:
		return CleanString(v)
	case map[string]any:
		for k, val := range v {
			v[k] = CleanBody(val)
		}
		return v
	case []any:
		for i, val := range v {
			v[i] = CleanBody(val)
		}
		return v
	default:
		return doc
	}
}
