package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanStringStripsScriptAndTrims(t *testing.T) {
	got := CleanString("  Maria <script>alert(1)</script>Silva  ")
	assert.Equal(t, "Maria Silva", got)
}

func TestCleanStringCaseInsensitiveAndMultiline(t *testing.T) {
	got := CleanString("a<SCRIPT type=\"text/javascript\">\nevil()\n</ScRiPt >b")
	assert.Equal(t, "ab", got)
}

func TestCleanStringLeavesPlainTextAlone(t *testing.T) {
	assert.Equal(t, "Notebook Dell <i5>", CleanString("Notebook Dell <i5>"))
}

func TestCleanBodyWalksNestedDocuments(t *testing.T) {
	doc := map[string]any{
		"name":  "  <script>x</script>Ana ",
		"count": float64(3),
		"tags":  []any{" a ", map[string]any{"v": " b<script></script> "}},
	}

	out := CleanBody(doc).(map[string]any)

	assert.Equal(t, "Ana", out["name"])
	assert.Equal(t, float64(3), out["count"])

	tags := out["tags"].([]any)
	assert.Equal(t, "a", tags[0])
	assert.Equal(t, "b", tags[1].(map[string]any)["v"])
}
