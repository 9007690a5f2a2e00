package sandboxController

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSandboxAttributes(t *testing.T) {
	// The preview iframe permission set is fixed; widening it would let
	// lesson code escape the sandbox.
	assert.Equal(t, "allow-scripts allow-modals", sandboxAttributes)
	assert.NotContains(t, sandboxAttributes, "allow-same-origin")
	assert.NotContains(t, sandboxAttributes, "allow-top-navigation")
	assert.NotContains(t, sandboxAttributes, "allow-forms")
}

func TestBuildPreviewDocumentWrapsFragments(t *testing.T) {
	doc := buildPreviewDocument(`<h1>Hi</h1><script>alert("hi")</script>`)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, `<h1>Hi</h1>`)
	assert.Contains(t, doc, `alert("hi")`)
}

func TestBuildPreviewDocumentKeepsFullDocuments(t *testing.T) {
	full := "<!DOCTYPE html>\n<html><body><p>ok</p></body></html>"
	assert.Equal(t, full, buildPreviewDocument(full))

	// Case-insensitive doctype detection, leading whitespace tolerated
	upper := "  <!doctype HTML><html><body></body></html>"
	assert.Equal(t, strings.TrimSpace(upper), buildPreviewDocument(upper))

	bare := "<html><body></body></html>"
	assert.Equal(t, bare, buildPreviewDocument(bare))
}
