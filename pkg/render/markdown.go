package render

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdownOnce   sync.Once
	markdownEngine goldmark.Markdown
	markdownPolicy *bluemonday.Policy
)

// MarkdownHTML renders markdown-flavored item text (bold, links) to
// sanitized HTML. Schema text arrives from an editable JSON store, so the
// output always passes through the sanitizer before reaching a page.
func MarkdownHTML(text string) (string, error) {
	markdownOnce.Do(func() {
		markdownEngine = goldmark.New()
		markdownPolicy = bluemonday.UGCPolicy()
	})

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render: markdown: %w", err)
	}
	return strings.TrimSpace(markdownPolicy.Sanitize(buf.String())), nil
}
