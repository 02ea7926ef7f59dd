// Package markdown renders user-written content (review bodies and ticket
// descriptions) to HTML safe for embedding in feed views.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Renderer interface {
	// RenderSanitized converts markdown to HTML and strips anything the
	// UGC policy disallows.
	RenderSanitized(markdown string) (string, error)
	// Sanitize strips disallowed HTML from already-rendered content.
	Sanitize(htmlContent string) string
}

type rendererImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	return &rendererImpl{
		md:     md,
		policy: bluemonday.UGCPolicy(),
	}
}

func (r *rendererImpl) RenderSanitized(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

func (r *rendererImpl) Sanitize(htmlContent string) string {
	return r.policy.Sanitize(htmlContent)
}
