package lix

import "github.com/astuanax/lix/internal/mdtext"

// CalculateMarkdown scores the prose of a Markdown document. Inline
// markup is reduced to its text; code blocks and raw HTML are ignored.
func (c *Calculator) CalculateMarkdown(src []byte) float64 {
	text := mdtext.ExtractPlainText(mdtext.Parse(src), src)
	return c.Calculate(text)
}
