package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// PlainText renders the human-readable text of a Markdown fragment.
// Heading markers, emphasis, link syntax and code fences are stripped down
// to their textual content; block boundaries become newlines.
func PlainText(body []byte) string {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var sb strings.Builder
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if n.Type() == gmast.TypeBlock && sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		switch node := n.(type) {
		case *gmast.Text:
			sb.Write(node.Segment.Value(body))
			if node.HardLineBreak() || node.SoftLineBreak() {
				sb.WriteByte('\n')
			}
		case *gmast.String:
			sb.Write(node.Value)
		case *gmast.AutoLink:
			sb.Write(node.URL(body))
		case *gmast.CodeBlock:
			writeLines(&sb, node, body)
		case *gmast.FencedCodeBlock:
			writeLines(&sb, node, body)
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// WordCount counts whitespace-separated words in the rendered text of a
// Markdown fragment, so `**bold**` and heading markers don't inflate the
// numbers shown in chapter listings.
func WordCount(body []byte) int {
	return len(strings.Fields(PlainText(body)))
}

func writeLines(sb *strings.Builder, n gmast.Node, src []byte) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
}
