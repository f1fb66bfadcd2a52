// Package render turns article content into HTML. Content is split into
// blocks on blank lines; a block starting with "## " or "### " is a heading,
// a block starting with "* " is a bullet list with one item per line, and
// anything else is a paragraph. All text is escaped.
package render

import (
	"html"
	"strings"
)

// BlockKind identifies a content block
type BlockKind string

const (
	BlockH2        BlockKind = "h2"
	BlockH3        BlockKind = "h3"
	BlockList      BlockKind = "ul"
	BlockParagraph BlockKind = "p"
)

// Block is one structural unit of article content
type Block struct {
	Kind  BlockKind `json:"kind"`
	Text  string    `json:"text,omitempty"`
	Items []string  `json:"items,omitempty"`
}

// Blocks parses content into its structural blocks
func Blocks(content string) []Block {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var blocks []Block
	for _, para := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}

		// Markers only count at the very start of the raw block
		switch {
		case strings.HasPrefix(para, "### "):
			blocks = append(blocks, Block{Kind: BlockH3, Text: strings.TrimPrefix(para, "### ")})
		case strings.HasPrefix(para, "## "):
			blocks = append(blocks, Block{Kind: BlockH2, Text: strings.TrimPrefix(para, "## ")})
		case strings.HasPrefix(para, "* "):
			var items []string
			for _, line := range strings.Split(para, "\n") {
				items = append(items, strings.TrimPrefix(line, "* "))
			}
			blocks = append(blocks, Block{Kind: BlockList, Items: items})
		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: strings.Trim(para, "\n")})
		}
	}
	return blocks
}

// ToHTML renders content as an HTML fragment
func ToHTML(content string) string {
	var b strings.Builder
	for _, block := range Blocks(content) {
		switch block.Kind {
		case BlockList:
			b.WriteString("<ul>")
			for _, item := range block.Items {
				b.WriteString("<li>")
				b.WriteString(html.EscapeString(item))
				b.WriteString("</li>")
			}
			b.WriteString("</ul>\n")
		default:
			tag := string(block.Kind)
			b.WriteString("<" + tag + ">")
			b.WriteString(html.EscapeString(block.Text))
			b.WriteString("</" + tag + ">\n")
		}
	}
	return b.String()
}
