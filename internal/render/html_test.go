package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "Intro paragraph with <script>alert(1)</script>.\n\n" +
	"## Technical Details\n\n" +
	"The flaw sits in the request parser.\n\n" +
	"### Affected Versions\n\n" +
	"* 2.4.0 through 2.4.58\n* 3.0.0-beta\n\n" +
	"Patch now."

func TestBlocks(t *testing.T) {
	blocks := Blocks(sample)
	require.Len(t, blocks, 6)

	assert.Equal(t, BlockParagraph, blocks[0].Kind)
	assert.Equal(t, Block{Kind: BlockH2, Text: "Technical Details"}, blocks[1])
	assert.Equal(t, Block{Kind: BlockH3, Text: "Affected Versions"}, blocks[3])
	assert.Equal(t, Block{Kind: BlockList, Items: []string{"2.4.0 through 2.4.58", "3.0.0-beta"}}, blocks[4])
	assert.Equal(t, "Patch now.", blocks[5].Text)
}

func TestBlocks_Empty(t *testing.T) {
	assert.Empty(t, Blocks(""))
	assert.Empty(t, Blocks("\n\n\n\n"))
}

func TestBlocks_ExtraBlankLineKeepsParagraph(t *testing.T) {
	blocks := Blocks("a\n\n\n## H")
	require.Len(t, blocks, 2)
	assert.Equal(t, Block{Kind: BlockParagraph, Text: "a"}, blocks[0])
	assert.Equal(t, Block{Kind: BlockParagraph, Text: "## H"}, blocks[1])
}

func TestToHTML(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(ToHTML(sample)))
	require.NoError(t, err)

	assert.Equal(t, "Technical Details", doc.Find("h2").Text())
	assert.Equal(t, "Affected Versions", doc.Find("h3").Text())
	assert.Equal(t, 2, doc.Find("ul li").Length())
	assert.Equal(t, "3.0.0-beta", doc.Find("ul li").Last().Text())
	assert.Equal(t, 3, doc.Find("p").Length())

	// escaped, never parsed as markup
	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Contains(t, doc.Find("p").First().Text(), "<script>alert(1)</script>")
}

func TestToHTML_WindowsLineEndings(t *testing.T) {
	out := ToHTML("## Heading\r\n\r\nBody")
	assert.Equal(t, "<h2>Heading</h2>\n<p>Body</p>\n", out)
}
