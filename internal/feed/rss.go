// Package feed composes the public front page and the RSS feed.
package feed

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/infosecwire/newsroom-api/internal/models"
	"github.com/infosecwire/newsroom-api/internal/render"
)

// Channel describes the site in the feed header
type Channel struct {
	Title       string
	Description string
	BaseURL     string
}

// Generator writes RSS 2.0 documents
type Generator struct {
	channel Channel
}

func NewGenerator(channel Channel) *Generator {
	channel.BaseURL = strings.TrimRight(channel.BaseURL, "/")
	return &Generator{channel: channel}
}

// ArticleURL is the public link for an article slug
func (g *Generator) ArticleURL(slug string) string {
	return fmt.Sprintf("%s/article/%s", g.channel.BaseURL, slug)
}

// Run renders articles in the given order. Callers pass published articles
// only; authors resolve author names for the <author> element.
func (g *Generator) Run(articles []models.Article, authors []models.Author) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", g.channel.Title, 4)
	g.writeElement(&buf, "link", g.channel.BaseURL+"/", 4)
	g.writeElement(&buf, "description", cmp.Or(g.channel.Description, g.channel.Title), 4)
	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(g.channel.BaseURL+"/feed.xml")))

	lastBuildDate := time.Now().UTC()
	if len(articles) > 0 {
		lastBuildDate = articles[0].PublishedAt
	}
	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", "newsroom-api", 4)
	g.writeElement(&buf, "language", "en", 4)

	for _, a := range articles {
		g.writeItem(&buf, a, models.AuthorName(authors, a.AuthorID))
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, a models.Article, author string) {
	buf.WriteString("    <item>\n")

	buf.WriteString("      <guid isPermaLink=\"false\">")
	xml.EscapeText(buf, []byte(a.ID))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "title", a.Title, 6)
	g.writeElement(buf, "link", g.ArticleURL(a.Slug), 6)
	g.writeElement(buf, "description", cmp.Or(a.Excerpt, a.MetaDescription, "No description available"), 6)

	if body := render.ToHTML(a.Content); body != "" {
		buf.WriteString("      <content:encoded><![CDATA[")
		// "]]>" would end the section early
		buf.WriteString(strings.ReplaceAll(body, "]]>", "]]]]><![CDATA[>"))
		buf.WriteString("]]></content:encoded>\n")
	}

	g.writeElement(buf, "pubDate", a.PublishedAt.Format(time.RFC1123Z), 6)
	g.writeElement(buf, "author", author, 6)
	g.writeElement(buf, "category", a.Category, 6)
	for _, tag := range a.Tags {
		g.writeElement(buf, "category", tag, 6)
	}

	if strings.HasPrefix(a.FeaturedImage, "http://") || strings.HasPrefix(a.FeaturedImage, "https://") {
		buf.WriteString(fmt.Sprintf("      <enclosure url=\"%s\" length=\"0\" type=\"image/jpeg\" />\n",
			html.EscapeString(a.FeaturedImage)))
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
