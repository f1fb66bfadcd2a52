package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infosecwire/newsroom-api/internal/models"
)

var now = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

func published(articles []models.Article) []models.Article {
	var out []models.Article
	for _, a := range articles {
		if a.IsPublished() {
			out = append(out, a)
		}
	}
	return out
}

func TestComposeHome_FeaturedFromDisplay(t *testing.T) {
	all := models.DefaultArticles(now)
	home := ComposeHome(all, all)

	require.NotNil(t, home.Featured)
	assert.Equal(t, "1", home.Featured.ID)
	assert.Len(t, home.Articles, 3)
	for _, a := range home.Articles {
		assert.NotEqual(t, "1", a.ID)
	}
	assert.Len(t, home.Trending, 4)
}

func TestComposeHome_FallsBackToAnyFeatured(t *testing.T) {
	all := models.DefaultArticles(now)
	var display []models.Article
	for _, a := range all {
		if a.Category == "Vulnerabilities" {
			display = append(display, a)
		}
	}

	home := ComposeHome(all, display)
	require.NotNil(t, home.Featured)
	assert.Equal(t, "1", home.Featured.ID)
	assert.Equal(t, display, home.Articles)
}

func TestComposeHome_NoFeatured(t *testing.T) {
	a := models.Article{ID: "x", Status: models.StatusPublished}
	home := ComposeHome([]models.Article{a}, []models.Article{a})
	assert.Nil(t, home.Featured)
	assert.Len(t, home.Articles, 1)
}

func TestComposeHome_TrendingLimit(t *testing.T) {
	var list []models.Article
	for i := 0; i < 8; i++ {
		list = append(list, models.Article{ID: string(rune('a' + i)), Status: models.StatusPublished})
	}
	home := ComposeHome(list, list)
	require.Len(t, home.Trending, TrendingLimit)
	assert.Equal(t, "a", home.Trending[0].ID)
	assert.Equal(t, "e", home.Trending[4].ID)
}

func TestGenerator_ParsesAsRSS(t *testing.T) {
	articles := models.DefaultArticles(now)
	articles = append(articles, models.Article{
		ID: "draft", Title: "Unreleased", Slug: "unreleased", Status: models.StatusDraft, PublishedAt: now,
	})
	articles[0].Content = "Lead\n\n## Details\n\nA tricky ]]> sequence & more"

	g := NewGenerator(Channel{Title: "InfoSecWire", Description: "Security news", BaseURL: "https://news.example.com/"})
	out, err := g.Run(published(articles), models.DefaultAuthors())
	require.NoError(t, err)

	feed, err := gofeed.NewParser().ParseString(out)
	require.NoError(t, err)

	assert.Equal(t, "InfoSecWire", feed.Title)
	assert.Equal(t, "Security news", feed.Description)
	require.Len(t, feed.Items, 4)

	for _, item := range feed.Items {
		assert.NotEqual(t, "Unreleased", item.Title)
		assert.True(t, strings.HasPrefix(item.Link, "https://news.example.com/article/"))
		require.NotNil(t, item.PublishedParsed)
	}

	first := feed.Items[0]
	assert.Equal(t, "1", first.GUID)
	assert.Contains(t, first.Content, "<h2>Details</h2>")
	assert.Contains(t, first.Content, "]]&gt; sequence &amp; more")
	assert.Contains(t, first.Categories, "Data Breaches")
	assert.True(t, first.PublishedParsed.Equal(now.Add(-time.Hour)))
}

func TestGenerator_Empty(t *testing.T) {
	g := NewGenerator(Channel{Title: "InfoSecWire", BaseURL: "http://localhost:8080"})
	out, err := g.Run(nil, nil)
	require.NoError(t, err)

	feed, err := gofeed.NewParser().ParseString(out)
	require.NoError(t, err)
	assert.Empty(t, feed.Items)
	assert.Equal(t, "InfoSecWire", feed.Description)
}
