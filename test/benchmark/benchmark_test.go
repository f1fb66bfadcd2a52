package benchmark

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/infosecwire/newsroom-api/internal/feed"
	"github.com/infosecwire/newsroom-api/internal/kvstore"
	"github.com/infosecwire/newsroom-api/internal/models"
	"github.com/infosecwire/newsroom-api/internal/render"
	"github.com/infosecwire/newsroom-api/internal/repository"
	"github.com/infosecwire/newsroom-api/internal/validation"
)

func makeArticles(n int) []models.Article {
	now := time.Now()
	articles := make([]models.Article, n)
	for i := range articles {
		articles[i] = models.Article{
			ID:          fmt.Sprintf("bench-%06d", i),
			Title:       fmt.Sprintf("Ransomware Campaign %d Hits Regional Banks", i),
			Slug:        fmt.Sprintf("ransomware-campaign-%d", i),
			Excerpt:     "Attackers abused a VPN flaw for initial access.",
			Content:     "## Overview\n\nDetails are emerging.\n\n* IOC one\n* IOC two",
			Category:    "Cyber Attacks",
			AuthorID:    "a1",
			PublishedAt: now.Add(-time.Duration(i) * time.Minute),
			Tags:        []string{"Ransomware", "Banking"},
			Status:      models.StatusPublished,
		}
	}
	return articles
}

// BenchmarkArticleSave benchmarks the whole-collection read-modify-write path
func BenchmarkArticleSave(b *testing.B) {
	ctx := context.Background()
	repos := repository.New(kvstore.NewMemory())
	base := makeArticles(1)[0]

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		a := base
		a.ID = fmt.Sprintf("save-%d", i%500)
		if _, err := repos.Article.Save(ctx, a); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportMetric(float64(b.N)/b.Elapsed().Seconds(), "saves/sec")
}

// BenchmarkSearch benchmarks published search over 1000 articles
func BenchmarkSearch(b *testing.B) {
	ctx := context.Background()
	repos := repository.New(kvstore.NewMemory())
	for _, a := range makeArticles(1000) {
		repos.Article.Save(ctx, a)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		repos.Article.Search(ctx, "banks")
	}
}

// BenchmarkValidation benchmarks article validation against a warm slug cache
func BenchmarkValidation(b *testing.B) {
	validator := validation.NewValidator()
	validator.SetArticles(makeArticles(1000))
	article := makeArticles(1)[0]
	article.ID = "new"
	article.Slug = "fresh-slug"

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		validator.ValidateArticle(&article)
	}
}

// BenchmarkSlugify benchmarks title to slug conversion with accents
func BenchmarkSlugify(b *testing.B) {
	title := "Café Owners Targeted by Crème-Brûlée Phishing Kit -- Résumé Inside"

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		validation.Slugify(title)
	}
}

// BenchmarkRenderHTML benchmarks block markup rendering
func BenchmarkRenderHTML(b *testing.B) {
	content := strings.Repeat("## Heading\n\nParagraph text with <tags>.\n\n* one\n* two\n\n", 50)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		render.ToHTML(content)
	}
}

// BenchmarkFeed benchmarks RSS generation for 100 items
func BenchmarkFeed(b *testing.B) {
	gen := feed.NewGenerator(feed.Channel{Title: "InfosecWire", BaseURL: "https://infosecwire.test"})
	articles := makeArticles(100)
	authors := models.DefaultAuthors()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := gen.Run(articles, authors); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportMetric(float64(100*b.N)/b.Elapsed().Seconds(), "items/sec")
}

// BenchmarkArticleSaveParallel measures contention on the shared collection
func BenchmarkArticleSaveParallel(b *testing.B) {
	ctx := context.Background()
	repos := repository.New(kvstore.NewMemory())
	base := makeArticles(1)[0]

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			a := base
			a.ID = fmt.Sprintf("p-%d", i%50)
			repos.Article.Save(ctx, a)
			i++
		}
	})
}
