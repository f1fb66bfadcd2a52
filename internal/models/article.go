package models

import (
	"strings"
	"time"
)

// ArticleStatus is the publication lifecycle state of an article
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusScheduled ArticleStatus = "scheduled"
)

// ValidStatuses defines allowed article statuses
var ValidStatuses = map[ArticleStatus]bool{
	StatusDraft:     true,
	StatusPublished: true,
	StatusScheduled: true,
}

// Article represents a news report.
// Category and AuthorID are soft references: nothing keeps them pointing at
// an existing category or author.
type Article struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	Excerpt         string        `json:"excerpt"`
	Content         string        `json:"content"`
	Category        string        `json:"category"`
	AuthorID        string        `json:"authorId"`
	PublishedAt     time.Time     `json:"publishedAt"`
	FeaturedImage   string        `json:"featuredImage"`
	Tags            []string      `json:"tags"`
	IsFeatured      bool          `json:"isFeatured"`
	IsSponsored     bool          `json:"isSponsored"`
	Status          ArticleStatus `json:"status"`
	MetaTitle       string        `json:"metaTitle,omitempty"`
	MetaDescription string        `json:"metaDescription,omitempty"`
	CVEID           string        `json:"cveId,omitempty"`
}

// IsPublished reports whether the article is visible on the public feed
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}

// CategorySlug returns the URL form of a category name: lower-cased with
// spaces replaced by hyphens. Other characters are kept as they are.
func CategorySlug(category string) string {
	return strings.ReplaceAll(strings.ToLower(category), " ", "-")
}

// Matches reports whether the lower-cased query is a substring of any
// searchable field. q must already be lower-cased.
func (a *Article) Matches(q string) bool {
	if strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Excerpt), q) ||
		strings.Contains(strings.ToLower(a.Content), q) ||
		strings.Contains(strings.ToLower(a.Category), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return a.CVEID != "" && strings.Contains(strings.ToLower(a.CVEID), q)
}
