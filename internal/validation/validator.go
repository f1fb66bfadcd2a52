package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/infosecwire/newsroom-api/internal/models"
)

var (
	slugRegex = regexp.MustCompile(`^[a-z0-9_]+(?:-[a-z0-9_]+)*$`)
	cveRegex  = regexp.MustCompile(`^CVE-\d{4}-\d{4,}$`)
)

// MaxCategoryLength bounds a category label
const MaxCategoryLength = 64

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Errors is a failed validation returned as an error value
type Errors []ValidationError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, ve := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", ve.Field, ve.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns nil for an empty list
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Validator provides validation methods. The slug cache makes uniqueness a
// best-effort check against a snapshot; nothing stops a concurrent save from
// taking the same slug.
type Validator struct {
	articleSlugCache map[string]string
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		articleSlugCache: make(map[string]string),
	}
}

// SetArticles loads the slug cache from the current article collection
func (v *Validator) SetArticles(articles []models.Article) {
	for _, a := range articles {
		v.AddArticleSlug(a.Slug, a.ID)
	}
}

// AddArticleSlug records that slug belongs to the article with id
func (v *Validator) AddArticleSlug(slug, id string) {
	if slug != "" {
		v.articleSlugCache[slug] = id
	}
}

// ValidateArticle validates an article submitted from the editor
func (v *Validator) ValidateArticle(article *models.Article) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(article.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}

	// Validate slug
	if article.Slug == "" {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug is required"})
	} else if !slugRegex.MatchString(article.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: article.Slug})
	} else if owner, ok := v.articleSlugCache[article.Slug]; ok && owner != article.ID {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug already used by another article", Value: article.Slug})
	}

	if strings.TrimSpace(article.Category) == "" {
		errors = append(errors, ValidationError{Field: "category", Message: "category is required"})
	}

	if article.AuthorID == "" {
		errors = append(errors, ValidationError{Field: "authorId", Message: "authorId is required"})
	}

	if !models.ValidStatuses[article.Status] {
		errors = append(errors, ValidationError{
			Field:   "status",
			Message: "invalid status, must be one of: draft, published, scheduled",
			Value:   article.Status,
		})
	}

	if article.CVEID != "" && !cveRegex.MatchString(article.CVEID) {
		errors = append(errors, ValidationError{Field: "cveId", Message: "cveId must look like CVE-YYYY-NNNN", Value: article.CVEID})
	}

	return errors
}

// ValidateAuthor validates an author submitted from the admin form
func (v *Validator) ValidateAuthor(author *models.Author) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(author.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}

	if !models.ValidRoles[author.Role] {
		errors = append(errors, ValidationError{
			Field:   "role",
			Message: "invalid role, must be one of: Admin, Editor, Author",
			Value:   author.Role,
		})
	}

	return errors
}

// ValidateCategory validates a category label; callers trim it first
func (v *Validator) ValidateCategory(name string) []ValidationError {
	switch {
	case name == "":
		return []ValidationError{{Field: "name", Message: "category name is required"}}
	case len(name) > MaxCategoryLength:
		return []ValidationError{{Field: "name", Message: fmt.Sprintf("category name exceeds %d characters", MaxCategoryLength), Value: name}}
	case strings.Contains(name, "/"):
		// the name is a path segment in the admin category routes
		return []ValidationError{{Field: "name", Message: "category name must not contain '/'", Value: name}}
	}
	return nil
}
