package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/infosecwire/newsroom-api/internal/models"
)

func validArticle() models.Article {
	return models.Article{
		ID:       "art-1",
		Title:    "Patch Tuesday roundup",
		Slug:     "patch-tuesday-roundup",
		Category: "Vulnerabilities",
		AuthorID: "a1",
		Status:   models.StatusDraft,
	}
}

func TestValidateArticle(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name       string
		mutate     func(a *models.Article)
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid draft",
			mutate:     func(a *models.Article) {},
			wantErrors: 0,
		},
		{
			name:       "missing title",
			mutate:     func(a *models.Article) { a.Title = "  " },
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name:       "missing slug",
			mutate:     func(a *models.Article) { a.Slug = "" },
			wantErrors: 1,
			wantFields: []string{"slug"},
		},
		{
			name:       "slug with uppercase",
			mutate:     func(a *models.Article) { a.Slug = "Patch-Tuesday" },
			wantErrors: 1,
			wantFields: []string{"slug"},
		},
		{
			name:       "missing category and author",
			mutate:     func(a *models.Article) { a.Category = ""; a.AuthorID = "" },
			wantErrors: 2,
			wantFields: []string{"category", "authorId"},
		},
		{
			name:       "unknown status",
			mutate:     func(a *models.Article) { a.Status = "archived" },
			wantErrors: 1,
			wantFields: []string{"status"},
		},
		{
			name:       "malformed cve id",
			mutate:     func(a *models.Article) { a.CVEID = "2025-0012" },
			wantErrors: 1,
			wantFields: []string{"cveId"},
		},
		{
			name:       "well formed cve id",
			mutate:     func(a *models.Article) { a.CVEID = "CVE-2025-10012" },
			wantErrors: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validArticle()
			tt.mutate(&a)
			errors := validator.ValidateArticle(&a)
			if len(errors) != tt.wantErrors {
				t.Errorf("Expected %d errors, got %d: %+v", tt.wantErrors, len(errors), errors)
			}
			for _, field := range tt.wantFields {
				found := false
				for _, e := range errors {
					if e.Field == field {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("Expected error on field %q, got %+v", field, errors)
				}
			}
		})
	}
}

func TestValidateArticle_DuplicateSlug(t *testing.T) {
	validator := NewValidator()
	validator.SetArticles(models.DefaultArticles(time.Now()))

	seed := models.DefaultArticles(time.Now())[0]

	// same article keeps its own slug
	own := seed
	if errs := validator.ValidateArticle(&own); len(errs) != 0 {
		t.Errorf("Expected seed article to validate, got %+v", errs)
	}

	other := validArticle()
	other.Slug = seed.Slug
	errs := validator.ValidateArticle(&other)
	if len(errs) != 1 || errs[0].Field != "slug" {
		t.Errorf("Expected duplicate slug error, got %+v", errs)
	}
}

func TestValidateArticle_SeedData(t *testing.T) {
	validator := NewValidator()
	for _, a := range models.DefaultArticles(time.Now()) {
		a := a
		if errs := validator.ValidateArticle(&a); len(errs) != 0 {
			t.Errorf("Seed article %s failed validation: %+v", a.ID, errs)
		}
	}
}

func TestValidateAuthor(t *testing.T) {
	validator := NewValidator()

	ok := models.Author{ID: "a9", Name: "Jo Park", Role: models.RoleAuthor}
	if errs := validator.ValidateAuthor(&ok); len(errs) != 0 {
		t.Errorf("Expected no errors, got %+v", errs)
	}

	bad := models.Author{ID: "a9", Name: "", Role: "Intern"}
	errs := validator.ValidateAuthor(&bad)
	if len(errs) != 2 {
		t.Errorf("Expected 2 errors, got %+v", errs)
	}
}

func TestValidateCategory(t *testing.T) {
	validator := NewValidator()

	if errs := validator.ValidateCategory("OT Security"); len(errs) != 0 {
		t.Errorf("Expected no errors, got %+v", errs)
	}
	if errs := validator.ValidateCategory(""); len(errs) != 1 {
		t.Errorf("Expected 1 error for empty name, got %+v", errs)
	}
	if errs := validator.ValidateCategory(strings.Repeat("x", MaxCategoryLength+1)); len(errs) != 1 {
		t.Errorf("Expected 1 error for long name, got %+v", errs)
	}
	if errs := validator.ValidateCategory("CI/CD"); len(errs) != 1 {
		t.Errorf("Expected 1 error for name with a slash, got %+v", errs)
	}
}

func TestErrors(t *testing.T) {
	var empty Errors
	if empty.Err() != nil {
		t.Error("Expected nil error for empty list")
	}

	errs := Errors{{Field: "title", Message: "title is required"}, {Field: "slug", Message: "slug is required"}}
	got := errs.Err()
	if got == nil {
		t.Fatal("Expected error")
	}
	want := "validation failed: title: title is required; slug: slug is required"
	if got.Error() != want {
		t.Errorf("Expected %q, got %q", want, got.Error())
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Critical RCE in Apache HTTP/2!", "critical-rce-in-apache-http2"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Café Résumé naïve", "cafe-resume-naive"},
		{"AI & Cloud Security", "ai-cloud-security"},
		{"snake_case stays", "snake_case-stays"},
		{"already-kebab--case", "already-kebab-case"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
