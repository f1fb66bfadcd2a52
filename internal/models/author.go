package models

import "strings"

// Role is a staff role. It is shown in the UI and never used for permission checks.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleEditor Role = "Editor"
	RoleAuthor Role = "Author"
)

// ValidRoles defines allowed author roles
var ValidRoles = map[Role]bool{
	RoleAdmin:  true,
	RoleEditor: true,
	RoleAuthor: true,
}

// CanonicalRole maps any letter case of a role to its canonical form.
// Unknown roles are returned unchanged.
func CanonicalRole(role Role) Role {
	for r := range ValidRoles {
		if strings.EqualFold(string(r), string(role)) {
			return r
		}
	}
	return role
}

// UnknownAuthorName is displayed when an article references a missing author
const UnknownAuthorName = "Unknown Author"

// Author represents a staff member. The current session stores one verbatim.
type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
	Role   Role   `json:"role"`
}

// FindAuthor looks up an author by id
func FindAuthor(authors []Author, id string) (*Author, bool) {
	for i := range authors {
		if authors[i].ID == id {
			return &authors[i], true
		}
	}
	return nil, false
}

// AuthorName resolves an author id to a display name, falling back to
// UnknownAuthorName for dangling references.
func AuthorName(authors []Author, id string) string {
	if a, ok := FindAuthor(authors, id); ok {
		return a.Name
	}
	return UnknownAuthorName
}

// FindAuthorByName matches names case-insensitively
func FindAuthorByName(authors []Author, name string) (*Author, bool) {
	for i := range authors {
		if strings.EqualFold(authors[i].Name, name) {
			return &authors[i], true
		}
	}
	return nil, false
}
