// Package auth keeps the single current-user session. Presence of the session
// record is the only authentication signal: there is no expiry, no refresh
// and no server-side check that the stored author still exists.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/metrics"
	"github.com/infosecwire/newsroom-api/internal/models"
	"github.com/infosecwire/newsroom-api/internal/repository"
)

// Sign-in providers
const (
	ProviderGoogle    = "google"
	ProviderMicrosoft = "microsoft"
)

// GoogleStaffBio is the bio given to authors synthesized from a Google profile
const GoogleStaffBio = "Editorial staff authenticated via Google."

// DefaultStubDelay is how long the Microsoft placeholder waits before signing in
const DefaultStubDelay = 1200 * time.Millisecond

// ErrNoStubAuthor is returned by the Microsoft placeholder when fewer than
// two authors exist
var ErrNoStubAuthor = errors.New("no author available for microsoft sign-in")

// Service handles sign-in, sign-out and the current session
type Service struct {
	authors   repository.AuthorRepository
	session   repository.SessionRepository
	stubDelay time.Duration
	log       zerolog.Logger
}

// NewService creates a new auth service
func NewService(repos *repository.Repositories, stubDelay time.Duration, log zerolog.Logger) *Service {
	if stubDelay < 0 {
		stubDelay = 0
	}
	return &Service{
		authors:   repos.Author,
		session:   repos.Session,
		stubDelay: stubDelay,
		log:       log.With().Str("component", "auth").Logger(),
	}
}

// Login stores author as the current session, replacing any previous one
func (s *Service) Login(ctx context.Context, author models.Author) error {
	if err := s.session.Set(ctx, author); err != nil {
		return err
	}
	s.log.Info().Str("author_id", author.ID).Str("name", author.Name).Msg("Session started")
	return nil
}

// Logout removes the current session
func (s *Service) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("Session cleared")
	return nil
}

// CurrentUser returns the stored session author
func (s *Service) CurrentUser(ctx context.Context) (*models.Author, bool, error) {
	author, err := s.session.Get(ctx)
	if err != nil {
		return nil, false, err
	}
	return author, author != nil, nil
}

// IsAuthenticated reports whether a session record exists
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.session.Exists(ctx)
}

// HandleIdentityToken signs in from a Google identity token. The profile
// name is matched case-insensitively against stored authors; with no match
// a transient Author is built from the profile and is not added to the
// authors collection.
func (s *Service) HandleIdentityToken(ctx context.Context, token string) (author *models.Author, err error) {
	defer func() { metrics.ObserveSignIn(ProviderGoogle, err) }()

	profile, err := DecodeIdentityToken(token)
	if err != nil {
		s.log.Warn().Err(err).Msg("Rejected identity token")
		return nil, err
	}

	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load authors: %w", err)
	}

	resolved, ok := models.FindAuthorByName(authors, profile.Name)
	if !ok {
		resolved = &models.Author{
			ID:     profile.Subject,
			Name:   profile.Name,
			Bio:    GoogleStaffBio,
			Avatar: profile.Picture,
			Role:   models.RoleAuthor,
		}
	}

	if err := s.Login(ctx, *resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

// LoginWithMicrosoft is a placeholder, not a protocol implementation. It
// waits the configured delay and signs in the second stored author.
func (s *Service) LoginWithMicrosoft(ctx context.Context) (author *models.Author, err error) {
	defer func() { metrics.ObserveSignIn(ProviderMicrosoft, err) }()

	timer := time.NewTimer(s.stubDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load authors: %w", err)
	}
	if len(authors) < 2 {
		return nil, ErrNoStubAuthor
	}

	stub := authors[1]
	if err := s.Login(ctx, stub); err != nil {
		return nil, err
	}
	return &stub, nil
}
