package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infosecwire/newsroom-api/internal/kvstore"
	"github.com/infosecwire/newsroom-api/internal/models"
	"github.com/infosecwire/newsroom-api/internal/repository"
)

func newTestService(t *testing.T, delay time.Duration) (*Service, *repository.Repositories) {
	t.Helper()
	repos := repository.New(kvstore.NewMemory())
	return NewService(repos, delay, zerolog.Nop()), repos
}

// signToken builds a token the way the sign-in widget would hand it over.
// The key is irrelevant since the signature is never checked.
func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-checked"))
	require.NoError(t, err)
	return tok
}

func TestLoginLogoutLifecycle(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	a := models.DefaultAuthors()[0]
	require.NoError(t, svc.Login(ctx, a))

	ok, err := svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	got, ok, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, a, *got)

	require.NoError(t, svc.Logout(ctx))

	ok, err = svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	got, ok, err = svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestLogin_OverwritesPreviousSession(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	authors := models.DefaultAuthors()
	require.NoError(t, svc.Login(ctx, authors[0]))
	require.NoError(t, svc.Login(ctx, authors[1]))

	got, _, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, authors[1].ID, got.ID)
}

func TestIsAuthenticated_DoesNotCheckAuthorExists(t *testing.T) {
	svc, repos := newTestService(t, 0)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, models.DefaultAuthors()[0]))
	require.NoError(t, repos.Author.Delete(ctx, "a1"))

	ok, err := svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHandleIdentityToken_ExistingAuthor(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	tok := signToken(t, Profile{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "google-123"},
		Name:             "elena VANCE",
		Picture:          "https://example.com/e.png",
	})

	author, err := svc.HandleIdentityToken(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAuthors()[0], *author)

	current, ok, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a1", current.ID)
}

func TestHandleIdentityToken_SynthesizesAuthor(t *testing.T) {
	svc, repos := newTestService(t, 0)
	ctx := context.Background()

	tok := signToken(t, Profile{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "google-999"},
		Name:             "New Reporter",
		Picture:          "https://example.com/n.png",
	})

	author, err := svc.HandleIdentityToken(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, models.Author{
		ID:     "google-999",
		Name:   "New Reporter",
		Bio:    GoogleStaffBio,
		Avatar: "https://example.com/n.png",
		Role:   models.RoleAuthor,
	}, *author)

	// transient: not written to the authors collection
	authors, err := repos.Author.List(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 2)

	current, _, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, *author, *current)
}

func TestHandleIdentityToken_Invalid(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"one segment", "garbage"},
		{"bad payload", "eyJhbGciOiJIUzI1NiJ9.!!!.sig"},
		{"no name", signToken(t, Profile{RegisteredClaims: jwt.RegisteredClaims{Subject: "x"}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.HandleIdentityToken(ctx, tt.token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	ok, err := svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginWithMicrosoft_SignsInSecondAuthor(t *testing.T) {
	svc, _ := newTestService(t, 10*time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	author, err := svc.LoginWithMicrosoft(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	assert.Equal(t, "a2", author.ID)

	current, ok, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Marcus Thorne", current.Name)
}

func TestLoginWithMicrosoft_Cancelled(t *testing.T) {
	svc, _ := newTestService(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.LoginWithMicrosoft(ctx)
	require.ErrorIs(t, err, context.Canceled)

	ok, err := svc.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginWithMicrosoft_NotEnoughAuthors(t *testing.T) {
	svc, repos := newTestService(t, 0)
	ctx := context.Background()

	require.NoError(t, repos.Author.Delete(ctx, "a2"))

	_, err := svc.LoginWithMicrosoft(ctx)
	require.ErrorIs(t, err, ErrNoStubAuthor)
}
