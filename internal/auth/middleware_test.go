package auth_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom-dev/stockroom/internal/auth"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "case insensitive scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "scheme without token", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := auth.ExtractBearerToken(tt.header)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

type middlewareFixture struct {
	app       *fiber.App
	directory *auth.Directory
	tokens    auth.TokenService
}

func newMiddlewareFixture(t *testing.T) *middlewareFixture {
	t.Helper()

	directory := auth.NewDirectory(newTestDB(t))
	tokens := auth.NewTokenService([]byte("test-signing-key"), 1, nil)
	guard := auth.NewAccessGuard(directory)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.SendStatus(auth.HTTPStatus(err))
		},
	})

	app.Get("/me", auth.Protected(tokens, directory), func(c *fiber.Ctx) error {
		identity := auth.IdentityFromLocals(c)
		if identity == nil {
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{"username": identity.Username})
	})

	app.Get("/admin",
		auth.Protected(tokens, directory),
		auth.RequireRoles(guard, auth.NewRoleRequirement(auth.RoleAdmin)),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

	return &middlewareFixture{app: app, directory: directory, tokens: tokens}
}

func (f *middlewareFixture) request(t *testing.T, path, token string) int {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode
}

func TestProtected(t *testing.T) {
	ctx := context.Background()
	f := newMiddlewareFixture(t)

	user, err := f.directory.Create(ctx, aliceCandidate())
	require.NoError(t, err)

	token, err := f.tokens.Generate(user)
	require.NoError(t, err)

	t.Run("valid token passes and resolves identity", func(t *testing.T) {
		assert.Equal(t, fiber.StatusOK, f.request(t, "/me", token))
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, fiber.StatusUnauthorized, f.request(t, "/me", ""))
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, fiber.StatusUnauthorized, f.request(t, "/me", "not.a.token"))
	})

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewTokenService([]byte("test-signing-key"), -1, nil)
		staleToken, err := expired.Generate(user)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, f.request(t, "/me", staleToken))
	})

	t.Run("token signed with another key", func(t *testing.T) {
		foreign := auth.NewTokenService([]byte("other-key"), 1, nil)
		foreignToken, err := foreign.Generate(user)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, f.request(t, "/me", foreignToken))
	})

	t.Run("token for a deleted account", func(t *testing.T) {
		doomed, err := f.directory.Create(ctx, auth.UserCandidate{
			Username: "doomed",
			Email:    "doomed@example.com",
			Password: "password123",
		})
		require.NoError(t, err)

		doomedToken, err := f.tokens.Generate(doomed)
		require.NoError(t, err)
		require.NoError(t, f.directory.Delete(ctx, doomed.ID))

		assert.Equal(t, fiber.StatusUnauthorized, f.request(t, "/me", doomedToken))
	})
}

func TestRequireRoles(t *testing.T) {
	ctx := context.Background()
	f := newMiddlewareFixture(t)

	admin, err := f.directory.Create(ctx, auth.UserCandidate{
		Username: "root",
		Email:    "root@example.com",
		Password: "password123",
		Role:     auth.RoleAdmin,
	})
	require.NoError(t, err)

	viewer, err := f.directory.Create(ctx, aliceCandidate())
	require.NoError(t, err)

	adminToken, err := f.tokens.Generate(admin)
	require.NoError(t, err)

	viewerToken, err := f.tokens.Generate(viewer)
	require.NoError(t, err)

	t.Run("admin allowed", func(t *testing.T) {
		assert.Equal(t, fiber.StatusOK, f.request(t, "/admin", adminToken))
	})

	t.Run("viewer forbidden, not unauthorized", func(t *testing.T) {
		assert.Equal(t, fiber.StatusForbidden, f.request(t, "/admin", viewerToken))
	})

	t.Run("anonymous is unauthorized before the guard runs", func(t *testing.T) {
		assert.Equal(t, fiber.StatusUnauthorized, f.request(t, "/admin", ""))
	})
}
