package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogspot/internal/identity"
	"blogspot/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesToken(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	s.provider = &handlerProviderStub{
		createSessionFn: func(_ context.Context, email, password string) (*identity.Session, *identity.User, error) {
			assert.Equal(t, "admin@example.com", email)
			assert.Equal(t, "hunter22", password)
			return &identity.Session{ID: "sess-1", UserID: "user-1"},
				&identity.User{ID: "user-1", Email: email, Status: identity.UserStatusActive}, nil
		},
	}

	app := newTestApp()
	app.Post("/api/auth/login", s.Login)

	body := []byte(`{"email":"Admin@Example.COM","password":"hunter22"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var data struct {
		Token string         `json:"token"`
		User  *identity.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)
	require.NotNil(t, data.User)
	assert.Equal(t, "user-1", data.User.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	s.provider = &handlerProviderStub{
		createSessionFn: func(context.Context, string, string) (*identity.Session, *identity.User, error) {
			return nil, nil, models.NewUnauthorizedError("Invalid credentials")
		},
	}

	app := newTestApp()
	app.Post("/api/auth/login", s.Login)

	body := []byte(`{"email":"admin@example.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid credentials", env.Message)
}

func TestLoginMissingFields(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	app := newTestApp()
	app.Post("/api/auth/login", s.Login)

	body := []byte(`{"email":"admin@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Password is required", env.Message)
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	s, _ := newTestServer(t)
	s.redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	app := newTestApp()
	app.Get("/api/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return models.RespondOK(c, c.Locals("userID"), "ok")
	})

	token, err := s.generateToken("user-1", "sess-1")
	require.NoError(t, err)

	t.Run("MissingToken", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/protected", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "Authorization required", env.Message)
	})

	t.Run("MalformedToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "Invalid or expired token", env.Message)
	})

	t.Run("ValidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		var sub string
		require.NoError(t, json.Unmarshal(env.Data, &sub))
		assert.Equal(t, "user-1", sub)
	})

	t.Run("RevokedAfterLogout", func(t *testing.T) {
		deleted := ""
		s.provider = &handlerProviderStub{
			deleteSessionFn: func(_ context.Context, sessionID string) error {
				deleted = sessionID
				return nil
			},
		}
		app.Post("/api/auth/logout", s.Logout)

		logoutReq := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		logoutReq.Header.Set("Authorization", "Bearer "+token)
		logoutResp, err := app.Test(logoutReq)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, logoutResp.StatusCode)
		_ = logoutResp.Body.Close()
		assert.Equal(t, "sess-1", deleted)

		req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "Token has been revoked", env.Message)
	})
}

func TestVerifyReturnsAccount(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	s.provider = &handlerProviderStub{
		getUserFn: func(_ context.Context, id string) (*identity.User, error) {
			assert.Equal(t, "user-7", id)
			return &identity.User{ID: id, Email: "admin@example.com"}, nil
		},
	}

	app := newTestApp()
	app.Get("/api/auth/verify", func(c *fiber.Ctx) error {
		c.Locals("userID", "user-7")
		return s.Verify(c)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var user identity.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "user-7", user.ID)
	assert.Equal(t, "Token is valid", env.Message)
}
