package server

import (
	"fmt"
	"strings"
	"time"

	"blogspot/internal/middleware"
	"blogspot/internal/models"
	"blogspot/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionTokenTTL = 24 * time.Hour

// Login handles POST /api/auth/login
// @Summary Admin login
// @Description Relay credentials to the identity provider and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Failure 401 {object} models.Envelope
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	if err := validation.Required(
		validation.Field{Name: "Email", Value: req.Email},
		validation.Field{Name: "Password", Value: req.Password},
	); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	session, user, err := s.provider.CreateSession(c.Context(),
		validation.NormalizeEmail(req.Email), req.Password)
	if err != nil {
		return models.RespondError(c, err)
	}

	token, err := s.generateToken(user.ID, session.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewUpstreamError("Failed to issue session token", err))
	}

	return models.RespondOK(c, fiber.Map{
		"token": token,
		"user":  user,
	}, "Login successful")
}

// Logout handles POST /api/auth/logout
// @Summary Admin logout
// @Description Revoke the current session token and the provider session
// @Tags auth
// @Produce json
// @Success 200 {object} models.Envelope
// @Router /auth/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	claims, ok := s.currentClaims(c)
	if !ok {
		// Logout with no usable token is still a successful logout.
		return models.RespondOK(c, nil, "Logged out")
	}

	// Blacklist the jti until the token would have expired anyway.
	if jti, _ := claims["jti"].(string); jti != "" && s.redis != nil {
		ttl := sessionTokenTTL
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			if remaining := time.Until(exp.Time); remaining > 0 {
				ttl = remaining
			}
		}
		s.redis.Set(c.Context(), "blacklist:"+jti, "1", ttl)
	}

	// Best effort: drop the provider-side session too.
	if sid, _ := claims["sid"].(string); sid != "" {
		if err := s.provider.DeleteSession(c.Context(), sid); err != nil {
			middleware.Logger.WarnContext(c.UserContext(),
				"failed to delete provider session", "error", err)
		}
	}

	return models.RespondOK(c, nil, "Logged out")
}

// Verify handles GET /api/auth/verify
// @Summary Verify session
// @Description Confirm the session token is valid and return the account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Envelope
// @Failure 401 {object} models.Envelope
// @Router /auth/verify [get]
func (s *Server) Verify(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	user, err := s.provider.GetUser(c.Context(), userID)
	if err != nil {
		return models.RespondError(c, err)
	}

	return models.RespondOK(c, user, "Token is valid")
}

// generateToken creates a JWT session token for the given provider user and
// session. The sid claim lets logout revoke the provider session.
func (s *Server) generateToken(userID, sessionID string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"sid": sessionID,
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": now.Add(sessionTokenTTL).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID so individual tokens can be revoked
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

// currentClaims parses the Authorization header without enforcing it.
func (s *Server) currentClaims(c *fiber.Ctx) (jwt.MapClaims, bool) {
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}
