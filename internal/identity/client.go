package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"blogspot/internal/models"
	"blogspot/internal/observability"
)

// Client is an HTTP client for the identity provider's server API.
type Client struct {
	baseURL    string
	projectID  string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient swaps the underlying HTTP client. Intended for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a provider client. projectID and apiKey are sent on
// every request as the provider's server-side credentials.
func NewClient(baseURL, projectID, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:   baseURL,
		projectID: projectID,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Provider = (*Client)(nil)

// wireUser is the provider's representation; status is a boolean where
// true means the account is allowed to sign in.
type wireUser struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Status            bool   `json:"status"`
	EmailVerification bool   `json:"emailVerification"`
	CreatedAt         string `json:"createdAt"`
}

func (w wireUser) toUser() *User {
	status := UserStatusActive
	if !w.Status {
		status = UserStatusBlocked
	}
	return &User{
		ID:            w.ID,
		Name:          w.Name,
		Email:         w.Email,
		Status:        status,
		EmailVerified: w.EmailVerification,
		CreatedAt:     w.CreatedAt,
	}
}

func (c *Client) CreateSession(ctx context.Context, email, password string) (*Session, *User, error) {
	resp, err := c.post(ctx, "/account/sessions", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, nil, c.track("create_session", models.NewUpstreamError("Identity provider unreachable", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, nil, c.track("create_session", models.NewUnauthorizedError("Invalid credentials"))
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, nil, c.track("create_session", c.parseError(resp))
	}

	var result struct {
		Session Session  `json:"session"`
		User    wireUser `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, nil, c.track("create_session", models.NewUpstreamError("Malformed identity provider response", err))
	}
	c.track("create_session", nil)
	return &result.Session, result.User.toUser(), nil
}

func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	resp, err := c.delete(ctx, "/account/sessions/"+url.PathEscape(sessionID))
	if err != nil {
		return c.track("delete_session", models.NewUpstreamError("Identity provider unreachable", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return c.track("delete_session", c.parseError(resp))
	}
	return c.track("delete_session", nil)
}

func (c *Client) ListUsers(ctx context.Context, limit, offset int) ([]*User, int64, error) {
	path := "/users"
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := c.get(ctx, path)
	if err != nil {
		return nil, 0, c.track("list_users", models.NewUpstreamError("Identity provider unreachable", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, c.track("list_users", c.parseError(resp))
	}

	var result struct {
		Users []wireUser `json:"users"`
		Total int64      `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, 0, c.track("list_users", models.NewUpstreamError("Malformed identity provider response", err))
	}

	users := make([]*User, 0, len(result.Users))
	for _, w := range result.Users {
		users = append(users, w.toUser())
	}
	c.track("list_users", nil)
	return users, result.Total, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	resp, err := c.get(ctx, "/users/"+url.PathEscape(id))
	if err != nil {
		return nil, c.track("get_user", models.NewUpstreamError("Identity provider unreachable", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, c.track("get_user", models.NewNotFoundError("User", id))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.track("get_user", c.parseError(resp))
	}

	var w wireUser
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, c.track("get_user", models.NewUpstreamError("Malformed identity provider response", err))
	}
	c.track("get_user", nil)
	return w.toUser(), nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*User, error) {
	body := map[string]string{}
	if in.Name != nil {
		body["name"] = *in.Name
	}
	if in.Email != nil {
		body["email"] = *in.Email
	}

	resp, err := c.patch(ctx, "/users/"+url.PathEscape(id), body)
	if err != nil {
		return nil, c.track("update_user", models.NewUpstreamError("Identity provider unreachable", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, c.track("update_user", models.NewNotFoundError("User", id))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.track("update_user", c.parseError(resp))
	}

	var w wireUser
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, c.track("update_user", models.NewUpstreamError("Malformed identity provider response", err))
	}
	c.track("update_user", nil)
	return w.toUser(), nil
}

func (c *Client) UpdateUserStatus(ctx context.Context, id string, blocked bool) (*User, error) {
	resp, err := c.patch(ctx, "/users/"+url.PathEscape(id)+"/status", map[string]bool{
		"blocked": blocked,
	})
	if err != nil {
		return nil, c.track("update_user_status", models.NewUpstreamError("Identity provider unreachable", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, c.track("update_user_status", models.NewNotFoundError("User", id))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.track("update_user_status", c.parseError(resp))
	}

	var w wireUser
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, c.track("update_user_status", models.NewUpstreamError("Malformed identity provider response", err))
	}
	c.track("update_user_status", nil)
	return w.toUser(), nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	resp, err := c.delete(ctx, "/users/"+url.PathEscape(id))
	if err != nil {
		return c.track("delete_user", models.NewUpstreamError("Identity provider unreachable", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return c.track("delete_user", models.NewNotFoundError("User", id))
	}
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return c.track("delete_user", c.parseError(resp))
	}
	return c.track("delete_user", nil)
}

// Health checks the provider's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.get(ctx, "/health")
	if err != nil {
		return models.NewUpstreamError("Identity provider unreachable", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return models.NewUpstreamError(fmt.Sprintf("Identity provider unhealthy: status %d", resp.StatusCode), nil)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	return c.send(ctx, http.MethodPost, path, body)
}

func (c *Client) patch(ctx context.Context, path string, body any) (*http.Response, error) {
	return c.send(ctx, http.MethodPatch, path, body)
}

func (c *Client) delete(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Project-ID", c.projectID)
	req.Header.Set("X-API-Key", c.apiKey)
	return c.httpClient.Do(req)
}

func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var errResp struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
		return models.NewUpstreamError(errResp.Message, nil)
	}
	return models.NewUpstreamError(fmt.Sprintf("Identity provider request failed: status %d", resp.StatusCode), nil)
}

// track records the request outcome and passes err through.
func (c *Client) track(operation string, err error) error {
	result := "success"
	if err != nil {
		result = "error"
	}
	observability.IdentityRequests.WithLabelValues(operation, result).Inc()
	return err
}
