package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"blogspot/internal/config"
	"blogspot/internal/database"
	"blogspot/internal/identity"
	"blogspot/internal/repository"
	"blogspot/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// newTestServer wires a Server against in-memory sqlite without metrics,
// redis, or route middleware. Tests register only the routes they exercise.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	db := setupHandlerTestDB(t)

	s := &Server{
		config: &config.Config{JWTSecret: "test-secret-at-least-32-characters-long"},
		db:     db,
	}
	s.blogService = service.NewBlogService(repository.NewBlogRepository(db))
	s.commentService = service.NewCommentService(repository.NewCommentRepository(db))
	s.ticketService = service.NewTicketService(repository.NewTicketRepository(db))
	s.applicationService = service.NewApplicationService(repository.NewApplicationRepository(db))
	s.categoryService = service.NewCategoryService(repository.NewCategoryRepository(db))
	s.userService = service.NewUserService(noopHandlerProvider())

	return s, db
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelopeBody {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var env envelopeBody
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, raw)
	}
	return env
}

// envelopeBody mirrors models.Envelope with Data kept raw so each test can
// decode it into the shape it expects.
type envelopeBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Total   *int64          `json:"total"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type handlerProviderStub struct {
	createSessionFn    func(ctx context.Context, email, password string) (*identity.Session, *identity.User, error)
	deleteSessionFn    func(ctx context.Context, sessionID string) error
	listUsersFn        func(ctx context.Context, limit, offset int) ([]*identity.User, int64, error)
	getUserFn          func(ctx context.Context, id string) (*identity.User, error)
	updateUserFn       func(ctx context.Context, id string, in identity.UpdateUserInput) (*identity.User, error)
	updateUserStatusFn func(ctx context.Context, id string, blocked bool) (*identity.User, error)
	deleteUserFn       func(ctx context.Context, id string) error
	healthFn           func(ctx context.Context) error
}

func (p *handlerProviderStub) CreateSession(ctx context.Context, email, password string) (*identity.Session, *identity.User, error) {
	return p.createSessionFn(ctx, email, password)
}

func (p *handlerProviderStub) DeleteSession(ctx context.Context, sessionID string) error {
	return p.deleteSessionFn(ctx, sessionID)
}

func (p *handlerProviderStub) ListUsers(ctx context.Context, limit, offset int) ([]*identity.User, int64, error) {
	return p.listUsersFn(ctx, limit, offset)
}

func (p *handlerProviderStub) GetUser(ctx context.Context, id string) (*identity.User, error) {
	return p.getUserFn(ctx, id)
}

func (p *handlerProviderStub) UpdateUser(ctx context.Context, id string, in identity.UpdateUserInput) (*identity.User, error) {
	return p.updateUserFn(ctx, id, in)
}

func (p *handlerProviderStub) UpdateUserStatus(ctx context.Context, id string, blocked bool) (*identity.User, error) {
	return p.updateUserStatusFn(ctx, id, blocked)
}

func (p *handlerProviderStub) DeleteUser(ctx context.Context, id string) error {
	return p.deleteUserFn(ctx, id)
}

func (p *handlerProviderStub) Health(ctx context.Context) error {
	return p.healthFn(ctx)
}

func noopHandlerProvider() *handlerProviderStub {
	return &handlerProviderStub{
		createSessionFn: func(context.Context, string, string) (*identity.Session, *identity.User, error) {
			return &identity.Session{}, &identity.User{}, nil
		},
		deleteSessionFn: func(context.Context, string) error { return nil },
		listUsersFn: func(context.Context, int, int) ([]*identity.User, int64, error) {
			return nil, 0, nil
		},
		getUserFn:    func(context.Context, string) (*identity.User, error) { return &identity.User{}, nil },
		updateUserFn: func(context.Context, string, identity.UpdateUserInput) (*identity.User, error) { return &identity.User{}, nil },
		updateUserStatusFn: func(context.Context, string, bool) (*identity.User, error) {
			return &identity.User{}, nil
		},
		deleteUserFn: func(context.Context, string) error { return nil },
		healthFn:     func(context.Context) error { return nil },
	}
}

var _ identity.Provider = (*handlerProviderStub)(nil)

func newTestApp() *fiber.App {
	return fiber.New()
}
