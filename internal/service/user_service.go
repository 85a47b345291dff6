package service

import (
	"context"
	"time"

	"blogspot/internal/identity"
	"blogspot/internal/models"
	"blogspot/internal/validation"
)

// Accounts created within this window count as recent in the stats.
const recentUserWindow = 7 * 24 * time.Hour

var userStatuses = []string{identity.UserStatusActive, identity.UserStatusBlocked}

// UserService proxies every account operation to the identity provider.
type UserService struct {
	provider identity.Provider
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

func NewUserService(provider identity.Provider) *UserService {
	return &UserService{provider: provider}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]*identity.User, int64, error) {
	return s.provider.ListUsers(ctx, limit, offset)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*identity.User, error) {
	return s.provider.GetUser(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*identity.User, error) {
	if in.Name == nil && in.Email == nil {
		return nil, models.NewValidationError("Nothing to update")
	}
	if in.Name != nil {
		if err := validation.Required(validation.Field{Name: "Name", Value: *in.Name}); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
	}
	if in.Email != nil {
		if err := validation.ValidateEmail(*in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		normalized := validation.NormalizeEmail(*in.Email)
		in.Email = &normalized
	}
	return s.provider.UpdateUser(ctx, id, identity.UpdateUserInput{
		Name:  in.Name,
		Email: in.Email,
	})
}

// UpdateUserStatus blocks or reinstates an account.
func (s *UserService) UpdateUserStatus(ctx context.Context, id, status string) (*identity.User, error) {
	if err := validation.Required(validation.Field{Name: "Status", Value: status}); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.OneOf("Status", status, userStatuses); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.provider.UpdateUserStatus(ctx, id, status == identity.UserStatusBlocked)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.provider.DeleteUser(ctx, id)
}

// UserStats derives the dashboard numbers from a single provider listing;
// the provider has no aggregation endpoint of its own.
func (s *UserService) UserStats(ctx context.Context) (*identity.UserStats, error) {
	users, total, err := s.provider.ListUsers(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	stats := &identity.UserStats{Total: total}
	cutoff := time.Now().Add(-recentUserWindow)
	for _, u := range users {
		if created, err := time.Parse(time.RFC3339, u.CreatedAt); err == nil && created.After(cutoff) {
			stats.Recent++
		}
		if u.Status == identity.UserStatusActive {
			stats.Active++
		}
		if u.EmailVerified {
			stats.Verified++
		}
	}
	return stats, nil
}
