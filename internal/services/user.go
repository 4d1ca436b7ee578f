package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eventease/internal/domain"
)

type userAdminService struct {
	userRepo domain.UserRepository
}

// NewUserAdminService creates the admin-only user management service.
func NewUserAdminService(userRepo domain.UserRepository) domain.UserAdminService {
	return &userAdminService{userRepo: userRepo}
}

func (s *userAdminService) requireAdmin(ctx context.Context, actorID string) error {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		return fmt.Errorf("get actor: %w", err)
	}
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

func (s *userAdminService) ListUsers(ctx context.Context, actorID string) ([]*domain.User, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userAdminService) ChangeRole(ctx context.Context, actorID, userID, role string) (*domain.User, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	role = strings.TrimSpace(strings.ToLower(role))
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: role must be one of attendee, organizer, admin", domain.ErrInvalidInput)
	}
	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update role: %w", err)
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userAdminService) DeleteUser(ctx context.Context, actorID, userID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if actorID == userID {
		return fmt.Errorf("%w: admins cannot delete themselves", domain.ErrInvalidInput)
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
