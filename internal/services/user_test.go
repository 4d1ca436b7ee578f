package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"eventease/internal/domain"
)

func adminFixtureUsers() *mockUserRepo {
	return &mockUserRepo{
		users: map[string]*domain.User{
			"admin-1":    {ID: "admin-1", Name: "Root", Role: domain.RoleAdmin},
			"attendee-1": {ID: "attendee-1", Name: "Alice", Role: domain.RoleAttendee},
		},
		listResult: []*domain.User{
			{ID: "admin-1"}, {ID: "attendee-1"},
		},
	}
}

func TestUserAdminService_ListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("admin lists everyone", func(t *testing.T) {
		svc := NewUserAdminService(adminFixtureUsers())
		users, err := svc.ListUsers(ctx, "admin-1")
		require.NoError(t, err)
		require.Len(t, users, 2)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc := NewUserAdminService(adminFixtureUsers())
		_, err := svc.ListUsers(ctx, "attendee-1")
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown actor forbidden", func(t *testing.T) {
		svc := NewUserAdminService(adminFixtureUsers())
		_, err := svc.ListUsers(ctx, "ghost")
		require.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestUserAdminService_ChangeRole(t *testing.T) {
	ctx := context.Background()

	t.Run("admin promotes attendee to organizer", func(t *testing.T) {
		repo := adminFixtureUsers()
		svc := NewUserAdminService(repo)

		user, err := svc.ChangeRole(ctx, "admin-1", "attendee-1", "organizer")
		require.NoError(t, err)
		require.Equal(t, domain.RoleOrganizer, user.Role)
	})

	t.Run("invalid role", func(t *testing.T) {
		svc := NewUserAdminService(adminFixtureUsers())
		_, err := svc.ChangeRole(ctx, "admin-1", "attendee-1", "superuser")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc := NewUserAdminService(adminFixtureUsers())
		_, err := svc.ChangeRole(ctx, "attendee-1", "admin-1", "attendee")
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown target", func(t *testing.T) {
		svc := NewUserAdminService(adminFixtureUsers())
		_, err := svc.ChangeRole(ctx, "admin-1", "ghost", "organizer")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserAdminService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("admin deletes a user", func(t *testing.T) {
		repo := adminFixtureUsers()
		svc := NewUserAdminService(repo)

		require.NoError(t, svc.DeleteUser(ctx, "admin-1", "attendee-1"))
		require.Equal(t, "attendee-1", repo.deletedUserID)
	})

	t.Run("admins cannot delete themselves", func(t *testing.T) {
		repo := adminFixtureUsers()
		svc := NewUserAdminService(repo)

		err := svc.DeleteUser(ctx, "admin-1", "admin-1")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		require.Empty(t, repo.deletedUserID)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc := NewUserAdminService(adminFixtureUsers())
		err := svc.DeleteUser(ctx, "attendee-1", "admin-1")
		require.ErrorIs(t, err, domain.ErrForbidden)
	})
}
