package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"eventease/internal/delivery/http/helpers"
	"eventease/internal/domain"
)

// fakeUserAdminService implements domain.UserAdminService.
type fakeUserAdminService struct {
	listResult []*domain.User
	listErr    error
	roleResult *domain.User
	roleErr    error
	deleteErr  error

	lastActorID string
	lastUserID  string
	lastRole    string
}

func (f *fakeUserAdminService) ListUsers(ctx context.Context, actorID string) ([]*domain.User, error) {
	f.lastActorID = actorID
	return f.listResult, f.listErr
}

func (f *fakeUserAdminService) ChangeRole(ctx context.Context, actorID, userID, role string) (*domain.User, error) {
	f.lastActorID, f.lastUserID, f.lastRole = actorID, userID, role
	return f.roleResult, f.roleErr
}

func (f *fakeUserAdminService) DeleteUser(ctx context.Context, actorID, userID string) error {
	f.lastActorID, f.lastUserID = actorID, userID
	return f.deleteErr
}

func TestAdminController_ListUsers(t *testing.T) {
	t.Run("admin lists users", func(t *testing.T) {
		svc := &fakeUserAdminService{listResult: []*domain.User{{ID: testUserID, Name: "Alice"}}}
		c := NewAdminController(testLogger, svc, &fakeEventService{})

		req := authedRequest(http.MethodGet, "/admin/users", testUserID)
		rr := httptest.NewRecorder()
		c.ListUsers(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var users []*domain.User
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&users))
		require.Len(t, users, 1)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc := &fakeUserAdminService{listErr: domain.ErrForbidden}
		c := NewAdminController(testLogger, svc, &fakeEventService{})

		req := authedRequest(http.MethodGet, "/admin/users", testUserID)
		rr := httptest.NewRecorder()
		c.ListUsers(rr, req)

		require.Equal(t, http.StatusForbidden, rr.Code)
		require.Equal(t, helpers.TypeForbidden, decodeAPIError(t, rr).Type)
	})
}

func TestAdminController_ChangeRole(t *testing.T) {
	t.Run("promotes to organizer", func(t *testing.T) {
		svc := &fakeUserAdminService{roleResult: &domain.User{ID: testUserID, Role: domain.RoleOrganizer}}
		c := NewAdminController(testLogger, svc, &fakeEventService{})

		req := postJSON("/admin/users/"+testUserID+"/role", ChangeRoleRequest{Role: "organizer"})
		req.Method = http.MethodPut
		req = req.WithContext(authedRequest(http.MethodPut, "/admin/users/"+testUserID+"/role", testUserID).Context())
		req.SetPathValue("userID", testUserID)
		rr := httptest.NewRecorder()
		c.ChangeRole(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "organizer", svc.lastRole)
	})

	t.Run("unknown role rejected before the service", func(t *testing.T) {
		svc := &fakeUserAdminService{}
		c := NewAdminController(testLogger, svc, &fakeEventService{})

		req := postJSON("/admin/users/"+testUserID+"/role", ChangeRoleRequest{Role: "superuser"})
		req.Method = http.MethodPut
		req = req.WithContext(authedRequest(http.MethodPut, "/admin/users/"+testUserID+"/role", testUserID).Context())
		req.SetPathValue("userID", testUserID)
		rr := httptest.NewRecorder()
		c.ChangeRole(rr, req)

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		require.Empty(t, svc.lastRole)
	})
}

func TestAdminController_DeleteEvent(t *testing.T) {
	t.Run("admin deletes any event", func(t *testing.T) {
		events := &fakeEventService{}
		c := NewAdminController(testLogger, &fakeUserAdminService{}, events)

		req := authedRequest(http.MethodDelete, "/admin/events/"+testEventID, testUserID)
		req.SetPathValue("eventID", testEventID)
		rr := httptest.NewRecorder()
		c.DeleteEvent(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
		require.Equal(t, testUserID, events.lastActorID)
		require.Equal(t, testEventID, events.lastEventID)
	})

	t.Run("unknown event", func(t *testing.T) {
		events := &fakeEventService{deleteErr: domain.ErrNotFound}
		c := NewAdminController(testLogger, &fakeUserAdminService{}, events)

		req := authedRequest(http.MethodDelete, "/admin/events/"+testEventID, testUserID)
		req.SetPathValue("eventID", testEventID)
		rr := httptest.NewRecorder()
		c.DeleteEvent(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		require.Equal(t, helpers.TypeNotFound, decodeAPIError(t, rr).Type)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		events := &fakeEventService{deleteErr: domain.ErrForbidden}
		c := NewAdminController(testLogger, &fakeUserAdminService{}, events)

		req := authedRequest(http.MethodDelete, "/admin/events/"+testEventID, testUserID)
		req.SetPathValue("eventID", testEventID)
		rr := httptest.NewRecorder()
		c.DeleteEvent(rr, req)

		require.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("non-uuid event id", func(t *testing.T) {
		events := &fakeEventService{}
		c := NewAdminController(testLogger, &fakeUserAdminService{}, events)

		req := authedRequest(http.MethodDelete, "/admin/events/oops", testUserID)
		req.SetPathValue("eventID", "oops")
		rr := httptest.NewRecorder()
		c.DeleteEvent(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		require.Empty(t, events.lastEventID, "service is not called for malformed ids")
	})
}
