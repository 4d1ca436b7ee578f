package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"eventease/internal/domain"
)

func TestTicketService_ArtifactPath(t *testing.T) {
	ctx := context.Background()
	tickets := &mockTicketRepo{byCode: map[string]*domain.Ticket{
		"code-1": {ID: "ticket-1", Code: "code-1", RegistrationID: "reg-1"},
	}}

	t.Run("resolves the artifact for a known ticket", func(t *testing.T) {
		artifacts := &mockArtifactStore{written: map[string][]byte{"code-1": []byte("png")}}
		svc := NewTicketService(tickets, artifacts)

		path, err := svc.ArtifactPath(ctx, "code-1")
		require.NoError(t, err)
		require.Equal(t, "/artifacts/code-1.png", path)
	})

	t.Run("unknown ticket code", func(t *testing.T) {
		svc := NewTicketService(tickets, &mockArtifactStore{})

		_, err := svc.ArtifactPath(ctx, "no-such-code")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ticket without artifact", func(t *testing.T) {
		svc := NewTicketService(tickets, &mockArtifactStore{})

		_, err := svc.ArtifactPath(ctx, "code-1")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
