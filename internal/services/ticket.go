package services

import (
	"context"
	"errors"
	"fmt"

	"eventease/internal/domain"
)

type ticketService struct {
	ticketRepo domain.TicketRepository
	artifacts  domain.ArtifactStore
}

// NewTicketService creates a TicketService over the ticket store and the
// artifact store.
func NewTicketService(ticketRepo domain.TicketRepository, artifacts domain.ArtifactStore) domain.TicketService {
	return &ticketService{ticketRepo: ticketRepo, artifacts: artifacts}
}

func (s *ticketService) GetByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return ticket, nil
}

// ArtifactPath returns the filesystem path of the QR artifact for code.
// The ticket row is checked first so an unknown code never probes the store.
func (s *ticketService) ArtifactPath(ctx context.Context, code string) (string, error) {
	if _, err := s.ticketRepo.GetByCode(ctx, code); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get ticket: %w", err)
	}
	path, err := s.artifacts.Path(code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("artifact path: %w", err)
	}
	return path, nil
}
