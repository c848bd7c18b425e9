package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sakeenah/internal/domain"
	"sakeenah/internal/namecodec"
)

type invitationService struct {
	repo domain.InvitationRepository
}

// NewInvitationService creates an InvitationService over repo.
func NewInvitationService(repo domain.InvitationRepository) domain.InvitationService {
	return &invitationService{repo: repo}
}

func (s *invitationService) GetInvitation(ctx context.Context, uid string) (*domain.Invitation, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, domain.ErrInvalidInput
	}
	inv, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return inv, nil
}

func (s *invitationService) InvitationLink(baseURL, uid, guestName string) string {
	return fmt.Sprintf("%s/%s?guest=%s", strings.TrimSuffix(baseURL, "/"), uid, namecodec.Encode(guestName))
}

func (s *invitationService) BulkInvitationLinks(baseURL, uid string, guestNames []string) []domain.InvitationLink {
	links := make([]domain.InvitationLink, 0, len(guestNames))
	for _, name := range guestNames {
		links = append(links, domain.InvitationLink{
			Name: name,
			Link: s.InvitationLink(baseURL, uid, name),
		})
	}
	return links
}
