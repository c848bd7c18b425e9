// Package static serves invitations compiled into the binary or loaded from a
// JSON file, for deployments that run without a database.
package static

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"sakeenah/internal/domain"
)

//go:embed default_invitation.json
var defaultInvitation []byte

type invitationRepository struct {
	invitation domain.Invitation
}

// NewInvitationRepository returns a repository holding a single invitation.
// When inv.UID is empty every uid resolves to it, otherwise only inv.UID does.
func NewInvitationRepository(inv domain.Invitation) domain.InvitationRepository {
	return &invitationRepository{invitation: inv}
}

// DefaultInvitation returns the built-in invitation bound to uid.
func DefaultInvitation(uid string) (domain.Invitation, error) {
	return decode(defaultInvitation, uid)
}

// LoadInvitation reads an invitation from a JSON file and binds it to uid.
func LoadInvitation(path, uid string) (domain.Invitation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("read invitation file: %w", err)
	}
	return decode(raw, uid)
}

func decode(raw []byte, uid string) (domain.Invitation, error) {
	var inv domain.Invitation
	if err := json.Unmarshal(raw, &inv); err != nil {
		return domain.Invitation{}, fmt.Errorf("decode invitation: %w", err)
	}
	if uid != "" {
		inv.UID = uid
	}
	return inv, nil
}

func (r *invitationRepository) GetByUID(_ context.Context, uid string) (*domain.Invitation, error) {
	if r.invitation.UID != "" && r.invitation.UID != uid {
		return nil, domain.ErrNotFound
	}
	inv := r.invitation
	inv.UID = uid
	inv.Agenda = slices.Clone(r.invitation.Agenda)
	inv.Banks = slices.Clone(r.invitation.Banks)
	if r.invitation.Audio != nil {
		audio := *r.invitation.Audio
		inv.Audio = &audio
	}
	if inv.Agenda == nil {
		inv.Agenda = []domain.AgendaItem{}
	}
	if inv.Banks == nil {
		inv.Banks = []domain.BankAccount{}
	}
	return &inv, nil
}
