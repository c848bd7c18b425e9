package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"sakeenah/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{
		DB: db,
	}
}

func (r *invitationRepository) GetByUID(ctx context.Context, uid string) (*domain.Invitation, error) {
	query := `
		SELECT uid, title, COALESCE(description, ''), groom_name, bride_name,
			COALESCE(parent_groom, ''), COALESCE(parent_bride, ''), wedding_date,
			COALESCE(time, ''), COALESCE(location, ''), COALESCE(address, ''),
			COALESCE(maps_url, ''), COALESCE(maps_embed, ''), COALESCE(og_image, ''),
			COALESCE(favicon, ''), agenda, audio, banks
		FROM invitations
		WHERE uid = $1
	`
	inv := &domain.Invitation{}
	var dateNull sql.NullTime
	var agenda, audio, banks []byte
	err := r.DB.QueryRowContext(ctx, query, uid).Scan(
		&inv.UID, &inv.Title, &inv.Description, &inv.GroomName, &inv.BrideName,
		&inv.ParentGroom, &inv.ParentBride, &dateNull,
		&inv.Time, &inv.Location, &inv.Address,
		&inv.MapsURL, &inv.MapsEmbed, &inv.OGImage,
		&inv.Favicon, &agenda, &audio, &banks,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if dateNull.Valid {
		inv.Date = dateNull.Time.Format("2006-01-02")
	}
	if err := unmarshalJSONColumn(agenda, &inv.Agenda); err != nil {
		return nil, fmt.Errorf("agenda: %w", err)
	}
	if len(audio) > 0 && string(audio) != "null" {
		inv.Audio = &domain.AudioSetting{}
		if err := json.Unmarshal(audio, inv.Audio); err != nil {
			return nil, fmt.Errorf("audio: %w", err)
		}
	}
	if err := unmarshalJSONColumn(banks, &inv.Banks); err != nil {
		return nil, fmt.Errorf("banks: %w", err)
	}
	if inv.Agenda == nil {
		inv.Agenda = []domain.AgendaItem{}
	}
	if inv.Banks == nil {
		inv.Banks = []domain.BankAccount{}
	}
	return inv, nil
}

func unmarshalJSONColumn(raw []byte, dest any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}
