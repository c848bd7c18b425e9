package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"sakeenah/internal/domain"
)

// UpsertInvitation inserts inv or overwrites the row with the same uid.
// An empty date is stored as NULL.
func UpsertInvitation(ctx context.Context, db *sql.DB, inv domain.Invitation) error {
	if inv.UID == "" {
		return fmt.Errorf("upsert invitation: %w: empty uid", domain.ErrInvalidInput)
	}
	agenda, err := json.Marshal(nonNil(inv.Agenda))
	if err != nil {
		return fmt.Errorf("marshal agenda: %w", err)
	}
	banks, err := json.Marshal(nonNil(inv.Banks))
	if err != nil {
		return fmt.Errorf("marshal banks: %w", err)
	}
	var audio []byte
	if inv.Audio != nil {
		if audio, err = json.Marshal(inv.Audio); err != nil {
			return fmt.Errorf("marshal audio: %w", err)
		}
	}
	var date sql.NullString
	if inv.Date != "" {
		date = sql.NullString{String: inv.Date, Valid: true}
	}

	query := `
		INSERT INTO invitations (uid, title, description, groom_name, bride_name,
			parent_groom, parent_bride, wedding_date, time, location, address,
			maps_url, maps_embed, og_image, favicon, agenda, audio, banks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (uid) DO UPDATE SET
			title = EXCLUDED.title, description = EXCLUDED.description,
			groom_name = EXCLUDED.groom_name, bride_name = EXCLUDED.bride_name,
			parent_groom = EXCLUDED.parent_groom, parent_bride = EXCLUDED.parent_bride,
			wedding_date = EXCLUDED.wedding_date, time = EXCLUDED.time,
			location = EXCLUDED.location, address = EXCLUDED.address,
			maps_url = EXCLUDED.maps_url, maps_embed = EXCLUDED.maps_embed,
			og_image = EXCLUDED.og_image, favicon = EXCLUDED.favicon,
			agenda = EXCLUDED.agenda, audio = EXCLUDED.audio, banks = EXCLUDED.banks
	`
	_, err = db.ExecContext(ctx, query,
		inv.UID, inv.Title, inv.Description, inv.GroomName, inv.BrideName,
		inv.ParentGroom, inv.ParentBride, date, inv.Time, inv.Location, inv.Address,
		inv.MapsURL, inv.MapsEmbed, inv.OGImage, inv.Favicon, agenda, audio, banks,
	)
	return err
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
