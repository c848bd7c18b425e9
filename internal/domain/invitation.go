package domain

import "context"

// Invitation is the personalised configuration of one wedding invitation.
// swagger:model Invitation
type Invitation struct {
	UID         string        `json:"uid"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	GroomName   string        `json:"groom_name"`
	BrideName   string        `json:"bride_name"`
	ParentGroom string        `json:"parent_groom"`
	ParentBride string        `json:"parent_bride"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Location    string        `json:"location"`
	Address     string        `json:"address"`
	MapsURL     string        `json:"maps_url"`
	MapsEmbed   string        `json:"maps_embed"`
	OGImage     string        `json:"og_image"`
	Favicon     string        `json:"favicon"`
	Agenda      []AgendaItem  `json:"agenda"`
	Audio       *AudioSetting `json:"audio,omitempty"`
	Banks       []BankAccount `json:"banks"`
}

// AgendaItem is one entry of the event schedule.
type AgendaItem struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location"`
	Address   string `json:"address"`
}

// AudioSetting describes the background music of the invitation page.
type AudioSetting struct {
	Src      string `json:"src"`
	Title    string `json:"title"`
	Autoplay bool   `json:"autoplay"`
	Loop     bool   `json:"loop"`
}

// BankAccount is a gift account shown on the invitation.
type BankAccount struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

// InvitationRepository defines read access to invitations.
type InvitationRepository interface {
	GetByUID(ctx context.Context, uid string) (*Invitation, error)
}

// InvitationService defines invitation lookups and personalised link generation.
type InvitationService interface {
	GetInvitation(ctx context.Context, uid string) (*Invitation, error)
	// InvitationLink returns baseURL/uid?guest=<encoded name>.
	InvitationLink(baseURL, uid, guestName string) string
	BulkInvitationLinks(baseURL, uid string, guestNames []string) []InvitationLink
}

// InvitationLink pairs a guest name with their personalised URL.
type InvitationLink struct {
	Name string `json:"name"`
	Link string `json:"link"`
}
