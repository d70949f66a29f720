package accessgrid

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Wire field names are snake_case; the json tags below are the canonical
// mapping. Request structs are serialized in field declaration order, which
// fixes the byte layout of the signed payload.

// Device is a phone or watch a card is installed on.
type Device struct {
	ID         string `json:"id"`
	Platform   string `json:"platform"`
	DeviceType string `json:"device_type"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// ProvisionCardRequest issues a card from a template, or a unified access
// pass when CardTemplateID names a template pair.
type ProvisionCardRequest struct {
	CardTemplateID string `json:"card_template_id,omitempty"`
	EmployeeID     string `json:"employee_id,omitempty"`
	TagID          string `json:"tag_id,omitempty"`
	FullName       string `json:"full_name,omitempty"`
	Email          string `json:"email,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	Classification string `json:"classification,omitempty"`
	StartDate      string `json:"start_date,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	// EmployeePhoto is a base64 encoded image or an image URL.
	EmployeePhoto string `json:"employee_photo,omitempty"`
}

// Validate performs the client-side checks the API would otherwise reject.
// Provision does not call it.
func (r ProvisionCardRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CardTemplateID, validation.Required),
		validation.Field(&r.Email, is.EmailFormat),
		validation.Field(&r.StartDate, validation.Date(time.RFC3339)),
		validation.Field(&r.ExpirationDate, validation.Date(time.RFC3339)),
	)
}

// UpdateCardRequest changes the holder details of an issued card.
type UpdateCardRequest struct {
	CardID         string `json:"card_id"`
	EmployeeID     string `json:"employee_id,omitempty"`
	FullName       string `json:"full_name,omitempty"`
	Classification string `json:"classification,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	EmployeePhoto  string `json:"employee_photo,omitempty"`
}

func (r UpdateCardRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CardID, validation.Required),
		validation.Field(&r.ExpirationDate, validation.Date(time.RFC3339)),
	)
}

// Card is an issued credential.
type Card struct {
	ID               string `json:"id"`
	State            string `json:"state,omitempty"`
	InstallURL       string `json:"install_url,omitempty"`
	DirectInstallURL string `json:"direct_install_url,omitempty"`
	FullName         string `json:"full_name,omitempty"`
	ExpirationDate   string `json:"expiration_date,omitempty"`
	CardTemplateID   string `json:"card_template_id,omitempty"`
	CardNumber       string `json:"card_number,omitempty"`
	SiteCode         string `json:"site_code,omitempty"`
	FileData         string `json:"file_data,omitempty"`

	// Details is whatever the API put there; it has no fixed schema.
	Details any `json:"details,omitempty"`

	Devices  []Device       `json:"devices,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// UnifiedAccessPass groups the platform-specific cards issued together from
// a template pair.
type UnifiedAccessPass struct {
	ID         string         `json:"id"`
	State      string         `json:"state,omitempty"`
	Status     string         `json:"status,omitempty"`
	InstallURL string         `json:"install_url,omitempty"`
	Details    []Card         `json:"details"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// ListCardsFilters narrows AccessCards.List. Empty fields are not sent.
type ListCardsFilters struct {
	TemplateID string `json:"template_id,omitempty"`
	State      string `json:"state,omitempty"`
}

// TemplateDesign holds the visual configuration of a template.
type TemplateDesign struct {
	BackgroundColor     string `json:"background_color,omitempty"`
	LabelColor          string `json:"label_color,omitempty"`
	LabelSecondaryColor string `json:"label_secondary_color,omitempty"`
	BackgroundImage     string `json:"background_image,omitempty"`
	LogoImage           string `json:"logo_image,omitempty"`
	IconImage           string `json:"icon_image,omitempty"`
}

// SupportInfo holds the support contacts shown on a pass.
type SupportInfo struct {
	SupportURL            string `json:"support_url,omitempty"`
	SupportPhoneNumber    string `json:"support_phone_number,omitempty"`
	SupportEmail          string `json:"support_email,omitempty"`
	PrivacyPolicyURL      string `json:"privacy_policy_url,omitempty"`
	TermsAndConditionsURL string `json:"terms_and_conditions_url,omitempty"`
}

// CreateTemplateRequest defines a new card template. The flag and counts are
// always sent, even when zero.
type CreateTemplateRequest struct {
	Name                   string          `json:"name,omitempty"`
	Platform               string          `json:"platform,omitempty"`
	UseCase                string          `json:"use_case,omitempty"`
	Protocol               string          `json:"protocol,omitempty"`
	AllowOnMultipleDevices bool            `json:"allow_on_multiple_devices"`
	WatchCount             int             `json:"watch_count"`
	IphoneCount            int             `json:"iphone_count"`
	Design                 *TemplateDesign `json:"design,omitempty"`
	SupportInfo            *SupportInfo    `json:"support_info,omitempty"`
}

func (r CreateTemplateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Platform, validation.Required),
		validation.Field(&r.WatchCount, validation.Min(0)),
		validation.Field(&r.IphoneCount, validation.Min(0)),
		validation.Field(&r.SupportInfo),
	)
}

// UpdateTemplateRequest changes an existing template.
type UpdateTemplateRequest struct {
	CardTemplateID         string       `json:"card_template_id"`
	Name                   string       `json:"name,omitempty"`
	AllowOnMultipleDevices bool         `json:"allow_on_multiple_devices"`
	WatchCount             int          `json:"watch_count"`
	IphoneCount            int          `json:"iphone_count"`
	SupportInfo            *SupportInfo `json:"support_info,omitempty"`
}

func (r UpdateTemplateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CardTemplateID, validation.Required),
		validation.Field(&r.WatchCount, validation.Min(0)),
		validation.Field(&r.IphoneCount, validation.Min(0)),
		validation.Field(&r.SupportInfo),
	)
}

// Validate checks that any support contacts given are well formed.
func (s SupportInfo) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.SupportURL, is.URL),
		validation.Field(&s.SupportEmail, is.EmailFormat),
		validation.Field(&s.PrivacyPolicyURL, is.URL),
		validation.Field(&s.TermsAndConditionsURL, is.URL),
	)
}

// Template is a card template as returned by the console API.
type Template struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Platform               string `json:"platform"`
	UseCase                string `json:"use_case"`
	Protocol               string `json:"protocol"`
	AllowOnMultipleDevices bool   `json:"allow_on_multiple_devices"`
	WatchCount             int    `json:"watch_count"`
	IphoneCount            int    `json:"iphone_count"`
	IssuedKeysCount        int    `json:"issued_keys_count"`
	ActiveKeysCount        int    `json:"active_keys_count"`
	CreatedAt              string `json:"created_at,omitempty"`
	UpdatedAt              string `json:"updated_at,omitempty"`
	LastPublishedAt        string `json:"last_published_at,omitempty"`
}

// EventLogFilters narrows Console.EventLog. Zero values are not sent.
type EventLogFilters struct {
	Device    string
	StartDate time.Time
	EndDate   time.Time
	EventType string
}

func (f EventLogFilters) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.EndDate, validation.When(!f.StartDate.IsZero() && !f.EndDate.IsZero(),
			validation.Min(f.StartDate).Error("must not be before start date"))),
	)
}

// Event is a single audit log entry.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	Metadata  any       `json:"metadata,omitempty"`
}
