package domain

import (
	"context"
	"net/url"
)

// LeadSubmission represents a lead capture form submission
type LeadSubmission struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email"`
	Zip         string `json:"zip"`
	State       string `json:"state"`
	TrustedForm string `json:"trustedForm"`
	JornayaID   string `json:"jornayaId"`
	IPAddress   string `json:"ipAddress"`
}

// CampaignConfig identifies the buyer campaign every lead is pinged to.
// It is built once at startup and never mutated.
type CampaignConfig struct {
	CampaignID  string
	CampaignKey string
	PingURL     string
}

// Complete reports whether all campaign settings are present
func (c CampaignConfig) Complete() bool {
	return c.CampaignID != "" && c.CampaignKey != "" && c.PingURL != ""
}

// Ping request keys. The full set is always sent, empty when the lead lacks the value.
const (
	PingKeyCampaignID  = "lp_campaign_id"
	PingKeyCampaignKey = "lp_campaign_key"
	PingKeyCallerID    = "caller_id"
	PingKeyFirstName   = "first_name"
	PingKeyLastName    = "last_name"
	PingKeyPhoneNumber = "phone_number"
	PingKeyEmail       = "email_address"
	PingKeyZipCode     = "zip_code"
	PingKeyState       = "state"
	PingKeyTrustedForm = "trusted_form_cert_id"
	PingKeyJornayaID   = "jornaya_lead_id"
	PingKeyIPAddress   = "ip_address"
)

// PingKeys lists every key of the ping request in wire order
var PingKeys = []string{
	PingKeyCampaignID,
	PingKeyCampaignKey,
	PingKeyCallerID,
	PingKeyFirstName,
	PingKeyLastName,
	PingKeyPhoneNumber,
	PingKeyEmail,
	PingKeyZipCode,
	PingKeyState,
	PingKeyTrustedForm,
	PingKeyJornayaID,
	PingKeyIPAddress,
}

// ToPingForm maps a submission onto the ping request form.
func ToPingForm(cfg CampaignConfig, s *LeadSubmission) url.Values {
	form := url.Values{}
	form.Set(PingKeyCampaignID, cfg.CampaignID)
	form.Set(PingKeyCampaignKey, cfg.CampaignKey)
	form.Set(PingKeyCallerID, s.Phone)
	form.Set(PingKeyFirstName, s.FirstName)
	form.Set(PingKeyLastName, s.LastName)
	form.Set(PingKeyPhoneNumber, s.Phone)
	form.Set(PingKeyEmail, s.Email)
	form.Set(PingKeyZipCode, s.Zip)
	form.Set(PingKeyState, s.State)
	form.Set(PingKeyTrustedForm, s.TrustedForm)
	form.Set(PingKeyJornayaID, s.JornayaID)
	form.Set(PingKeyIPAddress, s.IPAddress)
	return form
}

// PingOutcome is the normalized answer relayed to the caller
type PingOutcome struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	Payout         *float64 `json:"payout,omitempty"`
	Duration       *float64 `json:"duration,omitempty"`
	TransferNumber string   `json:"transferNumber,omitempty"`
	PingID         string   `json:"pingId,omitempty"`
}

// UpstreamResponse is the raw answer of the ping endpoint
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// FormPoster sends a form-encoded POST and returns the status and body.
// Transport failures (no response received) wrap ErrUpstreamUnreachable.
type FormPoster interface {
	PostForm(ctx context.Context, endpoint string, form url.Values) (*UpstreamResponse, error)
}

// LeadUsecase defines the lead relay operation
type LeadUsecase interface {
	// CheckConfig reports a configuration_error RelayError when the campaign settings are incomplete.
	// Callers run it before reading the submission.
	CheckConfig() error
	// Relay validates the submission, pings the campaign endpoint once and normalizes the answer.
	// A non-success outcome is a business rejection, not an error.
	Relay(ctx context.Context, submission *LeadSubmission) (*PingOutcome, error)
}
