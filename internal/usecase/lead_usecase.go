package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"lead-relay-backend/internal/domain"
	"lead-relay-backend/pkg/logger"
	"lead-relay-backend/pkg/metrics"
	"lead-relay-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	msgConfigMissing = "Server configuration missing"
	msgPingFailed    = "Ping request failed"
	msgNoResponse    = "No response from Leadspedia server"
	msgUnexpected    = "Unexpected error occurred"
	msgPhoneRequired = "Phone number is required (caller_id)"
)

type leadUsecase struct {
	campaign domain.CampaignConfig
	poster   domain.FormPoster
	validate *validator.Validate
}

// NewLeadUsecase creates the lead relay usecase. campaign is copied and never changed afterwards.
func NewLeadUsecase(campaign domain.CampaignConfig, poster domain.FormPoster, validate *validator.Validate) domain.LeadUsecase {
	if validate == nil {
		validate = validation.New()
	}
	return &leadUsecase{
		campaign: campaign,
		poster:   poster,
		validate: validate,
	}
}

// Relay pings the campaign endpoint with the submission and normalizes the answer
func (uc *leadUsecase) Relay(ctx context.Context, submission *domain.LeadSubmission) (*domain.PingOutcome, error) {
	outcome, err := uc.relay(ctx, submission)
	switch {
	case err != nil:
		metrics.ObserveRelay(string(domain.RelayErrorKindOf(err)))
	case outcome.Success:
		metrics.ObserveRelay(metrics.OutcomeAccepted)
	default:
		metrics.ObserveRelay(string(domain.KindUpstreamRejected))
	}
	return outcome, err
}

// CheckConfig fails when any campaign setting is missing
func (uc *leadUsecase) CheckConfig() error {
	err := uc.checkConfig()
	if err != nil {
		metrics.ObserveRelay(string(domain.KindConfiguration))
	}
	return err
}

func (uc *leadUsecase) checkConfig() error {
	if uc.campaign.Complete() {
		return nil
	}
	logger.Log.Error("Lead relay misconfigured",
		"has_campaign_id", uc.campaign.CampaignID != "",
		"has_campaign_key", uc.campaign.CampaignKey != "",
		"has_ping_url", uc.campaign.PingURL != "",
	)
	return domain.NewRelayError(domain.KindConfiguration, msgConfigMissing, nil)
}

func (uc *leadUsecase) relay(ctx context.Context, submission *domain.LeadSubmission) (*domain.PingOutcome, error) {
	// Misconfiguration must never look like a client error, so it is checked first.
	if err := uc.checkConfig(); err != nil {
		return nil, err
	}

	if submission == nil {
		return nil, domain.NewRelayError(domain.KindValidation, msgPhoneRequired, nil)
	}
	if err := uc.validate.Struct(submission); err != nil {
		return nil, domain.NewRelayError(domain.KindValidation, validation.Message(err), err)
	}

	form := domain.ToPingForm(uc.campaign, submission)

	resp, err := uc.poster.PostForm(ctx, uc.campaign.PingURL, form)
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnreachable) {
			logger.Log.Error("No response from ping endpoint", "host", pingHost(uc.campaign.PingURL), "error", err)
			return nil, domain.NewRelayError(domain.KindUpstreamUnreachable, msgNoResponse, err)
		}
		logger.Log.Error("Ping request could not be sent", "host", pingHost(uc.campaign.PingURL), "error", err)
		return nil, domain.NewRelayError(domain.KindUnexpected, msgUnexpected, err)
	}

	return interpret(resp, uc.campaign.PingURL)
}

// interpret maps the upstream answer. The HTTP status wins over a success flag
// found in an error body.
func interpret(resp *domain.UpstreamResponse, pingURL string) (*domain.PingOutcome, error) {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Log.Error("Ping endpoint returned an error",
			"host", pingHost(pingURL),
			"status", resp.StatusCode,
			"body", string(resp.Body),
		)
		relayErr := domain.NewRelayError(domain.KindUpstreamResponse, msgPingFailed, nil)
		relayErr.Details = upstreamDetails(resp.Body)
		return nil, relayErr
	}

	var result domain.PingResult
	if err := decodeObject(resp.Body, &result); err != nil {
		logger.Log.Error("Ping endpoint returned an unreadable body",
			"host", pingHost(pingURL),
			"status", resp.StatusCode,
			"body", string(resp.Body),
			"error", err,
		)
		relayErr := domain.NewRelayError(domain.KindUpstreamResponse, msgPingFailed, err)
		relayErr.Details = upstreamDetails(resp.Body)
		return nil, relayErr
	}

	outcome := result.Outcome()
	if !outcome.Success {
		logger.Log.Info("Lead rejected by ping endpoint", "message", outcome.Message, "ping_id", outcome.PingID)
	}
	return outcome, nil
}

// decodeObject only accepts a JSON object; bare strings and arrays are rejected.
func decodeObject(body []byte, v interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.New("response is not a JSON object")
	}
	return json.Unmarshal(trimmed, v)
}

// upstreamDetails returns the body verbatim: decoded JSON when valid, raw text otherwise.
func upstreamDetails(body []byte) interface{} {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	return string(body)
}

func pingHost(pingURL string) string {
	u, err := url.Parse(pingURL)
	if err != nil {
		return ""
	}
	return u.Host
}
