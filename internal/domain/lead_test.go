package domain_test

import (
	"encoding/json"
	"testing"

	"lead-relay-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPingForm(t *testing.T) {
	cfg := domain.CampaignConfig{CampaignID: "cmp", CampaignKey: "key", PingURL: "https://x"}
	lead := &domain.LeadSubmission{
		FirstName:   "Ann",
		LastName:    "Lee",
		Phone:       "5551234567",
		Email:       "ann@example.com",
		Zip:         "90210",
		State:       "CA",
		TrustedForm: "https://cert.trustedform.com/abc",
		JornayaID:   "J-1",
		IPAddress:   "203.0.113.7",
	}

	form := domain.ToPingForm(cfg, lead)

	assert.Equal(t, "cmp", form.Get("lp_campaign_id"))
	assert.Equal(t, "key", form.Get("lp_campaign_key"))
	assert.Equal(t, "5551234567", form.Get("caller_id"))
	assert.Equal(t, "Ann", form.Get("first_name"))
	assert.Equal(t, "Lee", form.Get("last_name"))
	assert.Equal(t, "5551234567", form.Get("phone_number"))
	assert.Equal(t, "ann@example.com", form.Get("email_address"))
	assert.Equal(t, "90210", form.Get("zip_code"))
	assert.Equal(t, "CA", form.Get("state"))
	assert.Equal(t, "https://cert.trustedform.com/abc", form.Get("trusted_form_cert_id"))
	assert.Equal(t, "J-1", form.Get("jornaya_lead_id"))
	assert.Equal(t, "203.0.113.7", form.Get("ip_address"))

	// url-escaped on the wire, never dropped when empty
	empty := domain.ToPingForm(cfg, &domain.LeadSubmission{Phone: "+1 555"})
	assert.Contains(t, empty.Encode(), "caller_id=%2B1+555")
	assert.Contains(t, empty.Encode(), "first_name=&")
	assert.Len(t, empty, len(domain.PingKeys))
}

func TestCampaignConfigComplete(t *testing.T) {
	assert.True(t, domain.CampaignConfig{CampaignID: "a", CampaignKey: "b", PingURL: "c"}.Complete())
	assert.False(t, domain.CampaignConfig{CampaignID: "a", CampaignKey: "b"}.Complete())
}

func TestPingResultDecoding(t *testing.T) {
	t.Run("Should tolerate nulls and missing fields", func(t *testing.T) {
		var r domain.PingResult
		require.NoError(t, json.Unmarshal([]byte(`{"success":true,"message":"ok","payout":null,"number":null}`), &r))

		out := r.Outcome()
		assert.True(t, out.Success)
		assert.Nil(t, out.Payout)
		assert.Nil(t, out.Duration)
		assert.Empty(t, out.TransferNumber)
	})

	t.Run("Should reject non numeric payouts", func(t *testing.T) {
		var r domain.PingResult
		assert.Error(t, json.Unmarshal([]byte(`{"success":true,"payout":"lots"}`), &r))
	})

	t.Run("Should drop commercial terms from rejections", func(t *testing.T) {
		var r domain.PingResult
		require.NoError(t, json.Unmarshal([]byte(`{"success":false,"message":"dup","payout":3,"number":"+1","ping_id":"p"}`), &r))

		got, err := json.Marshal(r.Outcome())
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"message":"dup","pingId":"p"}`, string(got))
	})
}

func TestRelayErrorKinds(t *testing.T) {
	assert.True(t, domain.KindValidation.ClientFault())
	assert.True(t, domain.KindUpstreamRejected.ClientFault())
	assert.False(t, domain.KindConfiguration.ClientFault())
	assert.False(t, domain.KindUpstreamUnreachable.ClientFault())

	err := domain.NewRelayError(domain.KindUpstreamUnreachable, "No response", domain.ErrUpstreamUnreachable)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnreachable)
	assert.Equal(t, domain.KindUpstreamUnreachable, domain.RelayErrorKindOf(err))
	assert.Equal(t, domain.KindUnexpected, domain.RelayErrorKindOf(assert.AnError))
}
