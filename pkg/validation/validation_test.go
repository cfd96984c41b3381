package validation

import (
	"testing"

	"lead-relay-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValidationErrors(t *testing.T) {
	t.Run("Should name the ping key for a missing phone", func(t *testing.T) {
		err := New().Struct(&domain.LeadSubmission{FirstName: "Ann"})
		require.Error(t, err)

		assert.Equal(t, []string{"Phone number is required (caller_id)"}, FormatValidationErrors(err))
		assert.Equal(t, "Phone number is required (caller_id)", Message(err))
	})

	t.Run("Should pass a lead with a phone", func(t *testing.T) {
		assert.NoError(t, New().Struct(&domain.LeadSubmission{Phone: "5551234567"}))
	})

	t.Run("Should fall back to the raw error text", func(t *testing.T) {
		assert.Equal(t, []string{assert.AnError.Error()}, FormatValidationErrors(assert.AnError))
		assert.Equal(t, assert.AnError.Error(), Message(assert.AnError))
	})
}

func TestJSONFieldNames(t *testing.T) {
	err := New().Struct(&domain.LeadSubmission{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'phone'")
}

func TestFieldLabels(t *testing.T) {
	assert.Equal(t, "Trusted Form", formatCamelCase("TrustedForm"))
	assert.Equal(t, "Zip code", getFieldLabel("Zip"))
	assert.Equal(t, "Utm Source", getFieldLabel("UtmSource"))
}
