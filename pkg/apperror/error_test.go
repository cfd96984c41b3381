package apperror

import (
	"errors"
	"net/http"
	"testing"

	"lead-relay-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFromRelay(t *testing.T) {
	cases := []struct {
		kind domain.RelayErrorKind
		code int
	}{
		{domain.KindConfiguration, http.StatusInternalServerError},
		{domain.KindValidation, http.StatusBadRequest},
		{domain.KindUpstreamResponse, http.StatusInternalServerError},
		{domain.KindUpstreamUnreachable, http.StatusInternalServerError},
		{domain.KindUnexpected, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			appErr := FromRelay(domain.NewRelayError(tc.kind, "msg", nil))
			assert.Equal(t, tc.code, appErr.Code)
			assert.Equal(t, "msg", appErr.Message)
			assert.Equal(t, string(tc.kind), appErr.Kind)
		})
	}

	t.Run("rate limited", func(t *testing.T) {
		appErr := TooManyRequests("slow down")
		assert.Equal(t, http.StatusTooManyRequests, appErr.Code)
	})

	t.Run("unknown error", func(t *testing.T) {
		cause := errors.New("boom")
		appErr := FromRelay(cause)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.Equal(t, "Unexpected error occurred", appErr.Message)
		assert.ErrorIs(t, appErr, cause)
		assert.Equal(t, string(domain.KindUnexpected), appErr.Kind)
		assert.Equal(t, Internal(cause).Message, appErr.Message)
	})
}
