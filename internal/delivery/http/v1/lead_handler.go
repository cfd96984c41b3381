package v1

import (
	"errors"
	"io"
	"net/http"

	"lead-relay-backend/internal/delivery/http/response"
	"lead-relay-backend/internal/domain"
	"lead-relay-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	testAcknowledgement = "Server is working ✅"
	msgBodyTooLarge     = "Request body too large"
)

type LeadHandler struct {
	leadUC domain.LeadUsecase
}

// NewLeadHandler registers the lead routes (public, no auth required).
// submitGuards run before the submit handler (rate limit, body limit).
func NewLeadHandler(public gin.IRoutes, leadUC domain.LeadUsecase, submitGuards ...gin.HandlerFunc) {
	handler := &LeadHandler{
		leadUC: leadUC,
	}

	public.POST("/submit", append(submitGuards, handler.Submit)...)
	public.GET("/test", handler.Test)
}

// Submit godoc
// @Summary      Submit Lead
// @Description  Pings the configured Leadspedia campaign with the lead and relays its answer.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        lead  body      domain.LeadSubmission  true  "Lead Form Data"
// @Success      200   {object}  domain.PingOutcome
// @Failure      400   {object}  domain.PingOutcome
// @Failure      413   {object}  response.ErrorResponse
// @Failure      500   {object}  response.FailureResponse
// @Router       /submit [post]
func (h *LeadHandler) Submit(c *gin.Context) {
	// Configuration is checked before the body is read, whatever the body holds.
	if err := h.leadUC.CheckConfig(); err != nil {
		c.Error(apperror.FromRelay(err))
		return
	}

	var req domain.LeadSubmission
	// An empty body is an empty submission and fails phone validation.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.New(http.StatusRequestEntityTooLarge, msgBodyTooLarge, err))
			return
		}
		c.Error(apperror.BadRequest("Invalid JSON body"))
		return
	}

	outcome, err := h.leadUC.Relay(c.Request.Context(), &req)
	if err != nil {
		c.Error(apperror.FromRelay(err))
		return
	}

	if !outcome.Success {
		// Business rejection: the lead was understood and declined
		response.JSON(c, http.StatusBadRequest, outcome)
		return
	}
	response.JSON(c, http.StatusOK, outcome)
}

// Test godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      plain
// @Success      200  {string}  string
// @Router       /test [get]
func (h *LeadHandler) Test(c *gin.Context) {
	c.String(http.StatusOK, testAcknowledgement)
}
