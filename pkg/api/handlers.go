package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/primeasset/recruit-landing/pkg/clients/leadsink"
	"github.com/primeasset/recruit-landing/pkg/logger"
	"github.com/primeasset/recruit-landing/pkg/models"
	"github.com/primeasset/recruit-landing/pkg/services"
	"github.com/primeasset/recruit-landing/pkg/views"
)

// Handlers contains all HTTP handlers for the site
type Handlers struct {
	sink       leadsink.Client
	companyURL string
	logger     *slog.Logger
}

// NewHandlers creates a new Handlers instance. sink is nil when no lead
// endpoint is configured.
func NewHandlers(sink leadsink.Client, companyURL string, log *slog.Logger) *Handlers {
	if log == nil {
		log = slog.Default()
	}
	return &Handlers{
		sink:       sink,
		companyURL: companyURL,
		logger:     log.With(logger.Scope("api")),
	}
}

// RegisterRoutes mounts every route on router
func (h *Handlers) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.LandingPage)
	router.POST(views.ApplyPath, h.SubmitForm)
	router.POST(views.ResetPath, h.ResetForm)
	router.POST("/api/leads", h.SubmitLead)
	router.GET("/health", h.HealthCheck)
}

// Each request gets its own flow; flows are never shared between visitors
func (h *Handlers) newFlow() *services.LeadFlow {
	return services.NewLeadFlow(h.sink, h.logger)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                   "ok",
		"lead_endpoint_configured": h.sink != nil,
	})
}

// LandingPage renders the page with an empty form
func (h *Handlers) LandingPage(c *gin.Context) {
	h.render(c, http.StatusOK, views.LandingPage(h.newFlow().Snapshot(), h.companyURL))
}

// SubmitForm handles the HTML form post and renders the resulting state:
// the success card, or the form with its errors and the entered values
func (h *Handlers) SubmitForm(c *gin.Context) {
	flow := h.newFlow()
	flow.Update(leadFromForm(c))

	status := http.StatusOK
	if _, err := flow.Submit(c.Request.Context()); err != nil {
		status = statusFor(err)
	}
	h.render(c, status, views.LandingPage(flow.Snapshot(), h.companyURL))
}

// ResetForm is the "write again" action from the success card. The
// redirected GET starts a fresh, empty flow.
func (h *Handlers) ResetForm(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/#recruit-form")
}

// SubmitLead is the JSON flavour of SubmitForm
func (h *Handlers) SubmitLead(c *gin.Context) {
	var lead models.LeadSubmission
	if err := c.ShouldBindJSON(&lead); err != nil {
		h.logger.Warn("error parsing lead JSON", logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid JSON format"})
		return
	}

	flow := h.newFlow()
	flow.Update(lead)
	receipt, err := flow.Submit(c.Request.Context())
	status := statusFor(err)

	if err == nil {
		c.JSON(status, gin.H{
			"status":        "success",
			"message":       services.MessageSubmitted,
			"submission_id": receipt.SubmissionID,
			"confirmed":     receipt.Confirmed,
		})
		return
	}

	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(status, gin.H{
			"status":  "error",
			"message": "Invalid lead submission",
			"errors":  verr.Fields,
		})
		return
	}

	message := err.Error()
	if notice := flow.Snapshot().Notice; notice != nil {
		message = notice.Message
	}
	c.JSON(status, gin.H{"status": "error", "message": message})
}

func (h *Handlers) render(c *gin.Context, status int, page g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := page.Render(c.Writer); err != nil {
		h.logger.Error("error rendering page", logger.Error(err))
	}
}

func statusFor(err error) int {
	var verr *services.ValidationError
	var terr *services.TransportError
	switch {
	case err == nil:
		return http.StatusCreated
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrEndpointNotConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &terr):
		return http.StatusBadGateway
	case errors.Is(err, services.ErrSubmissionInFlight), errors.Is(err, services.ErrAlreadySubmitted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func leadFromForm(c *gin.Context) models.LeadSubmission {
	return models.LeadSubmission{
		Name:       c.PostForm(models.FieldName),
		Phone:      c.PostForm(models.FieldPhone),
		Region:     c.PostForm(models.FieldRegion),
		Experience: models.Experience(c.PostForm(models.FieldExperience)),
		Privacy:    checkboxValue(c.PostForm(models.FieldPrivacy)),
	}
}

// checkboxValue accepts "on" (browser default) as well as boolean strings
func checkboxValue(v string) bool {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "on") {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
