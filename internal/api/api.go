package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pulsr-app/pulsr/internal/contract"
	"github.com/pulsr-app/pulsr/internal/domain"
	"github.com/pulsr-app/pulsr/internal/service"
)

// Handler serves the personalization HTTP surface.
type Handler struct {
	Personalization service.PersonalizationService
	Audit           service.AuditService
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", h.Health)
		apiGroup.POST("/personalization/generate", h.Generate)
		apiGroup.GET("/personalization/:userId/audit", h.AuditTrail)
	}

	return r
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type generateRequest struct {
	UserID string `json:"userId"`
	Force  bool   `json:"forceRegenerate"`
}

type profileViewJSON struct {
	UserID         string           `json:"userId"`
	Label          string           `json:"label"`
	Pillars        []domain.Pillar  `json:"pillars"`
	Strategy       *domain.Strategy `json:"strategy,omitempty"`
	PersonaSummary string           `json:"personaSummary,omitempty"`
	GeneratedAt    *time.Time       `json:"generatedAt,omitempty"`
	Version        string           `json:"version,omitempty"`
}

func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"code":    string(contract.ErrMissingUserID),
			"message": "invalid request body: " + err.Error(),
		}})
		return
	}

	resp, err := h.Personalization.Regenerate(c.Request.Context(), contract.RegenerateRequest{
		UserID: req.UserID,
		Force:  req.Force,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": string(resp.Status),
		"profile": profileViewJSON{
			UserID:         resp.Profile.UserID,
			Label:          resp.Profile.Label,
			Pillars:        resp.Profile.Pillars,
			Strategy:       resp.Profile.Strategy,
			PersonaSummary: resp.Profile.PersonaSummary,
			GeneratedAt:    resp.Profile.GeneratedAt,
			Version:        resp.Profile.Version,
		},
	})
}

func (h *Handler) AuditTrail(c *gin.Context) {
	userID := c.Param("userId")
	events, err := h.Audit.RecentEvents(c.Request.Context(), userID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": err.Error(),
		}})
		return
	}

	type eventJSON struct {
		Outcome     string    `json:"outcome"`
		Fingerprint string    `json:"fingerprint,omitempty"`
		Message     string    `json:"message"`
		CreatedAt   time.Time `json:"createdAt"`
	}
	out := make([]eventJSON, len(events))
	for i, ev := range events {
		out[i] = eventJSON{
			Outcome:     string(ev.Outcome),
			Fingerprint: ev.Fingerprint,
			Message:     ev.Message,
			CreatedAt:   ev.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID, "events": out})
}

// writeError maps the failure taxonomy onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	var perr *contract.PersonalizationError
	if !errors.As(err, &perr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": err.Error(),
		}})
		return
	}

	status := http.StatusInternalServerError
	switch perr.Code {
	case contract.ErrMissingUserID:
		status = http.StatusBadRequest
	case contract.ErrProfileNotFound:
		status = http.StatusNotFound
	case contract.ErrUpstreamInvalidResponse:
		status = http.StatusBadGateway
	case contract.ErrUpstreamUnavailable:
		status = http.StatusServiceUnavailable
	case contract.ErrPersistenceFailed:
		status = http.StatusInternalServerError
	}

	body := gin.H{"code": string(perr.Code), "message": perr.Message}
	if perr.Detail != "" {
		body["detail"] = perr.Detail
	}
	c.JSON(status, gin.H{"error": body})
}
