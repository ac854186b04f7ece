package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/okadachi/portfolio-api/internal/portfolio"
)

// Handler serves the derived portfolio data. Endpoints backed by a snapshot
// slot answer 503 with a loading body until that slot has been populated
// once; after that they keep serving the latest data, stale or not.
type Handler struct {
	service   portfolio.Service
	refresher portfolio.Refresher
	logger    *logrus.Logger
}

// NewHandler creates a new API handler
func NewHandler(service portfolio.Service, refresher portfolio.Refresher, logger *logrus.Logger) *Handler {
	return &Handler{
		service:   service,
		refresher: refresher,
		logger:    logger,
	}
}

// GetPortfolio returns the full portfolio snapshot
func (h *Handler) GetPortfolio(c *gin.Context) {
	snapshot, ok := h.service.Portfolio()
	if !ok {
		respondLoading(c)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetProfile returns the raw profile
func (h *Handler) GetProfile(c *gin.Context) {
	profile, ok := h.service.Profile()
	if !ok {
		respondLoading(c)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetHero returns the landing-section projection of the profile
func (h *Handler) GetHero(c *gin.Context) {
	hero, ok := h.service.Hero()
	if !ok {
		respondLoading(c)
		return
	}
	c.JSON(http.StatusOK, hero)
}

// GetAbout returns the about section
func (h *Handler) GetAbout(c *gin.Context) {
	about, ok := h.service.About()
	if !ok {
		respondLoading(c)
		return
	}
	c.JSON(http.StatusOK, about)
}

// GetContact returns the contact section
func (h *Handler) GetContact(c *gin.Context) {
	contact, ok := h.service.Contact()
	if !ok {
		respondLoading(c)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// GetProjects returns the featured and other project views
func (h *Handler) GetProjects(c *gin.Context) {
	projects, ok := h.service.Projects()
	if !ok {
		respondLoading(c)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetSkills returns the categorized skill catalog
func (h *Handler) GetSkills(c *gin.Context) {
	skills, ok := h.service.Skills()
	if !ok {
		respondLoading(c)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// GetStatus returns the refresh state machine and per-slot details
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status())
}

// TriggerRefresh schedules an immediate refresh cycle. The portfolio page
// relays its visibility-regain event here; the response acknowledges the
// trigger without waiting for the cycle to run.
func (h *Handler) TriggerRefresh(c *gin.Context) {
	h.refresher.Trigger()
	h.logger.Debug("Refresh trigger accepted")
	c.JSON(http.StatusAccepted, RefreshResponse{
		Status:     "scheduled",
		AcceptedAt: time.Now(),
	})
}

func respondLoading(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, LoadingResponse{Status: "loading"})
}
