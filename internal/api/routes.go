package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Portfolio API
// @version 1.0
// @description API serving derived GitHub portfolio data
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// SetupRouter configures the API routes
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := r.Group("/api/v1")
	{
		// @Summary Get the full portfolio snapshot
		// @Description Get the profile, project views, categorized skills and about section in one response
		// @Tags portfolio
		// @Produce json
		// @Success 200 {object} models.Portfolio
		// @Failure 503 {object} LoadingResponse
		// @Router /portfolio [get]
		v1.GET("/portfolio", h.GetPortfolio)

		// @Summary Get the owner's profile
		// @Description Get the portfolio owner's public GitHub profile
		// @Tags profile
		// @Produce json
		// @Success 200 {object} models.Profile
		// @Failure 503 {object} LoadingResponse
		// @Router /profile [get]
		v1.GET("/profile", h.GetProfile)

		// @Summary Get the hero section
		// @Description Get the landing-section projection of the profile
		// @Tags profile
		// @Produce json
		// @Success 200 {object} models.Hero
		// @Failure 503 {object} LoadingResponse
		// @Router /hero [get]
		v1.GET("/hero", h.GetHero)

		// @Summary Get the about section
		// @Description Get the bio and, when the owner has a profile README, its rendered HTML
		// @Tags profile
		// @Produce json
		// @Success 200 {object} models.About
		// @Failure 503 {object} LoadingResponse
		// @Router /about [get]
		v1.GET("/about", h.GetAbout)

		// @Summary Get the contact section
		// @Description Get the owner's public contact points
		// @Tags profile
		// @Produce json
		// @Success 200 {object} models.Contact
		// @Failure 503 {object} LoadingResponse
		// @Router /contact [get]
		v1.GET("/contact", h.GetContact)

		// @Summary Get the project views
		// @Description Get the featured and other project views derived from the repository list
		// @Tags projects
		// @Produce json
		// @Success 200 {object} models.Projects
		// @Failure 503 {object} LoadingResponse
		// @Router /projects [get]
		v1.GET("/projects", h.GetProjects)

		// @Summary Get the categorized skills
		// @Description Get the skill catalog with evidenced flags derived from the repositories
		// @Tags skills
		// @Produce json
		// @Success 200 {array} models.SkillCategory
		// @Failure 503 {object} LoadingResponse
		// @Router /skills [get]
		v1.GET("/skills", h.GetSkills)

		// @Summary Get the refresh status
		// @Description Get the scheduler state, per-slot refresh times and the last swallowed error
		// @Tags status
		// @Produce json
		// @Success 200 {object} models.RefreshStatus
		// @Router /status [get]
		v1.GET("/status", h.GetStatus)

		// @Summary Trigger a refresh
		// @Description Schedule an immediate refresh cycle, typically on the page regaining visibility
		// @Tags status
		// @Produce json
		// @Success 202 {object} RefreshResponse
		// @Router /refresh [post]
		v1.POST("/refresh", h.TriggerRefresh)
	}

	return r
}
