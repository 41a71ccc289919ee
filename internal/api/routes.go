package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profiles-backend-go/internal/core"
	"profiles-backend-go/internal/middleware"
)

// Services bundles everything SetupRoutes wires into handlers.
type Services struct {
	Articles        core.CollectionService
	Educations      core.CollectionService
	WorkExperiences core.CollectionService
	Professions     core.DocumentService
	Profiles        core.ProfileService
	Businesses      core.BusinessService
	Storage         core.StorageService
}

// SetupRoutes configures all application routes. Global middleware (logging,
// recovery, CORS) is expected to be applied to the router beforehand.
//
// Authentication policy is per route group: articles, users, businesses and
// storage reject unauthenticated requests outright; the remaining profile
// resources accept anonymous reads (empty/default data) and require an owner
// only on writes.
func SetupRoutes(router *gin.Engine, logger *zap.Logger, authMW *middleware.AuthMiddleware, svcs Services) {
	articlesHandler := NewCollectionHandler(svcs.Articles)
	educationsHandler := NewCollectionHandler(svcs.Educations)
	workExperiencesHandler := NewCollectionHandler(svcs.WorkExperiences)
	professionsHandler := NewDocumentHandler(svcs.Professions)
	profileHandler := NewProfileHandler(svcs.Profiles)
	businessHandler := NewBusinessHandler(svcs.Businesses)
	socialHandler := NewSocialHandler()
	storageHandler := NewStorageHandler(svcs.Storage)

	articles := router.Group("/articles", authMW.RequireAuth())
	{
		articles.GET("", articlesHandler.List)
		articles.POST("", articlesHandler.Replace)
	}

	educations := router.Group("/educations", authMW.OptionalAuth())
	{
		educations.GET("", educationsHandler.List)
		educations.POST("", educationsHandler.Replace)
	}

	workExperiences := router.Group("/work-experiences", authMW.OptionalAuth())
	{
		workExperiences.GET("", workExperiencesHandler.List)
		workExperiences.POST("", workExperiencesHandler.Replace)
	}

	professions := router.Group("/professions", authMW.OptionalAuth())
	{
		professions.GET("", professionsHandler.Get)
		professions.POST("", professionsHandler.Update)
	}

	profile := router.Group("/profile", authMW.OptionalAuth())
	{
		profile.POST("", profileHandler.UpdateProfile)
		profile.GET("/:id", profileHandler.GetProfile)
	}

	users := router.Group("/users", authMW.RequireAuth())
	{
		users.POST("", profileHandler.UpdateContact)
		users.GET("/:id", profileHandler.GetUser)
	}

	social := router.Group("/social-profiles", authMW.OptionalAuth())
	{
		social.GET("", socialHandler.List)
		social.POST("/connect", socialHandler.Connect)
	}

	businesses := router.Group("/businesses", authMW.RequireAuth())
	{
		businesses.GET("", businessHandler.List)
		businesses.POST("", businessHandler.Create)
		businesses.GET("/:id", businessHandler.Get)
	}

	storage := router.Group("/storage", authMW.RequireAuth())
	{
		storage.POST("/upload", storageHandler.Upload)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Profiles backend is healthy."})
	})

	logger.Info("API routes configured successfully.")
}
