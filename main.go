package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"resumematch/config"
	"resumematch/database"
	"resumematch/handlers"
	"resumematch/middleware"
	"resumematch/models"
	"resumematch/services"
	"resumematch/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("no .env file found, using process environment")
	}

	cfg := config.GetAppConfig()

	var (
		users   *models.UserModel
		resumes *models.ResumeModel
		prefs   *models.ApplicationPreferencesModel
	)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		utils.LogWarn("database unavailable, running without persistence", err.Error())
	} else {
		defer db.Close()
		if err := database.Migrate(db); err != nil {
			utils.LogError("migration failed", err)
		}
		users = models.NewUserModel(db)
		resumes = models.NewResumeModel(db)
		prefs = models.NewApplicationPreferencesModel(db)
	}

	store, err := services.NewS3Service()
	if err != nil {
		utils.LogWarn("S3 unavailable, uploads will not be archived", err.Error())
		store = nil
	}

	r := gin.Default()
	r.Use(buildCORS(cfg))
	r.Use(middleware.SanitizeInput())
	r.Use(middleware.MaxRequestSize(cfg.MaxUploadBytes))

	limiters := middleware.CreateRateLimiters()
	caches := middleware.CreateCaches()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	auth.Use(limiters["auth"].Limit(), middleware.ValidateJSON())
	{
		auth.POST("/register", handlers.RegisterUser(users))
		auth.POST("/login", handlers.LoginUser(users))
	}

	resume := r.Group("/api/resume")
	{
		resume.POST("/parse",
			limiters["parse"].Limit(),
			middleware.ValidateContentType("multipart/form-data"),
			handlers.OptionalAuthMiddleware(),
			handlers.ParseResume(resumes, store))
		resume.GET("",
			limiters["general"].Limit(),
			handlers.AuthMiddleware(),
			handlers.GetLatestResume(resumes))
		resume.GET("/list",
			limiters["general"].Limit(),
			handlers.AuthMiddleware(),
			handlers.ListResumes(resumes))
		resume.GET("/:id/download",
			limiters["general"].Limit(),
			handlers.AuthMiddleware(),
			handlers.DownloadResume(resumes, store))
		resume.POST("/:id/reparse",
			limiters["parse"].Limit(),
			handlers.AuthMiddleware(),
			handlers.ReparseResume(resumes, store))
		resume.DELETE("/:id",
			limiters["general"].Limit(),
			handlers.AuthMiddleware(),
			handlers.DeleteResume(resumes, store))
	}

	r.POST("/api/jobs/score",
		limiters["general"].Limit(),
		middleware.ValidateJSON(),
		handlers.OptionalAuthMiddleware(),
		caches["scoring"].Cache(),
		handlers.ScoreJobs(prefs, resumes))

	preferences := r.Group("/api/preferences")
	preferences.Use(limiters["general"].Limit(), middleware.ValidateJSON(), handlers.AuthMiddleware())
	{
		preferences.GET("", handlers.GetPreferences(prefs))
		preferences.PUT("", handlers.UpdatePreferences(prefs))
	}

	r.GET("/api/user/profile",
		limiters["general"].Limit(),
		handlers.AuthMiddleware(),
		handlers.GetUserProfile(users))

	utils.LogInfo("listening", gin.H{"port": cfg.Port})
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.LogError("server exited", err)
	}
}

func buildCORS(cfg config.AppConfig) gin.HandlerFunc {
	if len(cfg.AllowedOrigins) == 0 {
		return cors.Default()
	}

	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
