package routes

import (
	"github.com/Shubhamsh1838/Highway-delite/internals/config"
	"github.com/Shubhamsh1838/Highway-delite/internals/controllers"
	"github.com/Shubhamsh1838/Highway-delite/internals/middleware"
	"github.com/Shubhamsh1838/Highway-delite/internals/store"
	"github.com/Shubhamsh1838/Highway-delite/internals/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires stores, managers, and controllers onto a gin engine.
// The Google verifier is a parameter so tests can substitute a stub.
func SetupRouter(db *gorm.DB, cfg *config.Config, google utils.GoogleVerifier) *gin.Engine {
	r := gin.Default()

	userStore := store.NewUserStore(db)
	noteStore := store.NewNoteStore(db)

	emailManager := utils.NewEmailManager(&utils.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
		AppName:  cfg.AppName,
		CodeExp:  int(cfg.OTPValidity.Minutes()),
	})

	tokenManager := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	otpManager := utils.NewOTPManager(userStore, emailManager, cfg.OTPValidity)

	authMiddleware := middleware.NewRequireAuthMiddleware(userStore, tokenManager)
	authCtrl := controllers.NewAuthController(userStore, otpManager, tokenManager, google)
	googleAuthCtrl := controllers.NewGoogleAuthController(cfg, userStore, tokenManager, google)
	notesCtrl := controllers.NewNotesController(noteStore)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "active",
			"message": cfg.AppName + " API is running",
		})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/verify-otp", authCtrl.VerifyOTP)
		auth.POST("/resend-otp", authCtrl.ResendOTP)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/google", authCtrl.GoogleAuth)

		auth.GET("/google/login", googleAuthCtrl.Login)
		auth.GET("/google/callback", googleAuthCtrl.Callback)

		auth.GET("/me", authMiddleware.RequireAuth, authCtrl.Me)
	}

	notes := api.Group("/notes")
	notes.Use(authMiddleware.RequireAuth)
	{
		notes.GET("", notesCtrl.List)
		notes.POST("", notesCtrl.Create)
		notes.PUT("/:id", notesCtrl.Update)
		notes.DELETE("/:id", notesCtrl.Delete)
	}

	return r
}
