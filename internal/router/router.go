package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/config"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/handler"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/middleware"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/response"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Quiz    *handler.QuizHandler
	Session *handler.SessionHandler
	WS      *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Auth Group ────────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/me", middleware.RequireAuth(authService), handlers.Auth.Me)
	}

	// ─── Quiz Group (JWT) ──────────────────────────────────────────────
	quizAPI := router.Group("/api/v1/quizzes")
	quizAPI.Use(middleware.RequireAuth(authService))
	{
		quizAPI.GET("", handlers.Quiz.ListQuizzes)
		quizAPI.POST("", handlers.Quiz.CreateQuiz)
		quizAPI.POST("/generate", handlers.Quiz.GenerateQuiz)
		quizAPI.POST("/import", handlers.Quiz.ImportQuiz)
		quizAPI.GET("/:quiz_id", handlers.Quiz.GetQuiz)
		quizAPI.DELETE("/:quiz_id", handlers.Quiz.DeleteQuiz)
		quizAPI.POST("/:quiz_id/favorite", handlers.Quiz.ToggleFavorite)
		quizAPI.POST("/:quiz_id/sessions", handlers.Session.StartSession)
	}

	// ─── Session Group (JWT) ───────────────────────────────────────────
	sessionAPI := router.Group("/api/v1/sessions")
	sessionAPI.Use(middleware.RequireAuth(authService))
	{
		sessionAPI.GET("/:session_id", handlers.Session.GetSession)
		sessionAPI.DELETE("/:session_id", handlers.Session.AbandonSession)
		sessionAPI.POST("/:session_id/mode", handlers.Session.SelectMode)
		sessionAPI.POST("/:session_id/answers", handlers.Session.SelectAnswer)
		sessionAPI.POST("/:session_id/navigate", handlers.Session.Navigate)
		sessionAPI.POST("/:session_id/flag", handlers.Session.ToggleFlag)
		sessionAPI.POST("/:session_id/explanation", handlers.Session.RequestExplanation)
		sessionAPI.POST("/:session_id/finish", handlers.Session.FinishSession)
		sessionAPI.POST("/:session_id/retake", handlers.Session.RetakeSession)
	}

	// ─── WebSocket Group (JWT via ?token=) ─────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireAuth(authService))
	{
		ws.GET("/sessions/:session_id/stream", handlers.WS.SessionStream)
	}

	return router
}
