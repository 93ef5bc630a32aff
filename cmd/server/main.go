package main

import (
	"log"

	"github.com/K-Mohan-coder/QuizAppz/internal/config"
	"github.com/K-Mohan-coder/QuizAppz/internal/database"
	"github.com/K-Mohan-coder/QuizAppz/internal/handlers"
	"github.com/K-Mohan-coder/QuizAppz/internal/middleware"
	"github.com/K-Mohan-coder/QuizAppz/internal/models"
	"github.com/K-Mohan-coder/QuizAppz/internal/repository"
	"github.com/K-Mohan-coder/QuizAppz/internal/services"

	_ "github.com/K-Mohan-coder/QuizAppz/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           QuizAppz API
// @version         1.0
// @description     Quiz authoring and taking with role-based access
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	userRepo := repository.NewUserRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	quizService := services.NewQuizService(quizRepo, questionRepo)
	submissionService := services.NewSubmissionService(quizRepo, questionRepo, submissionRepo, userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(quizService)
	participantHandler := handlers.NewParticipantHandler(quizService, submissionService)

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/dashboard", middleware.JWTAuth(authService), authHandler.Dashboard)

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(authService), middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.POST("/quizzes", adminHandler.SaveQuiz)
			admin.GET("/quizzes/:id/questions", adminHandler.ManageQuestions)
			admin.POST("/questions", adminHandler.SaveQuestion)
		}

		participant := api.Group("/participant")
		participant.Use(middleware.JWTAuth(authService), middleware.RequireRole(models.RoleParticipant))
		{
			participant.GET("/dashboard", participantHandler.Dashboard)
			participant.GET("/quizzes/:id", participantHandler.TakeQuiz)
			participant.POST("/quizzes/:id/submit", participantHandler.SubmitQuiz)
			participant.GET("/submissions", participantHandler.History)
		}
	}

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
