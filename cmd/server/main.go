package main

import (
	"log"
	"strconv"
	"time"

	"talentscout-backend/internal/config"
	"talentscout-backend/internal/database"
	"talentscout-backend/internal/handlers"
	"talentscout-backend/internal/llm"
	"talentscout-backend/internal/middleware"
	"talentscout-backend/internal/repository"
	"talentscout-backend/internal/services"
	"talentscout-backend/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           TalentScout Hiring Assistant API
// @version         1.0
// @description     Candidate screening with LLM-generated technical assessments
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db := database.Connect(cfg)
	database.Migrate(db)

	ttlMin, _ := strconv.Atoi(cfg.RunTTL)
	if ttlMin <= 0 {
		ttlMin = 60
	}

	var runStore session.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		runStore = session.NewRedisStore(client, time.Duration(ttlMin)*time.Minute)
		log.Println("using redis run store")
	} else {
		runStore = session.NewMemoryStore()
		log.Println("REDIS_ADDR not set, using in-memory run store")
	}

	llmClient := llm.NewClient(cfg.LLMAPIKey, cfg.LLMAPIURL, cfg.LLMModel)
	if !llmClient.IsAvailable() {
		log.Println("LLM_API_KEY not set, question generation disabled")
	}

	candidateRepo := repository.NewCandidateRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	generatorService := services.NewGeneratorService(llmClient)
	scoringService := services.NewScoringService(answerRepo)
	assessmentService := services.NewAssessmentService(candidateRepo, answerRepo, generatorService, runStore)

	authHandler := handlers.NewAuthHandler(authService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, scoringService)
	candidateHandler := handlers.NewCandidateHandler(candidateRepo, answerRepo, scoringService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Run-Token"},
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

		assessment := api.Group("/assessment")
		{
			assessment.POST("/intake", assessmentHandler.Intake)

			run := assessment.Group("")
			run.Use(middleware.RunToken())
			{
				run.GET("/question", assessmentHandler.CurrentQuestion)
				run.POST("/answer", assessmentHandler.SubmitAnswer)
				run.GET("/result", assessmentHandler.Result)
				run.POST("/reset", assessmentHandler.Reset)
			}
		}

		candidates := api.Group("/candidates")
		candidates.Use(middleware.JWTAuth(authService))
		{
			candidates.GET("", candidateHandler.List)
			candidates.GET("/:id/report", candidateHandler.Report)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
