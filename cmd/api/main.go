package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/gradequiz-api/internal/config"
	"github.com/yourusername/gradequiz-api/internal/handler"
	"github.com/yourusername/gradequiz-api/internal/middleware"
	pgRepo "github.com/yourusername/gradequiz-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/gradequiz-api/internal/repository/redis"
	"github.com/yourusername/gradequiz-api/internal/service"
	"github.com/yourusername/gradequiz-api/pkg/auth"
	"github.com/yourusername/gradequiz-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	topicRepo := pgRepo.NewTopicRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	answerRepo := pgRepo.NewAnswerRepo(db)
	attemptRepo := pgRepo.NewAttemptRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем JWT сервис
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Собираем конфигурацию выдачи викторины: умолчания плюс переопределения из конфига
	quizConfig := service.DefaultQuizConfig()
	if cfg.Quiz.QuestionsPerQuiz > 0 {
		quizConfig.QuestionsPerQuiz = cfg.Quiz.QuestionsPerQuiz
	}
	if cfg.Quiz.AnswersPerQuestion > 0 {
		quizConfig.AnswersPerQuestion = cfg.Quiz.AnswersPerQuestion
	}
	if cfg.Quiz.TopicCacheTTLMin > 0 {
		quizConfig.TopicCacheTTL = time.Duration(cfg.Quiz.TopicCacheTTLMin) * time.Minute
	}

	// Инициализируем сервисы
	userService := service.NewUserService(userRepo)
	quizService := service.NewQuizService(topicRepo, questionRepo, answerRepo, attemptRepo, cacheRepo, quizConfig)
	resultService := service.NewResultService(attemptRepo)

	// Инициализируем обработчики
	userHandler := handler.NewUserHandler(userService, jwtService)
	quizHandler := handler.NewQuizHandler(quizService)
	resultHandler := handler.NewResultHandler(resultService)

	// Инициализируем middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Инициализируем роутер Gin
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Проверка работоспособности сервера и подключения к БД
	router.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "db unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Регистрация по контактным данным (без аутентификации, с rate limit)
		api.POST("/users", rateLimiter.Limit(middleware.RegisterRateLimitConfig()), userHandler.Register)

		// Список тем (публичный маршрут)
		api.GET("/topics", quizHandler.ListTopics)

		// Маршруты, требующие аутентификации
		authed := api.Group("/")
		authed.Use(authMiddleware.RequireAuth())
		{
			authed.GET("/users/me", userHandler.GetMe)
			authed.POST("/quiz", quizHandler.StartQuiz)
			authed.POST("/quiz/submit", quizHandler.SubmitQuiz)
			authed.GET("/results/pastAttempts", resultHandler.GetPastAttempts)
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ждем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Закрываем Redis клиент
	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
