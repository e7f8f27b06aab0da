// @title Photo Quiz API
// @version 1.0
// @description Generates a single multiple-choice trivia quiz from an uploaded photo.
// @host localhost:8080
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"photoquiz/internal/adapter/quizgen"
	"photoquiz/internal/adapter/sink"
	"photoquiz/internal/adapter/vision"
	"photoquiz/internal/cache"
	"photoquiz/internal/config"
	"photoquiz/internal/domain"
	"photoquiz/internal/handler"
	"photoquiz/internal/logger"
	"photoquiz/internal/middleware"
	"photoquiz/internal/service"
	"photoquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Vision extraction backend
	geminiModel, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.Gemini.APIKey),
		googleai.WithDefaultModel(cfg.Gemini.Model),
	)
	if err != nil {
		appLogger.Fatal("Failed to create Gemini client", zap.Error(err))
	}
	describer := vision.NewGeminiDescriber(geminiModel, cfg.Gemini.Timeout, appLogger)
	appLogger.Info("Vision describer initialized", zap.String("model", cfg.Gemini.Model))

	// Quiz synthesis backend
	openaiModel, err := openai.New(
		openai.WithToken(cfg.OpenAI.APIKey),
		openai.WithModel(cfg.OpenAI.Model),
	)
	if err != nil {
		appLogger.Fatal("Failed to create OpenAI client", zap.Error(err))
	}
	synthesizer := quizgen.NewOpenAIQuizSynthesizer(openaiModel, cfg.OpenAI.Timeout, appLogger)
	appLogger.Info("Quiz synthesizer initialized", zap.String("model", cfg.OpenAI.Model))

	// Artifact sink
	artifactSink := buildSink(cfg, appLogger)

	quizService := service.NewQuizService(describer, synthesizer, artifactSink, validation.NewValidator())
	quizHandler := handler.NewQuizHandler(quizService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")
	apiGroup.Post("/quiz", quizHandler.GenerateQuiz)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

// buildSink selects the artifact sink from config. The sink is optional
// debug tooling; a misconfigured one falls back to noop rather than
// blocking startup on a non-essential dependency.
func buildSink(cfg *config.Config, appLogger *zap.Logger) domain.ArtifactSink {
	switch cfg.Sink.Type {
	case "file":
		fileSink, err := sink.NewFileSink(cfg.Sink.Dir)
		if err != nil {
			appLogger.Warn("Failed to initialize file sink, artifacts disabled", zap.Error(err))
			return sink.NewNoopSink()
		}
		appLogger.Info("File artifact sink initialized", zap.String("dir", cfg.Sink.Dir))
		return fileSink
	case "redis":
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Warn("Failed to connect to Redis, artifacts disabled", zap.Error(err))
			return sink.NewNoopSink()
		}
		appLogger.Info("Redis artifact sink initialized", zap.String("address", cfg.Redis.Address))
		return sink.NewRedisSink(redisClient, cfg.Sink.TTL)
	default:
		return sink.NewNoopSink()
	}
}
