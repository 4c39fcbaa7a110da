package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"sachinggsingh/resume-ai/internal/config"
	"sachinggsingh/resume-ai/internal/handlers"
	"sachinggsingh/resume-ai/internal/repositories"
	"sachinggsingh/resume-ai/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	docRepo := repositories.NewDocumentRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.PublicBaseURL)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()

	resolver := services.NewRenderingResolver(
		&http.Client{Timeout: cfg.Renderer.ProbeTimeout},
		cfg.Renderer.MaxProbePages,
	)
	fetcher := services.NewAssetFetcher(
		&http.Client{Timeout: cfg.Renderer.FetchTimeout},
		cfg.Renderer.DefaultMIMEType,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Guide retrieval is optional; chat works without it
	var retriever services.ContextRetriever
	if cfg.RetrievalEnabled() {
		retriever = initRetriever(cfg, geminiService)
	}

	analyzerService := services.NewAnalyzerService(resolver, fetcher, geminiService)
	chatService := services.NewChatService(geminiService, retriever)
	log.Println("✅ Analyzer and chat services initialized")

	// Initialize Handlers
	documentHandler := handlers.NewDocumentHandler(docRepo, storageService, pdfParser, cfg.Storage.MaxFileSize)
	pagesHandler := handlers.NewPagesHandler(docRepo, resolver)
	summaryHandler := handlers.NewSummaryHandler(docRepo, analyzerService)
	chatHandler := handlers.NewChatHandler(chatService)
	log.Println("✅ Handlers initialized")

	app := fiber.New(fiber.Config{
		AppName:      "Resume AI API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Stored PDFs are read back by the rendering service
	app.Static("/upload", cfg.Storage.UploadPath)

	handlers.RegisterRoutes(app, documentHandler, pagesHandler, summaryHandler, chatHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func initRetriever(cfg *config.Config, geminiService services.GeminiService) services.ContextRetriever {
	qdrantService, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection)
	if err != nil {
		log.Printf("⚠️  Qdrant unavailable, chat runs without guides: %v", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := qdrantService.InitCollection(ctx); err != nil {
		log.Printf("⚠️  Qdrant collection unavailable, chat runs without guides: %v", err)
		return nil
	}

	log.Println("✅ Qdrant initialized successfully")
	return services.NewGuideRetriever(geminiService, qdrantService, 3)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
