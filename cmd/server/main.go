package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/SauravRai18/vidhi/blobstore"
	"github.com/SauravRai18/vidhi/config"
	"github.com/SauravRai18/vidhi/handlers"
	"github.com/SauravRai18/vidhi/repository"
	"github.com/SauravRai18/vidhi/service"
	"github.com/SauravRai18/vidhi/session"
	"github.com/SauravRai18/vidhi/store"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Initialize the blob-table store
	kv, err := store.New(ctx, store.Config{
		Type:        store.Type(cfg.StoreType),
		RedisURL:    cfg.RedisURL,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		logger.Fatal("failed to initialize store", zap.Error(err))
	}
	logger.Info("store initialized", zap.String("type", cfg.StoreType))

	// Initialize raw-upload storage
	blobs, err := blobstore.NewFromEnv()
	if err != nil {
		logger.Fatal("failed to initialize blob storage", zap.Error(err))
	}
	logger.Info("blob storage initialized", zap.String("type", cfg.BlobStorageType))

	// Session resolution provides tenant and user identity everywhere
	resolver := session.NewResolver(kv)

	// Initialize repositories
	auditRepo := repository.NewAuditRepository(kv)
	matterRepo := repository.NewMatterRepository(kv, auditRepo, resolver)
	clientRepo := repository.NewClientRepository(kv, auditRepo, resolver)
	hearingRepo := repository.NewHearingRepository(kv, auditRepo, resolver)
	documentRepo := repository.NewDocumentRepository(kv, auditRepo, resolver)
	draftRepo := repository.NewDraftRepository(kv, auditRepo, resolver)
	complianceRepo := repository.NewComplianceRepository(kv, auditRepo, resolver)
	chatRepo := repository.NewChatRepository(kv, auditRepo, resolver)
	firmRepo := repository.NewFirmRepository(kv)
	userRepo := repository.NewUserRepository(kv)
	jobRepo := repository.NewJobRepository(kv)

	// Initialize Gemini client
	geminiClient, err := initGemini(ctx, cfg.GeminiAPIKey, logger)
	if err != nil {
		logger.Fatal("failed to initialize Gemini", zap.Error(err))
	}
	generator := service.NewGemini(geminiClient)

	// Initialize services
	authService := session.NewAuthService(userRepo, firmRepo, auditRepo, resolver, logger)
	matterService := service.NewMatterService(matterRepo, clientRepo, hearingRepo, resolver, logger)
	linkService := service.NewLinkService(documentRepo, draftRepo)
	documentService := service.NewDocumentService(documentRepo, jobRepo, blobs, nil, resolver, logger)
	draftService := service.NewDraftService(draftRepo, userRepo, generator, resolver, logger)
	researchService := service.NewResearchService(generator, chatRepo, firmRepo, resolver, resolver, logger)
	complianceService := service.NewComplianceService(complianceRepo)
	dashboardService := service.NewDashboardService(matterRepo, draftRepo, hearingRepo, complianceRepo,
		firmRepo, userRepo, auditRepo, resolver, resolver)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, resolver)
	matterHandler := handlers.NewMatterHandler(matterService, linkService, matterRepo, clientRepo, hearingRepo)
	documentHandler := handlers.NewDocumentHandler(documentService, documentRepo)
	draftHandler := handlers.NewDraftHandler(draftService, draftRepo)
	researchHandler := handlers.NewResearchHandler(researchService)
	adminHandler := handlers.NewAdminHandler(dashboardService, complianceService, auditRepo)

	// Background indexing reconciliation
	go reconcileLoop(ctx, documentService, cfg.ReconcileInterval, logger)

	// Setup Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth endpoints
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/profile", authHandler.Profile)
		api.PUT("/profile", authHandler.UpdateProfile)

		// Everything below requires an active session
		authed := api.Group("", handlers.RequireSession(resolver))

		// Matter endpoints
		authed.GET("/matters", matterHandler.ListMatters)
		authed.POST("/matters", matterHandler.CreateMatter)
		authed.POST("/matters/:id/access", matterHandler.TouchMatter)
		authed.POST("/matters/:id/link-document", matterHandler.LinkDocument)
		authed.POST("/matters/:id/link-draft", matterHandler.LinkDraft)

		// Client endpoints
		authed.GET("/clients", matterHandler.ListClients)
		authed.POST("/clients", matterHandler.CreateClient)

		// Hearing endpoints
		authed.GET("/hearings", matterHandler.ListHearings)
		authed.GET("/hearings/upcoming", matterHandler.UpcomingHearings)
		authed.POST("/hearings", matterHandler.AddHearing)

		// Seed endpoints
		authed.POST("/seed", matterHandler.SeedFirm)

		// Document endpoints
		authed.POST("/documents/upload", documentHandler.Upload)
		authed.GET("/documents", documentHandler.List)
		authed.GET("/documents/unlinked", documentHandler.Unlinked)
		authed.DELETE("/documents/:id", documentHandler.Delete)
		authed.POST("/documents/analyze", researchHandler.AnalyzeDocument)

		// Draft endpoints
		authed.GET("/drafts", draftHandler.List)
		authed.GET("/drafts/unlinked", draftHandler.Unlinked)
		authed.POST("/drafts", draftHandler.Create)
		authed.PUT("/drafts/:id/content", draftHandler.SaveContent)
		authed.POST("/drafts/generate", draftHandler.Generate)

		// Research endpoints
		authed.POST("/research/ask", researchHandler.Ask)
		authed.GET("/research/history/:matterId", researchHandler.History)
		authed.POST("/research/explain", researchHandler.ExplainConcept)
		authed.POST("/research/strategy", researchHandler.SuggestStrategy)
		authed.POST("/research/hearing-brief", researchHandler.HearingBrief)
		authed.POST("/summarize/judgment", researchHandler.SummarizeJudgment)
		authed.POST("/contracts/review", researchHandler.ReviewContract)

		// Compliance endpoints
		authed.GET("/compliance", adminHandler.ListCompliance)
		authed.PUT("/compliance/:id/status", adminHandler.UpdateComplianceStatus)
		authed.POST("/compliance/seed", adminHandler.SeedCompliance)

		// Dashboard and admin endpoints
		authed.GET("/dashboard", adminHandler.Dashboard)
		authed.GET("/admin/platform", adminHandler.Platform)
		authed.GET("/admin/audit", adminHandler.AuditTrail)
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// reconcileLoop periodically completes pending indexing jobs, including
// any left behind by a previous shutdown.
func reconcileLoop(ctx context.Context, documents *service.DocumentService, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := documents.ReconcilePending(ctx); err != nil {
				logger.Warn("indexing reconciliation failed", zap.Error(err))
			}
		}
	}
}

func initGemini(ctx context.Context, apiKey string, logger *zap.Logger) (*genai.Client, error) {
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return client, nil
}
