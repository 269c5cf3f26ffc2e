package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vortex-market.backend/internal/config"
	"vortex-market.backend/internal/infrastructure/blockchain"
	"vortex-market.backend/internal/infrastructure/jobs"
	"vortex-market.backend/internal/infrastructure/repositories"
	"vortex-market.backend/internal/interfaces/http/handlers"
	"vortex-market.backend/internal/interfaces/http/middleware"
	"vortex-market.backend/internal/usecases"
	"vortex-market.backend/pkg/jwt"
	"vortex-market.backend/pkg/logger"
	"vortex-market.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Initialize repositories
	artworkRepo := repositories.NewArtworkRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	royaltyRepo := repositories.NewRoyaltyConfigRepository(db)
	contractRepo := repositories.NewContractConfigRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)

	// Initialize royalty enforcement probe
	enforcer := blockchain.NewRoyaltyEnforcer()

	// Initialize usecases
	policyUsecase := usecases.NewPolicyUsecase(artworkRepo, royaltyRepo, tokenRepo, contractRepo, auditRepo, enforcer, cfg.Policy)
	securityUsecase := usecases.NewSecurityUsecase(auditRepo, cfg.Policy, cfg.Security)
	transactionUsecase := usecases.NewTransactionUsecase(policyUsecase, securityUsecase, transactionRepo)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionUsecase)
	saleHandler := handlers.NewSaleHandler(policyUsecase)
	royaltyHandler := handlers.NewRoyaltyHandler(policyUsecase)
	mintHandler := handlers.NewMintHandler(policyUsecase, securityUsecase)
	contractHandler := handlers.NewContractHandler(securityUsecase)
	securityHandler := handlers.NewSecurityHandler(securityUsecase)
	auditHandler := handlers.NewAuditHandler(auditRepo)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService)
	agentRateLimit, apiRateLimit := newRateLimits(cfg.Security.RateLimitWindow, cfg.Security.AgentRateLimit, cfg.Security.APIRateLimit)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	retentionJob := jobs.NewAuditRetentionJob(auditRepo, cfg.Policy.AuditRetention)
	go retentionJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerAPIV1Routes(r, routeDeps{
		transactionHandler: transactionHandler,
		saleHandler:        saleHandler,
		royaltyHandler:     royaltyHandler,
		mintHandler:        mintHandler,
		contractHandler:    contractHandler,
		securityHandler:    securityHandler,
		auditHandler:       auditHandler,
		authMiddleware:     authMiddleware,
		agentRateLimit:     agentRateLimit,
		apiRateLimit:       apiRateLimit,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		retentionJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Vortex Market Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
