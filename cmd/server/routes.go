package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"vortex-market.backend/internal/interfaces/http/handlers"
	"vortex-market.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	transactionHandler *handlers.TransactionHandler
	saleHandler        *handlers.SaleHandler
	royaltyHandler     *handlers.RoyaltyHandler
	mintHandler        *handlers.MintHandler
	contractHandler    *handlers.ContractHandler
	securityHandler    *handlers.SecurityHandler
	auditHandler       *handlers.AuditHandler
	authMiddleware     gin.HandlerFunc
	agentRateLimit     gin.HandlerFunc
	apiRateLimit       gin.HandlerFunc
}

func newRateLimits(window time.Duration, agentLimit, apiLimit int) (agent, api gin.HandlerFunc) {
	return middleware.RateLimitMiddleware("agent", agentLimit, window),
		middleware.RateLimitMiddleware("api", apiLimit, window)
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Transaction routes (protected; validation path gets the tighter budget)
		transactions := v1.Group("/transactions")
		transactions.Use(d.authMiddleware)
		{
			transactions.POST("", d.agentRateLimit, d.transactionHandler.CreateTransaction)
			transactions.GET("/:id", d.apiRateLimit, d.transactionHandler.GetTransaction)
			transactions.GET("", d.apiRateLimit, d.transactionHandler.ListTransactions)
		}

		// Sale validation (protected)
		sales := v1.Group("/sales")
		sales.Use(d.authMiddleware)
		{
			sales.POST("/:artworkId/validate", d.agentRateLimit, d.saleHandler.ValidateSale)
		}

		// Royalty routes (protected)
		royalties := v1.Group("/royalties")
		royalties.Use(d.authMiddleware)
		{
			royalties.POST("/validate", d.agentRateLimit, d.royaltyHandler.ValidateRoyalty)
			royalties.PUT("/:artworkId", d.apiRateLimit, d.royaltyHandler.SetRoyalty)
			royalties.POST("/:artworkId/repair", d.apiRateLimit, d.royaltyHandler.RepairRoyalty)
		}

		// Mint metadata validation (protected)
		mints := v1.Group("/mints")
		mints.Use(d.authMiddleware)
		{
			mints.POST("/:artworkId/validate", d.agentRateLimit, d.mintHandler.ValidateMint)
		}

		// Contract operation validation (protected)
		contracts := v1.Group("/contracts")
		contracts.Use(d.authMiddleware)
		{
			contracts.POST("/validate", d.agentRateLimit, d.contractHandler.ValidateOperation)
		}

		// Security routes (protected)
		security := v1.Group("/security")
		security.Use(d.authMiddleware)
		{
			security.POST("/nonce", d.apiRateLimit, d.securityHandler.IssueNonce)
		}

		// Audit log (admin only)
		audit := v1.Group("/audit")
		audit.Use(d.authMiddleware, middleware.RequireRole(middleware.RoleAdmin))
		{
			audit.GET("", d.apiRateLimit, d.auditHandler.ListAuditEntries)
		}
	}
}
