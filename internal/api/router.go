package api

import (
	"net/http" // HTTP status codes

	"bet_wallet/internal/account"    // Account service
	"bet_wallet/internal/ledger"     // Account ledger
	"bet_wallet/internal/middleware" // Custom middleware
	"bet_wallet/internal/settlement" // Bet settlement

	"github.com/gin-contrib/cors"                             // CORS for the browser client
	"github.com/gin-gonic/gin"                                // Gin web framework
	"github.com/prometheus/client_golang/prometheus/promhttp" // Metrics endpoint
)

// Deps are the services behind the HTTP surface
type Deps struct {
	Accounts *account.Service
	Ledger   *ledger.Ledger
	Engine   *settlement.Engine
	Health   func() error // Optional readiness probe
}

// NewRouter wires every route onto a fresh gin engine
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,                                      // Demo UI may be served from anywhere
		AllowMethods:    []string{http.MethodGet, http.MethodPost}, // Only read and write routes exist
		AllowHeaders:    []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
	}))

	r.GET("/healthz", func(c *gin.Context) {
		if d.Health != nil {
			if err := d.Health(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	apiGroup.POST("/register", RegisterHandler(d.Accounts)) // Registration endpoint
	apiGroup.POST("/login", LoginHandler(d.Accounts))       // Login endpoint
	apiGroup.GET("/games", GamesHandler())                  // Odds tables

	// Wallet routes (protected by JWT)
	authed := apiGroup.Group("")
	authed.Use(middleware.JWTAuthMiddleware(d.Accounts))
	authed.GET("/me", MeHandler(d.Accounts, d.Ledger))         // Profile and balance
	authed.GET("/balance", BalanceHandler(d.Ledger))           // Balance only
	authed.POST("/sandbox/deposit", DepositHandler(d.Ledger))  // Deposit endpoint
	authed.POST("/bet", BetHandler(d.Engine))                  // Bet endpoint
	authed.GET("/transactions", TransactionsHandler(d.Ledger)) // Transaction history endpoint
	return r
}
