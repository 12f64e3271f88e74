// Package server wires services and handlers into the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "budget/internal/docs" // Import swagger docs
	apperrors "budget/internal/errors"
	"budget/internal/handlers"
	"budget/internal/middleware"
	"budget/internal/services"
)

// Banner is the plain-text body served at the root path.
const Banner = "Budget"

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Accounts   *handlers.AccountHandler
	Categories *handlers.CategoryHandler
	Ledger     *handlers.LedgerHandler
}

// Options tunes the router.
type Options struct {
	CORSAllowedOrigins []string
	RequestLogging     bool
}

// NewHandlers builds the services on db and the handlers on top of them.
func NewHandlers(db *gorm.DB, mode services.BalanceMode) Handlers {
	accountService := services.NewAccountService(db, mode)
	categoryService := services.NewCategoryService(db)
	ledgerService := services.NewLedgerService(db, accountService)
	auditService := services.NewAuditService(db)

	return Handlers{
		Accounts:   handlers.NewAccountHandler(accountService, auditService),
		Categories: handlers.NewCategoryHandler(categoryService, auditService),
		Ledger:     handlers.NewLedgerHandler(ledgerService, auditService),
	}
}

// NewRouter mounts every route on a new Gin engine.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if opts.RequestLogging {
		router.Use(middleware.RequestLogging())
	}
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.CORSAllowedOrigins))

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, Banner)
	})
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	accounts := router.Group("/accounts")
	accounts.GET("", h.Accounts.ListAccounts)
	accounts.POST("", h.Accounts.CreateAccount)
	accounts.POST("/:id/reconcile", h.Accounts.ReconcileAccount)

	categories := router.Group("/categories")
	categories.GET("", h.Categories.ListCategories)
	categories.POST("", h.Categories.CreateCategory)

	expenses := router.Group("/expenses")
	expenses.GET("", h.Ledger.ListExpenses)
	expenses.POST("", h.Ledger.CreateExpense)

	incomes := router.Group("/incomes")
	incomes.GET("", h.Ledger.ListIncomes)
	incomes.POST("", h.Ledger.CreateIncome)

	return router
}
