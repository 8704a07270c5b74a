package router

import (
	"github.com/changhyeonkim/mediatheque-api/internal/catalog"
	"github.com/changhyeonkim/mediatheque-api/internal/config"
	"github.com/changhyeonkim/mediatheque-api/internal/loan"
	"github.com/changhyeonkim/mediatheque-api/internal/member"
	"github.com/changhyeonkim/mediatheque-api/internal/meta"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/clock"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/database"
	"github.com/gin-gonic/gin"
)

// Services holds the application services shared by the HTTP routes and the CLI
type Services struct {
	Member  *member.MemberService
	Catalog *catalog.CatalogService
	Loan    *loan.LoanService
}

// NewServices wires repositories into services
func NewServices(cfg *config.Config, db *database.DB, clk clock.Clock) *Services {
	// repository
	memberRepository := member.NewMemberRepository()
	catalogRepository := catalog.NewCatalogRepository()
	loanRepository := loan.NewLoanRepository()

	// service
	loanService := loan.NewLoanService(
		db.DB,
		loanRepository,
		memberRepository,
		catalogRepository,
		loan.PolicyFrom(cfg.Loan),
		clk,
	)

	return &Services{
		Member:  member.NewMemberService(db.DB, memberRepository, loanService),
		Catalog: catalog.NewCatalogService(db.DB, catalogRepository, loanRepository),
		Loan:    loanService,
	}
}

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB, services *Services) {
	// Meta handler (health check, loan policy)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// handler
	memberHandler := member.NewMemberHandler(services.Member)
	catalogHandler := catalog.NewCatalogHandler(services.Catalog)
	loanHandler := loan.NewLoanHandler(services.Loan)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.GET("/policy", metaHandler.LoanPolicy)

	memberV1 := v1.Group("/members")
	{
		memberV1.POST("", memberHandler.CreateMember)
		memberV1.GET("", memberHandler.ListMembers)
		memberV1.GET("/:id", memberHandler.GetMember)
		memberV1.PUT("/:id", memberHandler.UpdateMember)
		memberV1.DELETE("/:id", memberHandler.DeleteMember)
	}

	mediaV1 := v1.Group("/media")
	{
		mediaV1.POST("", catalogHandler.AddMedia)
		mediaV1.GET("", catalogHandler.ListMedia)
		mediaV1.GET("/available", catalogHandler.AvailableMedia)
		mediaV1.GET("/:type/:id", catalogHandler.GetMedia)
		mediaV1.DELETE("/:type/:id", catalogHandler.DeleteMedia)
	}

	loanV1 := v1.Group("/loans")
	{
		loanV1.POST("", loanHandler.CreateLoan)
		loanV1.GET("", loanHandler.ListLoans)
		loanV1.GET("/:id", loanHandler.GetLoan)
		loanV1.POST("/:id/return", loanHandler.ReturnLoan)
	}
}
