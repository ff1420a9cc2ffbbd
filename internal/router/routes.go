package router

import (
	"github.com/onemapafrica/member-hub-api/internal/auth"
	"github.com/onemapafrica/member-hub-api/internal/card"
	"github.com/onemapafrica/member-hub-api/internal/config"
	"github.com/onemapafrica/member-hub-api/internal/dashboard"
	"github.com/onemapafrica/member-hub-api/internal/idcard"
	"github.com/onemapafrica/member-hub-api/internal/member"
	"github.com/onemapafrica/member-hub-api/internal/meta"
	"github.com/onemapafrica/member-hub-api/internal/qr"
	"github.com/onemapafrica/member-hub-api/internal/shared/database"
	"github.com/onemapafrica/member-hub-api/internal/shared/mail"
	"github.com/onemapafrica/member-hub-api/internal/shared/middleware"
	"github.com/onemapafrica/member-hub-api/internal/shared/token"
	"github.com/onemapafrica/member-hub-api/internal/signature"
	"github.com/onemapafrica/member-hub-api/internal/transaction"
	"github.com/onemapafrica/member-hub-api/internal/verify"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	SetupWithSender(router, cfg, db, mail.NewSendGridSender(cfg))
}

// SetupWithSender is Setup with an injectable mail sender, used by tests.
func SetupWithSender(router *gin.Engine, cfg *config.Config, db *database.DB, sender mail.Sender) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	adminRepository := auth.NewAdminRepository()
	memberRepository := member.NewMemberRepository()
	cardRepository := card.NewCardRepository()
	signatureRepository := signature.NewSignatureRepository()
	transactionRepository := transaction.NewTransactionRepository()
	dashboardRepository := dashboard.NewDashboardRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)
	codec := qr.NewCodec(cfg)

	// service
	authService := auth.NewAuthService(db.DB, adminRepository, tokenManager)
	memberService := member.NewMemberService(db.DB, memberRepository)
	verificationService := verify.NewVerificationService(db.DB, cardRepository, memberRepository)
	cardService := card.NewCardService(db.DB, cfg, cardRepository, memberRepository, codec, verificationService)
	signatureService := signature.NewSignatureService(db.DB, cfg, signatureRepository)
	idCardService := idcard.NewIDCardService(db.DB, cfg, memberRepository, cardRepository, signatureService, sender)
	transactionService := transaction.NewTransactionService(db.DB, transactionRepository)
	dashboardService := dashboard.NewDashboardService(db.DB, dashboardRepository, transactionRepository)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)
	cardHandler := card.NewCardHandler(cardService)
	verificationHandler := verify.NewVerificationHandler(verificationService)
	signatureHandler := signature.NewSignatureHandler(signatureService)
	idCardHandler := idcard.NewIDCardHandler(idCardService)
	transactionHandler := transaction.NewTransactionHandler(transactionService)
	dashboardHandler := dashboard.NewDashboardHandler(dashboardService)

	// Public routes: auth, card verification, stored assets.
	authAPI := router.Group("/api/auth")
	{
		authAPI.POST("/signup", authHandler.Signup)
		authAPI.POST("/login", authHandler.Login)
	}

	router.GET("/api/verify-card/:identifier", verificationHandler.Verify)
	router.GET("/assets/:id", signatureHandler.ServeAsset)

	// Admin routes. Everything below requires a valid access token.
	api := router.Group("/api")
	api.Use(middleware.JWT(cfg))
	{
		members := api.Group("/members")
		{
			members.POST("", memberHandler.Create)
			members.GET("", memberHandler.List)
			members.GET("/:id", memberHandler.Get)
			members.PUT("/:id", memberHandler.Update)
			members.DELETE("/:id", memberHandler.Delete)

			// Card lifecycle. Generate addresses the member; revoke and
			// reactivate address the card serial in the :id segment.
			members.POST("/:id/generate-card", cardHandler.Generate)
			members.PATCH("/:id/revoke-card", cardHandler.Revoke)
			members.PATCH("/:id/reactivate-card", cardHandler.Reactivate)

			members.GET("/:id/card.pdf", idCardHandler.Export)
			members.POST("/:id/dispatch-card", idCardHandler.Dispatch)
		}

		transactions := api.Group("/transactions")
		{
			transactions.GET("", transactionHandler.List)
			transactions.GET("/:ref", transactionHandler.Get)
		}

		api.GET("/dashboard", dashboardHandler.Summary)
	}

	// Signature and upload surfaces keep their historical top-level paths.
	authed := router.Group("/")
	authed.Use(middleware.JWT(cfg))
	{
		authed.GET("/signature", signatureHandler.Get)
		authed.POST("/signature", signatureHandler.Set)
		authed.DELETE("/signature", signatureHandler.Delete)
		authed.POST("/upload-image", signatureHandler.Upload)
		authed.POST("/upload-id", idCardHandler.Upload)
	}
}
