package routes

import (
	"github.com/campusgig/platform-go/config"
	_ "github.com/campusgig/platform-go/docs"
	"github.com/campusgig/platform-go/gateway"
	"github.com/campusgig/platform-go/handlers"
	"github.com/campusgig/platform-go/middleware"
	"github.com/campusgig/platform-go/repositories"
	"github.com/campusgig/platform-go/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine) {
	gw := gateway.NewHTTPGateway(config.GatewayURL, config.GatewayAPIKey, config.GatewayMerchantID)
	RegisterRoutesWithGateway(r, gw)
}

// RegisterRoutesWithGateway lets tests swap the payment gateway.
func RegisterRoutesWithGateway(r *gin.Engine, gw gateway.Gateway) {
	repos_instance := repositories.New()
	services_instance := services.New(repos_instance, gw)
	handlers_instance := handlers.New(services_instance)

	r.Use(middleware.CORSMiddleware())

	r.POST("/register", handlers_instance.Auth.Register)
	r.POST("/login", handlers_instance.Auth.Login)
	r.POST("/payments/webhook", handlers_instance.Payment.Webhook)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/chat/:thread", handlers_instance.WS.Subscribe)

		gigs := auth.Group("/gigs")
		{
			gigs.POST("", handlers_instance.Gig.CreateGig)
			gigs.GET("/mine", handlers_instance.Gig.ListMyGigs)
			gigs.GET("/applied", handlers_instance.Gig.ListAppliedGigs)
			gigs.GET("/:id", handlers_instance.Gig.GetGig)
			gigs.PUT("/:id", handlers_instance.Gig.UpdateGig)
			gigs.POST("/:id/close", handlers_instance.Gig.CloseGig)

			gigs.POST("/:id/apply", handlers_instance.Gig.Apply)
			gigs.POST("/:id/applicants/:studentId/decision", handlers_instance.Gig.Decide)

			gigs.POST("/:id/payment", handlers_instance.Payment.InitiatePayment)
			gigs.GET("/:id/transactions", handlers_instance.Payment.ListTransactions)

			gigs.POST("/:id/reviews", handlers_instance.Review.SubmitReview)

			gigs.POST("/:id/reports", handlers_instance.Gig.SubmitReport)
			gigs.GET("/:id/reports", handlers_instance.Gig.ListReports)
		}

		auth.GET("/discovery/gigs", handlers_instance.Discovery.ListOpenGigs)

		reviews := auth.Group("/reviews")
		{
			reviews.POST("/:id/reply", handlers_instance.Review.Reply)
		}

		users := auth.Group("/users")
		{
			users.GET("/:id", handlers_instance.User.GetUser)
			users.PUT("/:id", handlers_instance.User.UpdateUser)
			users.GET("/:id/reviews", handlers_instance.Review.ListForStudent)
		}

		clients := auth.Group("/clients")
		{
			clients.POST("/:id/follow", handlers_instance.User.FollowClient)
			clients.DELETE("/:id/follow", handlers_instance.User.UnfollowClient)
			clients.POST("/:id/block", handlers_instance.User.BlockClient)
			clients.DELETE("/:id/block", handlers_instance.User.UnblockClient)
		}

		chat := auth.Group("/chat")
		{
			chat.GET("/threads", handlers_instance.Chat.ListThreads)
			chat.GET("/threads/:id/messages", handlers_instance.Chat.ListMessages)
			chat.POST("/with/:id/messages", handlers_instance.Chat.SendMessage)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", handlers_instance.Audit.GetAuditLogs)
		}
	}
}
