package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lumenpay/admin-gateway/config"
	"github.com/lumenpay/admin-gateway/internal/api/handler"
	"github.com/lumenpay/admin-gateway/internal/api/middleware"
	"github.com/lumenpay/admin-gateway/internal/session"
)

type Router struct {
	authHandler        *handler.AuthHandler
	botsHandler        *handler.BotsHandler
	channelsHandler    *handler.ChannelsHandler
	plansHandler       *handler.PlansHandler
	subscribersHandler *handler.SubscribersHandler
	paymentsHandler    *handler.PaymentsHandler
	promoCodesHandler  *handler.PromoCodesHandler
	broadcastsHandler  *handler.BroadcastsHandler
	settingsHandler    *handler.SettingsHandler
	dashboardHandler   *handler.DashboardHandler
	websocketHandler   *handler.WebSocketHandler
	sessions           *session.Manager
	cfg                *config.Config
	logger             zerolog.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	botsHandler *handler.BotsHandler,
	channelsHandler *handler.ChannelsHandler,
	plansHandler *handler.PlansHandler,
	subscribersHandler *handler.SubscribersHandler,
	paymentsHandler *handler.PaymentsHandler,
	promoCodesHandler *handler.PromoCodesHandler,
	broadcastsHandler *handler.BroadcastsHandler,
	settingsHandler *handler.SettingsHandler,
	dashboardHandler *handler.DashboardHandler,
	websocketHandler *handler.WebSocketHandler,
	sessions *session.Manager,
	cfg *config.Config,
	logger zerolog.Logger,
) *Router {
	return &Router{
		authHandler:        authHandler,
		botsHandler:        botsHandler,
		channelsHandler:    channelsHandler,
		plansHandler:       plansHandler,
		subscribersHandler: subscribersHandler,
		paymentsHandler:    paymentsHandler,
		promoCodesHandler:  promoCodesHandler,
		broadcastsHandler:  broadcastsHandler,
		settingsHandler:    settingsHandler,
		dashboardHandler:   dashboardHandler,
		websocketHandler:   websocketHandler,
		sessions:           sessions,
		cfg:                cfg,
		logger:             logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLog(r.logger))
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api/v1")
	{
		// WebSocket authenticates via query token
		api.GET("/ws", r.websocketHandler.Handle)

		// public
		api.POST("/auth/login", r.authHandler.Login)

		// everything else sits behind the route guard
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.sessions))
		{
			auth := authenticated.Group("/auth")
			{
				auth.GET("/me", r.authHandler.Me)
				auth.POST("/logout", r.authHandler.Logout)
			}

			bots := authenticated.Group("/bots")
			{
				bots.GET("", r.botsHandler.List)
				bots.POST("", r.botsHandler.Create)
				bots.GET("/:id", r.botsHandler.Get)
				bots.PUT("/:id", r.botsHandler.Update)
				bots.PUT("/:id/token", r.botsHandler.UpdateToken)
				bots.DELETE("/:id", r.botsHandler.Delete)
			}

			channels := authenticated.Group("/channels")
			{
				channels.GET("", r.channelsHandler.List)
				channels.POST("", r.channelsHandler.Create)
				channels.PUT("/:id", r.channelsHandler.Update)
				channels.DELETE("/:id", r.channelsHandler.Delete)
			}

			plans := authenticated.Group("/plans")
			{
				plans.GET("", r.plansHandler.List)
				plans.POST("", r.plansHandler.Create)
				plans.PUT("/:id", r.plansHandler.Update)
				plans.DELETE("/:id", r.plansHandler.Delete)
			}

			subscribers := authenticated.Group("/subscribers")
			{
				subscribers.GET("", r.subscribersHandler.List)
				subscribers.POST("", r.subscribersHandler.Create)
				subscribers.GET("/export", r.subscribersHandler.Export)
				subscribers.PUT("/:id", r.subscribersHandler.Update)
				subscribers.DELETE("/:id", r.subscribersHandler.Delete)
				subscribers.POST("/:id/extend", r.subscribersHandler.Extend)
				subscribers.DELETE("/:id/subscriptions/:subscriptionID", r.subscribersHandler.CancelSubscription)
			}

			payments := authenticated.Group("/payments")
			{
				payments.GET("", r.paymentsHandler.List)
				payments.GET("/export", r.paymentsHandler.Export)
			}

			promoCodes := authenticated.Group("/promo-codes")
			{
				promoCodes.GET("", r.promoCodesHandler.List)
				promoCodes.POST("", r.promoCodesHandler.Create)
				promoCodes.GET("/:id", r.promoCodesHandler.Get)
				promoCodes.PUT("/:id", r.promoCodesHandler.Update)
				promoCodes.DELETE("/:id", r.promoCodesHandler.Delete)
			}

			broadcasts := authenticated.Group("/broadcasts")
			{
				broadcasts.GET("", r.broadcastsHandler.List)
				broadcasts.POST("", r.broadcastsHandler.Create)
				broadcasts.GET("/:id", r.broadcastsHandler.Get)
				broadcasts.PUT("/:id", r.broadcastsHandler.Update)
				broadcasts.DELETE("/:id", r.broadcastsHandler.Delete)
				broadcasts.GET("/:id/recipients/count", r.broadcastsHandler.RecipientsCount)
				broadcasts.POST("/:id/send", r.broadcastsHandler.Send)
			}

			authenticated.GET("/settings/yookassa", r.settingsHandler.GetYooKassa)
			authenticated.PUT("/settings/yookassa", r.settingsHandler.UpdateYooKassa)
			authenticated.GET("/audit", r.settingsHandler.ListAudit)

			authenticated.GET("/dashboard/summary", r.dashboardHandler.Summary)
		}
	}

	return engine
}
