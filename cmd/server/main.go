package main

import (
	"context"
	"fmt"
	"log"

	"github.com/lumenpay/admin-gateway/config"
	"github.com/lumenpay/admin-gateway/internal/api"
	"github.com/lumenpay/admin-gateway/internal/api/handler"
	"github.com/lumenpay/admin-gateway/internal/cache"
	"github.com/lumenpay/admin-gateway/internal/database"
	"github.com/lumenpay/admin-gateway/internal/pkg/logger"
	"github.com/lumenpay/admin-gateway/internal/pkg/ws"
	"github.com/lumenpay/admin-gateway/internal/repository"
	"github.com/lumenpay/admin-gateway/internal/service"
	"github.com/lumenpay/admin-gateway/internal/session"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg := logger.New(cfg.Logging.Level)

	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to connect redis")
	}
	logg.Info().Msg("Redis connected")

	db, err := database.NewSQLite(&cfg.Database)
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to open audit database")
	}
	logg.Info().Msg("Audit database ready")

	client := upstream.New(&cfg.Upstream, logg)

	cacheStore := cache.NewStore(cfg.Cache.TTL(), logg)
	bus := cache.NewBus(rdb, logg)
	invalidator := cache.NewInvalidator(cacheStore, bus, logg)

	janitor, err := cache.NewJanitor(cacheStore, cfg.Cache.JanitorSpec, logg)
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to schedule cache janitor")
	}
	janitor.Start()
	defer janitor.Stop()

	sessionStore := session.NewStore(rdb, cfg.Session.TTL())
	sessions := session.NewManager(sessionStore, client, cfg.JWT.Secret, cfg.JWT.ExpireHours, logg)

	wsHub := ws.NewHub()

	// Invalidations published by other replicas drop our local entries;
	// every invalidation, ours included, is pushed to connected admin UIs.
	go func() {
		err := bus.Subscribe(context.Background(), func(msg *cache.InvalidationMessage) {
			if msg.Origin != bus.Origin() {
				resources := make([]cache.Resource, 0, len(msg.Resources))
				for _, r := range msg.Resources {
					resources = append(resources, cache.Resource(r))
				}
				cacheStore.Invalidate(resources...)
			}

			if err := wsHub.Broadcast(&ws.Message{
				Type: ws.TypeCacheInvalidated,
				Data: map[string]interface{}{"resources": msg.Resources},
			}); err != nil {
				logg.Warn().Err(err).Msg("Failed to push invalidation to clients")
			}
		})
		if err != nil && err != context.Canceled {
			logg.Error().Err(err).Msg("Invalidation subscriber stopped")
		}
	}()
	logg.Info().Str("channel", cache.ChannelInvalidation).Msg("Invalidation subscriber started")

	auditRepo := repository.NewAuditRepository(db)

	botService := service.NewBotService(client, cacheStore, invalidator, auditRepo, logg)
	channelService := service.NewChannelService(client, cacheStore, invalidator, auditRepo, logg)
	planService := service.NewPlanService(client, cacheStore, invalidator, auditRepo, logg)
	subscriberService := service.NewSubscriberService(client, cacheStore, invalidator, auditRepo, logg)
	paymentService := service.NewPaymentService(client, cacheStore, logg)
	promoCodeService := service.NewPromoCodeService(client, cacheStore, invalidator, auditRepo, logg)
	broadcastService := service.NewBroadcastService(client, cacheStore, invalidator, auditRepo, wsHub, logg)
	settingsService := service.NewSettingsService(client, cacheStore, invalidator, auditRepo, logg)
	dashboardService := service.NewDashboardService(client, cacheStore, logg)
	auditService := service.NewAuditService(auditRepo)

	authHandler := handler.NewAuthHandler(sessions, cfg.JWT.ExpireHours)
	botsHandler := handler.NewBotsHandler(botService)
	channelsHandler := handler.NewChannelsHandler(channelService)
	plansHandler := handler.NewPlansHandler(planService)
	subscribersHandler := handler.NewSubscribersHandler(subscriberService)
	paymentsHandler := handler.NewPaymentsHandler(paymentService)
	promoCodesHandler := handler.NewPromoCodesHandler(promoCodeService)
	broadcastsHandler := handler.NewBroadcastsHandler(broadcastService)
	settingsHandler := handler.NewSettingsHandler(settingsService, auditService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	websocketHandler := handler.NewWebSocketHandler(wsHub, sessions, logg)

	router := api.NewRouter(
		authHandler,
		botsHandler,
		channelsHandler,
		plansHandler,
		subscribersHandler,
		paymentsHandler,
		promoCodesHandler,
		broadcastsHandler,
		settingsHandler,
		dashboardHandler,
		websocketHandler,
		sessions,
		cfg,
		logg,
	)
	engine := router.Setup()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logg.Info().Str("addr", addr).Msg("Server starting")
	if err := engine.Run(addr); err != nil {
		logg.Fatal().Err(err).Msg("Failed to start server")
	}
}
