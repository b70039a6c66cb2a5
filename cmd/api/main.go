package main

import (
	"app/internal/cache"
	"app/internal/config"
	"app/internal/events"
	"app/internal/handler"
	"app/internal/infra/apiclient"
	"app/internal/server"
	"app/internal/usecase"
	"app/pkg/logger"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		Service: "storefront-gateway",
		Env:     cfg.GoEnv,
		Level:   cfg.LogLevel,
	})

	//外部APIの共有クライアント
	client := apiclient.New(cfg.APIBaseURL, cfg.UpstreamTimeout, log)

	//Repository（外部API実装）生成
	cartRepo := apiclient.NewCartAPI(client)
	orderRepo := apiclient.NewOrderAPI(client)
	mealRepo := apiclient.NewMealAPI(client)
	providerRepo := apiclient.NewProviderAPI(client)
	reviewRepo := apiclient.NewReviewAPI(client)
	adminRepo := apiclient.NewAdminAPI(client)

	//プロセス内の共有部品
	bus := events.NewBus()
	suggestCache := cache.NewSuggestionCache(cfg.SuggestCacheTTL)

	//Meal変更でサジェストキャッシュを捨てる
	bus.Subscribe(events.TopicMealChanged, func(ev events.Event) {
		suggestCache.Purge()
	})
	bus.Subscribe(events.TopicCartUpdated, func(ev events.Event) {
		log.Debug("cart updated", "user_id", ev.UserID)
	})

	//Usecase生成
	cartUC := usecase.NewCartUsecase(cartRepo, mealRepo, bus, log, cfg.DeliveryFee, cfg.TaxAmount)
	orderUC := usecase.NewOrderUsecase(orderRepo, cartRepo, bus, log, uuid.NewString)
	mealUC := usecase.NewMealUsecase(mealRepo, suggestCache, bus)
	providerUC := usecase.NewProviderUsecase(providerRepo, mealRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo)
	adminUC := usecase.NewAdminUsecase(adminRepo)

	//Handler生成
	hs := server.Handlers{
		Meal:     handler.NewMealHandler(mealUC),
		Cart:     handler.NewCartHandler(cartUC),
		Order:    handler.NewOrderHandler(orderUC),
		Provider: handler.NewProviderHandler(providerUC),
		Review:   handler.NewReviewHandler(reviewUC),
		Admin:    handler.NewAdminHandler(adminUC),
	}

	//Server起動
	e := server.New(cfg)
	server.RegisterRoutes(e, cfg, hs)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	log.Info("starting server", "addr", addr, "api_base_url", cfg.APIBaseURL)
	if err := server.Start(e, addr); err != nil {
		panic(err)
	}
}
