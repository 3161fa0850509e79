package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/carawoo/Ziply-sub000/db"
	"github.com/carawoo/Ziply-sub000/internal/config"
	"github.com/carawoo/Ziply-sub000/internal/handler"
	"github.com/carawoo/Ziply-sub000/internal/repository"
	"github.com/carawoo/Ziply-sub000/pkg/news"
	"github.com/carawoo/Ziply-sub000/pkg/summary"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	clients := []news.SearchClient{
		news.NewNaverClient(cfg.NaverClientID, cfg.NaverClientSecret),
		news.NewKakaoClient(cfg.KakaoAPIKey),
	}

	aggregator := news.NewAggregator(clients, cfg.WindowDays.API, cfg.WindowDays.Expansion, cfg.NewsPerTab, false)
	engine := summary.NewEngine(cfg.OpenAIAPIKey, cfg.AnthropicAPIKey)
	subscriberRepo := repository.NewSubscriberRepository(db.Redis)

	newsHandler := handler.NewNewsHandler(aggregator, engine, subscriberRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/news", newsHandler.GetNews)
	r.GET("/news/search", newsHandler.GetTopicNews)
	r.GET("/digest/:tab", newsHandler.GetDigest)
	r.POST("/summary", newsHandler.PostSummary)
	r.POST("/subscribers", newsHandler.PostSubscriber)
	r.DELETE("/subscribers", newsHandler.DeleteSubscriber)
	r.GET("/health", newsHandler.GetHealth)

	err = r.Run(cfg.BindAddr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
