package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/carawoo/Ziply-sub000/db"
	"github.com/carawoo/Ziply-sub000/internal/config"
	"github.com/carawoo/Ziply-sub000/internal/model"
	"github.com/carawoo/Ziply-sub000/internal/repository"
	"github.com/carawoo/Ziply-sub000/pkg/news"
	"github.com/carawoo/Ziply-sub000/pkg/summary"

	"github.com/joho/godotenv"
)

// Items per tab in the digest; the mail template shows four.
const digestSize = 4

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

	aggregator := news.NewAggregator(clients, cfg.WindowDays.Newsletter, cfg.WindowDays.Expansion, cfg.NewsPerTab, true)
	engine := summary.NewEngine(cfg.OpenAIAPIKey, cfg.AnthropicAPIKey)
	subscriberRepo := repository.NewSubscriberRepository(db.Redis)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	tabs := []string{model.TabBeginner, model.TabNewlywed, model.TabInvestor}

	for _, tab := range tabs {
		subscribers, err := subscriberRepo.ListByTab(ctx, tab)
		if err != nil {
			slog.Error("error listing subscribers", "tab", tab, "error", err)
			continue
		}
		if len(subscribers) == 0 {
			slog.Info("no subscribers for tab, skipping", "tab", tab)
			continue
		}

		items := aggregator.NewsForTab(ctx, tab)
		if len(items) == 0 {
			slog.Info("no news for tab today", "tab", tab)
			continue
		}
		if len(items) > digestSize {
			items = items[:digestSize]
		}

		// Summarize the lead story; the rest go out title-only.
		lead := &items[0]
		result := engine.SummarizeWithGlossary(ctx, lead.Title, lead.Content, tab)
		lead.Summary = result.Summary
		lead.Glossary = result.Glossary

		digest := &model.TabDigest{
			Tab:       tab,
			Items:     items,
			BuiltAt:   time.Now(),
			LeadTitle: lead.Title,
		}

		if err := subscriberRepo.SaveDigest(ctx, digest); err != nil {
			slog.Error("error saving digest", "tab", tab, "error", err)
			continue
		}

		slog.Info("digest built", "tab", tab, "items", len(items), "subscribers", len(subscribers), "lead", digest.LeadTitle)
	}
}
