package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/carawoo/Ziply-sub000/internal/model"
	"github.com/carawoo/Ziply-sub000/pkg/summary"

	"github.com/gin-gonic/gin"
)

type NewsProvider interface {
	NewsForTab(ctx context.Context, tab string) []model.NewsItem
	Aggregate(ctx context.Context, topic string) []model.NewsItem
}

type Summarizer interface {
	SummarizeWithGlossary(ctx context.Context, title, content, category string) summary.Result
}

type SubscriberStore interface {
	Add(ctx context.Context, email, tab string) error
	Remove(ctx context.Context, email, tab string) error
	GetDigest(ctx context.Context, tab string) (*model.TabDigest, error)
}

type NewsHandler struct {
	provider    NewsProvider
	summarizer  Summarizer
	subscribers SubscriberStore
}

func NewNewsHandler(provider NewsProvider, summarizer Summarizer, subscribers SubscriberStore) *NewsHandler {
	return &NewsHandler{
		provider:    provider,
		summarizer:  summarizer,
		subscribers: subscribers,
	}
}

// GetNews returns the tab feed. Empty results are a valid state and come
// back as 200 with an empty list, never an error.
func (h *NewsHandler) GetNews(c *gin.Context) {
	tab := c.DefaultQuery("tab", model.TabBeginner)

	items := h.provider.NewsForTab(c.Request.Context(), tab)

	res := NewsListResponse{
		Tab:   tab,
		Items: make([]NewsItemResponse, 0, len(items)),
		Total: len(items),
	}
	for _, item := range items {
		res.Items = append(res.Items, NewsItemResponse{
			ID:          item.ID,
			Title:       item.Title,
			Content:     item.Content,
			Summary:     item.Summary,
			Category:    item.Category,
			PublishedAt: item.PublishedAt,
			URL:         item.URL,
			Glossary:    item.Glossary,
		})
	}

	c.JSON(http.StatusOK, res)
}

// GetTopicNews runs the full aggregation pipeline (strict filters,
// domain check) for an ad hoc topic query.
func (h *NewsHandler) GetTopicNews(c *gin.Context) {
	topic := c.Query("topic")
	if topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	items := h.provider.Aggregate(c.Request.Context(), topic)

	res := NewsListResponse{
		Tab:   topic,
		Items: make([]NewsItemResponse, 0, len(items)),
		Total: len(items),
	}
	for _, item := range items {
		res.Items = append(res.Items, NewsItemResponse{
			ID:          item.ID,
			Title:       item.Title,
			Content:     item.Content,
			Summary:     item.Summary,
			Category:    item.Category,
			PublishedAt: item.PublishedAt,
			URL:         item.URL,
			Glossary:    item.Glossary,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) PostSummary(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	result := h.summarizer.SummarizeWithGlossary(c.Request.Context(), req.Title, req.Content, req.Category)

	c.JSON(http.StatusOK, SummaryResponse{
		Summary:  result.Summary,
		Glossary: result.Glossary,
	})
}

func (h *NewsHandler) PostSubscriber(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and tab are required"})
		return
	}

	if err := h.subscribers.Add(c.Request.Context(), req.Email, req.Tab); err != nil {
		slog.Error("error adding subscriber", "error", err, "tab", req.Tab)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "subscribed"})
}

func (h *NewsHandler) DeleteSubscriber(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and tab are required"})
		return
	}

	if err := h.subscribers.Remove(c.Request.Context(), req.Email, req.Tab); err != nil {
		slog.Error("error removing subscriber", "error", err, "tab", req.Tab)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unsubscribed"})
}

// GetDigest serves the most recent newsletter digest built for a tab.
// A tab with no digest yet is a 404, not an error.
func (h *NewsHandler) GetDigest(c *gin.Context) {
	tab := c.Param("tab")

	digest, err := h.subscribers.GetDigest(c.Request.Context(), tab)
	if err != nil {
		slog.Error("error loading digest", "error", err, "tab", tab)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
		return
	}
	if digest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no digest for tab"})
		return
	}

	res := DigestResponse{
		Tab:       digest.Tab,
		LeadTitle: digest.LeadTitle,
		BuiltAt:   digest.BuiltAt,
		Items:     make([]NewsItemResponse, 0, len(digest.Items)),
	}
	for _, item := range digest.Items {
		res.Items = append(res.Items, NewsItemResponse{
			ID:          item.ID,
			Title:       item.Title,
			Content:     item.Content,
			Summary:     item.Summary,
			Category:    item.Category,
			PublishedAt: item.PublishedAt,
			URL:         item.URL,
			Glossary:    item.Glossary,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
