package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/carawoo/Ziply-sub000/internal/model"
)

const naverEndpoint = "https://openapi.naver.com/v1/search/news.json"
const naverPageSize = 30

type NaverClient struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	endpoint     string
}

func NewNaverClient(clientID, clientSecret string) *NaverClient {
	return &NaverClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		endpoint:     naverEndpoint,
	}
}

func (c *NaverClient) Name() string {
	return "naver"
}

func (c *NaverClient) Search(ctx context.Context, topic string) ([]model.NewsItem, error) {
	if c.clientID == "" || c.clientSecret == "" {
		slog.Debug("naver credentials missing, skipping", "topic", topic)
		return nil, nil
	}

	query := url.Values{}
	query.Set("query", topic)
	query.Set("display", fmt.Sprintf("%d", naverPageSize))
	query.Set("sort", "date")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("naver request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("naver fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("naver status: %d", resp.StatusCode)
	}

	var raw naverResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("naver decode: %w", err)
	}

	items := make([]model.NewsItem, 0, len(raw.Items))
	for i, item := range raw.Items {
		link := item.OriginalLink
		if link == "" {
			link = item.Link
		}

		items = append(items, model.NewsItem{
			ID:          fmt.Sprintf("naver-%d", i+1),
			Title:       cleanText(item.Title),
			Content:     cleanText(item.Description),
			Category:    topic,
			PublishedAt: normalizeDate(item.PubDate, time.RFC1123Z),
			URL:         link,
		})
	}

	return items, nil
}

type naverResponse struct {
	Items []naverItem `json:"items"`
}

type naverItem struct {
	Title        string `json:"title"`
	OriginalLink string `json:"originallink"`
	Link         string `json:"link"`
	Description  string `json:"description"`
	PubDate      string `json:"pubDate"`
}
