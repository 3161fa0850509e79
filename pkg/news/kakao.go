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

const kakaoEndpoint = "https://dapi.kakao.com/v2/search/web"
const kakaoPageSize = 30

type KakaoClient struct {
	apiKey     string
	httpClient *http.Client
	endpoint   string
}

func NewKakaoClient(apiKey string) *KakaoClient {
	return &KakaoClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   kakaoEndpoint,
	}
}

func (c *KakaoClient) Name() string {
	return "kakao"
}

func (c *KakaoClient) Search(ctx context.Context, topic string) ([]model.NewsItem, error) {
	if c.apiKey == "" {
		slog.Debug("kakao credential missing, skipping", "topic", topic)
		return nil, nil
	}

	query := url.Values{}
	query.Set("query", topic)
	query.Set("size", fmt.Sprintf("%d", kakaoPageSize))
	query.Set("sort", "recency")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("kakao request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kakao fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakao status: %d", resp.StatusCode)
	}

	var raw kakaoResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("kakao decode: %w", err)
	}

	items := make([]model.NewsItem, 0, len(raw.Documents))
	for i, doc := range raw.Documents {
		items = append(items, model.NewsItem{
			ID:          fmt.Sprintf("kakao-%d", i+1),
			Title:       cleanText(doc.Title),
			Content:     cleanText(doc.Contents),
			Category:    topic,
			PublishedAt: normalizeDate(doc.Datetime, time.RFC3339),
			URL:         doc.URL,
		})
	}

	return items, nil
}

type kakaoResponse struct {
	Documents []kakaoDocument `json:"documents"`
}

type kakaoDocument struct {
	Title    string `json:"title"`
	Contents string `json:"contents"`
	URL      string `json:"url"`
	Datetime string `json:"datetime"`
}
