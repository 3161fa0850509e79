package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestKakaoSearch(t *testing.T) {
	payload := map[string]interface{}{
		"documents": []map[string]interface{}{
			{
				"title":    "수도권 <b>청약</b> 경쟁률 발표",
				"contents": "이번 달 수도권 청약 경쟁률이 집계됐다.",
				"url":      "https://biz.example.com/article/9",
				"datetime": "2026-08-25T10:15:00+09:00",
			},
		},
	}

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &KakaoClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
		endpoint:   srv.URL,
	}

	items, err := client.Search(context.Background(), "청약")

	assert.Equal(t, nil, err)
	assert.Equal(t, "KakaoAK test-key", gotAuth)
	assert.Equal(t, 1, len(items))

	item := items[0]
	assert.Equal(t, "kakao-1", item.ID)
	assert.Equal(t, "수도권 청약 경쟁률 발표", item.Title)
	assert.Equal(t, "이번 달 수도권 청약 경쟁률이 집계됐다.", item.Content)
	assert.Equal(t, "https://biz.example.com/article/9", item.URL)
	assert.Equal(t, "2026-08-25", item.PublishedAt)
}

func TestKakaoSearchMissingCredential(t *testing.T) {
	client := NewKakaoClient("")

	items, err := client.Search(context.Background(), "부동산")

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(items))
}

func TestKakaoSearchMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	client := &KakaoClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
		endpoint:   srv.URL,
	}

	_, err := client.Search(context.Background(), "부동산")

	assert.NotEqual(t, nil, err)
}
