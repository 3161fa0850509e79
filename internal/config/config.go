package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries every recognized environment option. All provider
// credentials are independently optional; a missing credential disables
// that provider instead of failing startup.
type Config struct {
	NaverClientID     string
	NaverClientSecret string
	KakaoAPIKey       string

	OpenAIAPIKey    string
	AnthropicAPIKey string

	RedisURL    string
	BindAddr    string
	FrontendURL string

	WindowDays NewsWindow
	NewsPerTab int
}

// NewsWindow holds the recency thresholds per call path. The observed
// values differ by caller, so each path gets its own knob.
type NewsWindow struct {
	API        int
	Newsletter int
	Expansion  int
}

func Load() (*Config, error) {
	c := &Config{
		NaverClientID:     os.Getenv("NAVER_CLIENT_ID"),
		NaverClientSecret: os.Getenv("NAVER_CLIENT_SECRET"),
		KakaoAPIKey:       os.Getenv("KAKAO_REST_API_KEY"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		RedisURL:          getEnv("REDIS_URL", "localhost:6379"),
		BindAddr:          getEnv("API_BIND_ADDR", ":8080"),
		FrontendURL:       os.Getenv("FRONTEND_URL"),
		WindowDays: NewsWindow{
			API:        getInt("NEWS_WINDOW_DAYS", 3),
			Newsletter: getInt("NEWSLETTER_WINDOW_DAYS", 7),
			Expansion:  getInt("EXPANSION_WINDOW_DAYS", 1),
		},
		NewsPerTab: getInt("NEWS_PER_TAB", 10),
	}

	if c.WindowDays.API <= 0 {
		return nil, fmt.Errorf("NEWS_WINDOW_DAYS must be positive")
	}
	if c.WindowDays.Newsletter <= 0 {
		return nil, fmt.Errorf("NEWSLETTER_WINDOW_DAYS must be positive")
	}
	if c.WindowDays.Expansion <= 0 {
		return nil, fmt.Errorf("EXPANSION_WINDOW_DAYS must be positive")
	}
	if c.NewsPerTab <= 0 {
		return nil, fmt.Errorf("NEWS_PER_TAB must be positive")
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}
