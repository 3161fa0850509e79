package news

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/carawoo/Ziply-sub000/internal/model"

	"golang.org/x/time/rate"
)

// primaryKeywords is the core real-estate vocabulary. At least one hit
// in title or content is required for an item to count as on-topic.
var primaryKeywords = []string{
	"부동산", "아파트", "주택", "전세", "월세", "청약", "분양",
	"재건축", "재개발", "매매", "집값", "임대",
}

// secondaryKeywords are adjacent finance terms. In strict mode they only
// count when they appear in the title.
var secondaryKeywords = []string{
	"금리", "대출", "규제", "공급", "시세", "거래량", "미분양",
}

// foreignKeywords in a title reject the item outright, regardless of any
// other signal.
var foreignKeywords = []string{
	"미국", "중국", "일본", "유럽", "영국", "베트남", "홍콩",
	"뉴욕", "런던", "연준", "Fed", "파월", "ECB", "일본은행",
	"달러", "엔화", "위안",
}

// domesticKeywords anchor the item to the Korean market.
var domesticKeywords = []string{
	"한국", "국내", "서울", "수도권", "경기", "인천", "부산",
	"지방", "전국", "정부", "국토부", "국토교통부", "한국은행",
	"부동산원", "LH",
}

// FilterOptions selects which stages run and how strict they are. Now is
// injected so the date-window stage stays deterministic under test.
type FilterOptions struct {
	Now              time.Time
	WindowDays       int
	TitleKeywordOnly bool
	RequireDomestic  bool
	CheckDomain      bool
	CheckLiveness    bool
}

const livenessTimeout = 6 * time.Second

// livenessLimiter bounds concurrent HEAD probes across a whole run so a
// big batch cannot hammer third-party sites.
var livenessLimiter = rate.NewLimiter(rate.Limit(10), 5)

var livenessClient = &http.Client{
	Timeout: livenessTimeout,
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		if len(via) >= 5 {
			return http.ErrUseLastResponse
		}
		return nil
	},
}

// FilterItems applies the stage sequence in order; an item must pass
// every active stage to survive. Output preserves input order.
func FilterItems(ctx context.Context, items []model.NewsItem, opts FilterOptions) []model.NewsItem {
	kept := make([]model.NewsItem, 0, len(items))

	for _, item := range items {
		if item.Title == "" || item.Content == "" || item.URL == "" {
			continue
		}
		if opts.WindowDays > 0 && !withinWindow(item.PublishedAt, opts.Now, opts.WindowDays) {
			continue
		}
		if !hasRelevantKeyword(item, opts.TitleKeywordOnly) {
			continue
		}
		if opts.RequireDomestic && !isDomestic(item) {
			continue
		}
		parsed, ok := parseArticleURL(item.URL)
		if !ok {
			continue
		}
		if opts.CheckDomain && !IsAcceptableDomain(parsed.Hostname()) {
			continue
		}
		kept = append(kept, item)
	}

	if opts.CheckLiveness {
		kept = filterAlive(ctx, kept)
	}

	return kept
}

// withinWindow compares calendar days in KST; same-day always passes.
func withinWindow(published string, now time.Time, windowDays int) bool {
	pub, err := time.ParseInLocation("2006-01-02", published, KST)
	if err != nil {
		return false
	}

	today := now.In(KST)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, KST)

	diff := int(today.Sub(pub).Hours() / 24)
	if diff < 0 {
		diff = -diff
	}
	return diff <= windowDays
}

func hasRelevantKeyword(item model.NewsItem, titleOnly bool) bool {
	title := strings.ToLower(item.Title)
	content := strings.ToLower(item.Content)

	if titleOnly {
		return containsAny(title, primaryKeywords) || containsAny(title, secondaryKeywords)
	}

	if containsAny(title, primaryKeywords) || containsAny(content, primaryKeywords) {
		return true
	}
	// Secondary terms alone are too weak outside the title.
	return containsAny(title, secondaryKeywords)
}

// isDomestic rejects on any foreign-market keyword in the title before
// looking for a domestic anchor. The foreign check overrides everything.
func isDomestic(item model.NewsItem) bool {
	title := strings.ToLower(item.Title)
	if containsAny(title, foreignKeywords) {
		return false
	}

	content := strings.ToLower(item.Content)
	return containsAny(title, domesticKeywords) || containsAny(content, domesticKeywords)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func parseArticleURL(raw string) (*url.URL, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, false
	}
	return parsed, true
}

// filterAlive probes every non-trusted URL concurrently and joins the
// results back in input order.
func filterAlive(ctx context.Context, items []model.NewsItem) []model.NewsItem {
	alive := make([]bool, len(items))
	var wg sync.WaitGroup

	for i, item := range items {
		parsed, ok := parseArticleURL(item.URL)
		if ok && isTrustedHost(parsed.Hostname()) {
			alive[i] = true
			continue
		}

		wg.Add(1)
		go func(i int, articleURL string) {
			defer wg.Done()
			alive[i] = isURLAlive(ctx, articleURL)
		}(i, item.URL)
	}
	wg.Wait()

	kept := make([]model.NewsItem, 0, len(items))
	for i, item := range items {
		if alive[i] {
			kept = append(kept, item)
		}
	}
	return kept
}

func isURLAlive(ctx context.Context, articleURL string) bool {
	if err := livenessLimiter.Wait(ctx); err != nil {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, articleURL, nil)
	if err != nil {
		return false
	}
	// Browser-like headers; several Korean news sites reject bare
	// Go-http-client requests.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := livenessClient.Do(req)
	if err != nil {
		slog.Debug("liveness probe failed", "url", articleURL, "error", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 400
}
