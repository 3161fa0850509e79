package news

import (
	"context"
	"log/slog"
	"sync"

	"github.com/carawoo/Ziply-sub000/internal/model"
)

const defaultTabCap = 10

// tabKeywords maps each audience tab to its ordered search keywords.
// Unknown tabs fall back to defaultTabKeywords.
var tabKeywords = map[string][]string{
	model.TabBeginner: {
		"전세 보증금",
		"월세 계약",
		"주택담보대출 금리",
		"청약 방법",
	},
	model.TabNewlywed: {
		"신혼부부 특별공급",
		"신혼희망타운",
		"청년 전세자금대출",
		"생애최초 주택 구입",
	},
	model.TabInvestor: {
		"부동산 투자",
		"리츠 수익률",
		"상가 임대 수익",
		"재건축 투자",
	},
}

var defaultTabKeywords = []string{
	"부동산 뉴스",
	"아파트 시세",
	"부동산 정책",
}

// NewsForTab fetches every keyword of a tab and merges the results with
// URL dedup across keywords. Only the lightweight relevance check runs
// here; date, domain, and liveness stages are skipped so tabs stay
// responsive.
func (a *Aggregator) NewsForTab(ctx context.Context, tab string) []model.NewsItem {
	keywords, ok := tabKeywords[tab]
	if !ok {
		slog.Info("unknown tab, using default keywords", "tab", tab)
		keywords = defaultTabKeywords
	}

	results := make([][]model.NewsItem, len(keywords))
	var wg sync.WaitGroup

	for i, keyword := range keywords {
		wg.Add(1)
		go func(i int, keyword string) {
			defer wg.Done()
			results[i] = a.fetchLight(ctx, keyword)
		}(i, keyword)
	}
	wg.Wait()

	merged := mergeByURL(results)
	for i := range merged {
		merged[i].Category = tab
	}

	if len(merged) > a.tabCap {
		merged = merged[:a.tabCap]
	}

	slog.Info("tab news ready", "tab", tab, "count", len(merged))
	return merged
}

// fetchLight queries the primary client for one keyword and keeps only
// on-topic items.
func (a *Aggregator) fetchLight(ctx context.Context, keyword string) []model.NewsItem {
	if len(a.clients) == 0 {
		return nil
	}

	items, err := a.clients[0].Search(ctx, keyword)
	if err != nil {
		slog.Warn("tab fetch failed", "keyword", keyword, "error", err)
		return nil
	}

	kept := make([]model.NewsItem, 0, len(items))
	for _, item := range items {
		if item.Title == "" || item.Content == "" || item.URL == "" {
			continue
		}
		if !hasRelevantKeyword(item, false) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
