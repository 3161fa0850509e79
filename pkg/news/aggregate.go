package news

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/carawoo/Ziply-sub000/internal/model"
)

const maxAggregateItems = 12
const maxExpansionQueries = 3

// expansionSuffixes widen a topic into follow-up queries. Declaration
// order is the merge precedence after the two direct fetches.
var expansionSuffixes = []string{"정책", "시장 전망", "규제"}

// Aggregator merges results from every configured search client for one
// topic. Client order is precedence order: the first client's items win
// URL-dedup ties, then the second's, then expansion queries in declared
// order. There is no scoring; fetch order is the ranking.
type Aggregator struct {
	clients       []SearchClient
	windowDays    int
	expansionDays int
	tabCap        int
	checkLiveness bool
	now           func() time.Time
}

func NewAggregator(clients []SearchClient, windowDays, expansionDays, tabCap int, checkLiveness bool) *Aggregator {
	if tabCap <= 0 {
		tabCap = defaultTabCap
	}
	return &Aggregator{
		clients:       clients,
		windowDays:    windowDays,
		expansionDays: expansionDays,
		tabCap:        tabCap,
		checkLiveness: checkLiveness,
		now:           time.Now,
	}
}

// Aggregate fetches all sources concurrently, joins them in declared
// order, dedups by URL, filters, and truncates. A failed source only
// loses its own slice; the rest still count.
func (a *Aggregator) Aggregate(ctx context.Context, topic string) []model.NewsItem {
	queries := a.buildQueries(topic)

	results := make([][]model.NewsItem, len(queries))
	var wg sync.WaitGroup

	for i, q := range queries {
		wg.Add(1)
		go func(i int, q query) {
			defer wg.Done()

			items, err := q.client.Search(ctx, q.topic)
			if err != nil {
				slog.Warn("source fetch failed", "source", q.client.Name(), "topic", q.topic, "error", err)
				return
			}
			results[i] = items
		}(i, q)
	}
	wg.Wait()

	now := a.now()

	// Expansion hits are noisier than direct topic fetches, so they get
	// their own tighter recency window before the merge.
	for i := len(a.clients); i < len(results); i++ {
		results[i] = keepWithinWindow(results[i], now, a.expansionDays)
	}

	merged := mergeByURL(results)

	filtered := FilterItems(ctx, merged, FilterOptions{
		Now:             now,
		WindowDays:      a.windowDays,
		RequireDomestic: true,
		CheckDomain:     true,
		CheckLiveness:   a.checkLiveness,
	})

	if len(filtered) > maxAggregateItems {
		filtered = filtered[:maxAggregateItems]
	}

	slog.Info("aggregation complete", "topic", topic, "fetched", len(merged), "kept", len(filtered))
	return filtered
}

type query struct {
	client SearchClient
	topic  string
}

// buildQueries lists the direct topic fetch per client first, then
// expansion queries against the primary client.
func (a *Aggregator) buildQueries(topic string) []query {
	var queries []query
	for _, c := range a.clients {
		queries = append(queries, query{client: c, topic: topic})
	}

	if len(a.clients) == 0 {
		return queries
	}

	primary := a.clients[0]
	for i, suffix := range expansionSuffixes {
		if i >= maxExpansionQueries {
			break
		}
		queries = append(queries, query{client: primary, topic: topic + " " + suffix})
	}
	return queries
}

// mergeByURL flattens result slices in declared order with
// first-seen-wins URL dedup, then renumbers IDs so they stay unique
// within the run.
func mergeByURL(results [][]model.NewsItem) []model.NewsItem {
	seen := make(map[string]struct{})
	var merged []model.NewsItem

	for _, batch := range results {
		for _, item := range batch {
			if item.URL == "" {
				continue
			}
			if _, dup := seen[item.URL]; dup {
				continue
			}
			seen[item.URL] = struct{}{}

			item.ID = fmt.Sprintf("%s-%d", idPrefix(item.ID), len(merged)+1)
			merged = append(merged, item)
		}
	}

	return merged
}

func keepWithinWindow(items []model.NewsItem, now time.Time, windowDays int) []model.NewsItem {
	kept := make([]model.NewsItem, 0, len(items))
	for _, item := range items {
		if withinWindow(item.PublishedAt, now, windowDays) {
			kept = append(kept, item)
		}
	}
	return kept
}

func idPrefix(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if id == "" {
		return "news"
	}
	return id
}
