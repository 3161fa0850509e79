package news

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/carawoo/Ziply-sub000/internal/model"

	"github.com/go-playground/assert/v2"
)

// fakeClient serves canned items per query and records call order.
type fakeClient struct {
	name  string
	items map[string][]model.NewsItem
	err   error
}

func (f *fakeClient) Name() string { return f.name }

func (f *fakeClient) Search(ctx context.Context, topic string) ([]model.NewsItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items[topic], nil
}

func fakeItem(source string, n int, url string) model.NewsItem {
	return model.NewsItem{
		ID:          fmt.Sprintf("%s-%d", source, n),
		Title:       "서울 아파트 전세 시장 동향",
		Content:     "서울 전세 가격 흐름을 다룬 기사다.",
		Category:    "전세",
		PublishedAt: testNow.Format("2006-01-02"),
		URL:         url,
	}
}

func newTestAggregator(clients ...SearchClient) *Aggregator {
	a := NewAggregator(clients, 3, 1, 0, false)
	a.now = func() time.Time { return testNow }
	return a
}

func TestAggregateDedupsByURLFirstSeenWins(t *testing.T) {
	shared := "https://www.yna.co.kr/view/777"

	fetcherA := &fakeClient{name: "naver", items: map[string][]model.NewsItem{
		"전세": {fakeItem("naver", 1, shared)},
	}}
	duplicate := fakeItem("kakao", 1, shared)
	duplicate.Title = "같은 기사를 다룬 다른 제목의 아파트 전세 뉴스"
	fetcherB := &fakeClient{name: "kakao", items: map[string][]model.NewsItem{
		"전세": {duplicate},
	}}

	got := newTestAggregator(fetcherA, fetcherB).Aggregate(context.Background(), "전세")

	assert.Equal(t, 1, len(got))
	// First declared source wins the tie.
	assert.Equal(t, "서울 아파트 전세 시장 동향", got[0].Title)
	assert.Equal(t, true, strings.HasPrefix(got[0].ID, "naver-"))
}

func TestAggregateNoDuplicateURLs(t *testing.T) {
	fetcherA := &fakeClient{name: "naver", items: map[string][]model.NewsItem{
		"전세": {
			fakeItem("naver", 1, "https://www.yna.co.kr/view/1"),
			fakeItem("naver", 2, "https://www.yna.co.kr/view/2"),
			fakeItem("naver", 3, "https://www.yna.co.kr/view/1"),
		},
	}}

	got := newTestAggregator(fetcherA).Aggregate(context.Background(), "전세")

	seen := map[string]bool{}
	for _, item := range got {
		assert.Equal(t, false, seen[item.URL])
		seen[item.URL] = true
	}
	assert.Equal(t, 2, len(got))
}

func TestAggregatePartialResultsOnSourceFailure(t *testing.T) {
	fetcherA := &fakeClient{name: "naver", err: errors.New("provider down")}
	fetcherB := &fakeClient{name: "kakao", items: map[string][]model.NewsItem{
		"전세": {fakeItem("kakao", 1, "https://www.yna.co.kr/view/5")},
	}}

	got := newTestAggregator(fetcherA, fetcherB).Aggregate(context.Background(), "전세")

	assert.Equal(t, 1, len(got))
	assert.Equal(t, true, strings.HasPrefix(got[0].ID, "kakao-"))
}

func TestAggregateIncludesExpansionQueries(t *testing.T) {
	fetcherA := &fakeClient{name: "naver", items: map[string][]model.NewsItem{
		"전세":       {fakeItem("naver", 1, "https://www.yna.co.kr/view/1")},
		"전세 정책":    {fakeItem("naver", 1, "https://www.yna.co.kr/view/2")},
		"전세 시장 전망": {fakeItem("naver", 1, "https://www.yna.co.kr/view/3")},
		"전세 규제":    {fakeItem("naver", 1, "https://www.yna.co.kr/view/4")},
	}}

	got := newTestAggregator(fetcherA).Aggregate(context.Background(), "전세")

	assert.Equal(t, 4, len(got))
	// Direct topic fetch keeps precedence over expansions.
	assert.Equal(t, "https://www.yna.co.kr/view/1", got[0].URL)
}

func TestAggregateUniqueIDsWithinRun(t *testing.T) {
	fetcherA := &fakeClient{name: "naver", items: map[string][]model.NewsItem{
		"전세":    {fakeItem("naver", 1, "https://www.yna.co.kr/view/1")},
		"전세 정책": {fakeItem("naver", 1, "https://www.yna.co.kr/view/2")},
	}}

	got := newTestAggregator(fetcherA).Aggregate(context.Background(), "전세")

	ids := map[string]bool{}
	for _, item := range got {
		assert.Equal(t, false, ids[item.ID])
		ids[item.ID] = true
	}
}

func TestAggregateTruncatesToBound(t *testing.T) {
	var items []model.NewsItem
	for i := 0; i < 30; i++ {
		items = append(items, fakeItem("naver", i+1, fmt.Sprintf("https://www.yna.co.kr/view/%d", i)))
	}
	fetcherA := &fakeClient{name: "naver", items: map[string][]model.NewsItem{"전세": items}}

	got := newTestAggregator(fetcherA).Aggregate(context.Background(), "전세")

	assert.Equal(t, maxAggregateItems, len(got))
}

func TestAggregateExpansionWindowTighterThanDirect(t *testing.T) {
	stale := fakeItem("naver", 1, "https://www.yna.co.kr/view/old")
	stale.PublishedAt = testNow.AddDate(0, 0, -5).Format("2006-01-02")

	fetcherA := &fakeClient{name: "naver", items: map[string][]model.NewsItem{
		"전세 정책": {stale},
	}}

	a := NewAggregator([]SearchClient{fetcherA}, 7, 1, 0, false)
	a.now = func() time.Time { return testNow }

	// Five days old fits the direct window but not the expansion window,
	// and the item only surfaced through an expansion query.
	assert.Equal(t, 0, len(a.Aggregate(context.Background(), "전세")))
}

func TestAggregateExpansionWindowKeepsDirectHits(t *testing.T) {
	stale := fakeItem("naver", 1, "https://www.yna.co.kr/view/old")
	stale.PublishedAt = testNow.AddDate(0, 0, -5).Format("2006-01-02")

	fetcherA := &fakeClient{name: "naver", items: map[string][]model.NewsItem{
		"전세": {stale},
	}}

	a := NewAggregator([]SearchClient{fetcherA}, 7, 1, 0, false)
	a.now = func() time.Time { return testNow }

	got := a.Aggregate(context.Background(), "전세")

	assert.Equal(t, 1, len(got))
	assert.Equal(t, "https://www.yna.co.kr/view/old", got[0].URL)
}

func TestAggregateAllSourcesFail(t *testing.T) {
	fetcherA := &fakeClient{name: "naver", err: errors.New("timeout")}
	fetcherB := &fakeClient{name: "kakao", err: errors.New("timeout")}

	got := newTestAggregator(fetcherA, fetcherB).Aggregate(context.Background(), "전세")

	assert.Equal(t, 0, len(got))
}
