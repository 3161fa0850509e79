package news

import (
	"context"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/carawoo/Ziply-sub000/internal/model"
)

// KST is the reference timezone for every published-date computation.
var KST = time.FixedZone("KST", 9*60*60)

// SearchClient is one external news-search provider. Implementations
// soft-fail on missing credentials: they return an empty list, not an
// error, so the aggregator can keep going with whatever is configured.
type SearchClient interface {
	Search(ctx context.Context, topic string) ([]model.NewsItem, error)
	Name() string
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)
var spacePattern = regexp.MustCompile(`\s+`)

// cleanText strips provider markup (<b> highlights and the like),
// decodes HTML entities, and squeezes whitespace.
func cleanText(raw string) string {
	if raw == "" {
		return ""
	}
	out := tagPattern.ReplaceAllString(raw, "")
	out = html.UnescapeString(out)
	out = spacePattern.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// normalizeDate converts a provider timestamp to a YYYY-MM-DD date in
// KST. Hour precision is discarded on purpose; the filter pipeline only
// reasons in whole days.
func normalizeDate(raw string, layouts ...string) string {
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.In(KST).Format("2006-01-02")
		}
	}
	return ""
}
