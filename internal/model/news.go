package model

import "time"

const (
	TabBeginner = "beginner"
	TabNewlywed = "newlywed"
	TabInvestor = "investor"
)

// NewsItem is built fresh on every aggregation run and never stored.
// ID is only unique within a single run.
type NewsItem struct {
	ID          string
	Title       string
	Content     string
	Summary     string
	Category    string
	PublishedAt string // YYYY-MM-DD in KST
	URL         string
	Glossary    string
}

type Subscriber struct {
	Email     string
	Tab       string
	CreatedAt time.Time
}

type TabDigest struct {
	Tab       string
	Items     []NewsItem
	BuiltAt   time.Time
	LeadTitle string
}
