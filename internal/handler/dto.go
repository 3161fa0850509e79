package handler

import "time"

type NewsItemResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Summary     string `json:"summary,omitempty"`
	Category    string `json:"category"`
	PublishedAt string `json:"published_at"`
	URL         string `json:"url"`
	Glossary    string `json:"glossary,omitempty"`
}

type NewsListResponse struct {
	Tab   string             `json:"tab"`
	Items []NewsItemResponse `json:"items"`
	Total int                `json:"total"`
}

type SummaryRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

type SummaryResponse struct {
	Summary  string `json:"summary"`
	Glossary string `json:"glossary"`
}

type DigestResponse struct {
	Tab       string             `json:"tab"`
	LeadTitle string             `json:"lead_title"`
	BuiltAt   time.Time          `json:"built_at"`
	Items     []NewsItemResponse `json:"items"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
	Tab   string `json:"tab" binding:"required"`
}
