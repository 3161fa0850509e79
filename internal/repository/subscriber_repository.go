package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/carawoo/Ziply-sub000/db"
	"github.com/carawoo/Ziply-sub000/internal/model"

	"github.com/redis/go-redis/v9"
)

// SubscriberRepository keeps subscribers in a Redis hash per tab:
// ziply:subscribers:<tab> maps email -> subscription timestamp.
type SubscriberRepository struct {
	client *redis.Client
}

func NewSubscriberRepository(client *redis.Client) *SubscriberRepository {
	return &SubscriberRepository{client: client}
}

func (r *SubscriberRepository) Add(ctx context.Context, email, tab string) error {
	key := db.SubscriberKeyPrefix + tab
	return r.client.HSet(ctx, key, email, time.Now().Format(time.RFC3339)).Err()
}

func (r *SubscriberRepository) Remove(ctx context.Context, email, tab string) error {
	key := db.SubscriberKeyPrefix + tab
	return r.client.HDel(ctx, key, email).Err()
}

func (r *SubscriberRepository) ListByTab(ctx context.Context, tab string) ([]model.Subscriber, error) {
	key := db.SubscriberKeyPrefix + tab

	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("list subscribers for %q: %w", tab, err)
	}

	subscribers := make([]model.Subscriber, 0, len(fields))
	for email, raw := range fields {
		createdAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			createdAt = time.Time{}
		}
		subscribers = append(subscribers, model.Subscriber{
			Email:     email,
			Tab:       tab,
			CreatedAt: createdAt,
		})
	}

	return subscribers, nil
}

// SaveDigest stores the latest built digest for a tab so the delivery
// layer can pick it up.
func (r *SubscriberRepository) SaveDigest(ctx context.Context, digest *model.TabDigest) error {
	payload, err := json.Marshal(digest)
	if err != nil {
		return fmt.Errorf("marshal digest for %q: %w", digest.Tab, err)
	}

	key := db.DigestKeyPrefix + digest.Tab
	return r.client.Set(ctx, key, payload, 48*time.Hour).Err()
}

func (r *SubscriberRepository) GetDigest(ctx context.Context, tab string) (*model.TabDigest, error) {
	key := db.DigestKeyPrefix + tab

	raw, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get digest for %q: %w", tab, err)
	}

	var digest model.TabDigest
	if err := json.Unmarshal([]byte(raw), &digest); err != nil {
		return nil, fmt.Errorf("decode digest for %q: %w", tab, err)
	}

	return &digest, nil
}
