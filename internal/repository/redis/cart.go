package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jorchsg/fashion-eccommerce/internal/domain"
	apperrors "github.com/jorchsg/fashion-eccommerce/pkg/errors"
)

const keyPrefix = "fashion-cart:"

// CartRepository implements repository.CartRepository using Redis.
type CartRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCartRepository creates a new Redis-backed cart repository. A zero TTL
// keeps carts forever.
func NewCartRepository(client *redis.Client, ttl time.Duration, logger *slog.Logger) *CartRepository {
	return &CartRepository{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get retrieves a cart by user ID. A missing key maps to not-found so
// callers can start an empty cart. A corrupted payload is treated the same
// way: the damage is logged and the stored value discarded, so a bad payload
// never surfaces past this boundary.
func (r *CartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	key := keyPrefix + userID

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("cart", userID)
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		r.logger.WarnContext(ctx, "discarding corrupted cart payload",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		_ = r.client.Del(ctx, key).Err()
		return nil, apperrors.NotFound("cart", userID)
	}

	return &cart, nil
}

// Save persists a cart with the configured TTL.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	key := keyPrefix + cart.UserID

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}

	return nil
}

// Delete removes a cart by user ID.
func (r *CartRepository) Delete(ctx context.Context, userID string) error {
	key := keyPrefix + userID

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}

	return nil
}
