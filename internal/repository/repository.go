package repository

import (
	"context"

	"github.com/jorchsg/fashion-eccommerce/internal/domain"
)

// CartRepository defines the interface for cart persistence. Only the line
// collection is durable; drawer visibility never reaches the store.
type CartRepository interface {
	// Get retrieves a cart by its user ID.
	Get(ctx context.Context, userID string) (*domain.Cart, error)

	// Save persists a cart, overwriting any existing cart for the user.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes a cart from the store by the user ID.
	Delete(ctx context.Context, userID string) error
}
