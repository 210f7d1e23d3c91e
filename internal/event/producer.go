package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jorchsg/fashion-eccommerce/internal/domain"
	pkgkafka "github.com/jorchsg/fashion-eccommerce/pkg/kafka"
)

// Kafka topics for storefront domain events.
const (
	TopicCartUpdated          = "storefront.cart.updated"
	TopicCartCleared          = "storefront.cart.cleared"
	TopicWishlistUpdated      = "storefront.wishlist.updated"
	TopicNewsletterSubscribed = "storefront.newsletter.subscribed"
)

// Aggregate types.
const (
	AggregateTypeCart       = "cart"
	AggregateTypeWishlist   = "wishlist"
	AggregateTypeNewsletter = "newsletter"
)

// Source identifier for events originating from this service.
const SourceStorefront = "storefront"

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	UserID    string         `json:"user_id"`
	Items     []CartItemData `json:"items"`
	ItemCount int            `json:"item_count"`
	Subtotal  int64          `json:"subtotal"`
}

// CartItemData is the line payload within cart events.
type CartItemData struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	UserID string `json:"user_id"`
}

// WishlistUpdatedData is the payload for a wishlist.updated event.
type WishlistUpdatedData struct {
	UserID     string   `json:"user_id"`
	ProductIDs []string `json:"product_ids"`
	Action     string   `json:"action"`
	ProductID  string   `json:"product_id"`
}

// NewsletterSubscribedData is the payload for a newsletter.subscribed event.
type NewsletterSubscribedData struct {
	Email string `json:"email"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	items := make([]CartItemData, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItemData{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		}
	}

	data := CartUpdatedData{
		UserID:    cart.UserID,
		Items:     items,
		ItemCount: cart.TotalItems(),
		Subtotal:  cart.Subtotal(nil),
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, cart.UserID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("user_id", cart.UserID),
		slog.Int("item_count", data.ItemCount),
	)

	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, userID string) error {
	data := CartClearedData{UserID: userID}

	event, err := pkgkafka.NewEvent(TopicCartCleared, userID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	return nil
}

// PublishWishlistUpdated publishes a wishlist.updated event. Action is
// "added" or "removed".
func (p *Producer) PublishWishlistUpdated(ctx context.Context, wishlist *domain.Wishlist, action, productID string) error {
	data := WishlistUpdatedData{
		UserID:     wishlist.UserID,
		ProductIDs: wishlist.ProductIDs,
		Action:     action,
		ProductID:  productID,
	}

	event, err := pkgkafka.NewEvent(TopicWishlistUpdated, wishlist.UserID, AggregateTypeWishlist, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create wishlist.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicWishlistUpdated, event); err != nil {
		return fmt.Errorf("publish wishlist.updated event: %w", err)
	}

	return nil
}

// PublishNewsletterSubscribed publishes a newsletter.subscribed event.
func (p *Producer) PublishNewsletterSubscribed(ctx context.Context, email string) error {
	data := NewsletterSubscribedData{Email: email}

	event, err := pkgkafka.NewEvent(TopicNewsletterSubscribed, email, AggregateTypeNewsletter, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create newsletter.subscribed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicNewsletterSubscribed, event); err != nil {
		return fmt.Errorf("publish newsletter.subscribed event: %w", err)
	}

	return nil
}
