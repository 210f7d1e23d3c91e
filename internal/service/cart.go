package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jorchsg/fashion-eccommerce/internal/domain"
	"github.com/jorchsg/fashion-eccommerce/internal/event"
	"github.com/jorchsg/fashion-eccommerce/internal/repository"
	apperrors "github.com/jorchsg/fashion-eccommerce/pkg/errors"
)

// MaxQuantityPerItem is the maximum quantity allowed for a single cart line.
const MaxQuantityPerItem = 100

// ProductCatalog is the read-only catalog surface the cart needs: product
// lookup when adding a line and live pricing when computing totals.
type ProductCatalog interface {
	GetByID(productID string) (*domain.Product, error)
	PriceByID(productID string) (int64, bool)
}

// AddItemInput holds the parameters for adding a line to the cart.
type AddItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0,lte=100"`
}

// UpdateQuantityInput holds the parameters for a quantity overwrite.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity" validate:"lte=100"`
}

// CartView is a cart together with its transient drawer visibility.
type CartView struct {
	*domain.Cart
	IsOpen bool `json:"is_open"`
}

// CartService implements the business logic for cart operations. Lines are
// durable in the repository; the drawer flag lives only in process memory
// and resets on restart.
type CartService struct {
	repo     repository.CartRepository
	catalog  ProductCatalog
	producer *event.Producer
	logger   *slog.Logger

	mu     sync.Mutex
	drawer map[string]bool
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, catalog ProductCatalog, producer *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{
		repo:     repo,
		catalog:  catalog,
		producer: producer,
		logger:   logger,
		drawer:   make(map[string]bool),
	}
}

// GetCart retrieves the cart for a user. A missing or unreadable cart comes
// back empty rather than as an error.
func (s *CartService) GetCart(ctx context.Context, userID string) (*CartView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart, err := s.loadOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &CartView{Cart: cart, IsOpen: s.isOpen(userID)}, nil
}

// AddItem adds a product to the user's cart. A line with the same product,
// size, and color is merged by incrementing its quantity; otherwise a new
// line is appended. Quantity defaults to 1. Adding always opens the drawer.
func (s *CartService) AddItem(ctx context.Context, userID string, input AddItemInput) (*CartView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if input.ProductID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if input.Quantity < 0 {
		return nil, apperrors.InvalidInput("quantity must not be negative")
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity > MaxQuantityPerItem {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerItem))
	}

	product, err := s.catalog.GetByID(input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("look up product: %w", err)
	}

	cart, err := s.loadOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}

	if i := cart.FindItemIndex(input.ProductID, input.Size, input.Color); i >= 0 {
		newQty := cart.Items[i].Quantity + input.Quantity
		if newQty > MaxQuantityPerItem {
			return nil, apperrors.InvalidInput(fmt.Sprintf("combined quantity must not exceed %d", MaxQuantityPerItem))
		}
		cart.Items[i].Quantity = newQty
		cart.Items[i].Product = *product
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ID:       uuid.New().String(),
			Product:  *product,
			Quantity: input.Quantity,
			Size:     input.Size,
			Color:    input.Color,
		})
	}

	cart.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.setOpen(userID, true)
	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("user_id", userID),
		slog.String("product_id", input.ProductID),
		slog.String("size", input.Size),
		slog.String("color", input.Color),
		slog.Int("quantity", input.Quantity),
	)

	return &CartView{Cart: cart, IsOpen: true}, nil
}

// UpdateQuantity overwrites a line's quantity. A quantity below 1 removes
// the line instead of storing zero or a negative value. An unknown line ID
// leaves the cart unchanged.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*CartView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if itemID == "" {
		return nil, apperrors.InvalidInput("item id is required")
	}
	if quantity > MaxQuantityPerItem {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerItem))
	}

	cart, err := s.loadOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}

	i := cart.FindLineIndex(itemID)
	if i < 0 {
		return &CartView{Cart: cart, IsOpen: s.isOpen(userID)}, nil
	}

	if quantity < 1 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	} else {
		cart.Items[i].Quantity = quantity
	}

	cart.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "cart line quantity updated",
		slog.String("user_id", userID),
		slog.String("item_id", itemID),
		slog.Int("quantity", quantity),
	)

	return &CartView{Cart: cart, IsOpen: s.isOpen(userID)}, nil
}

// RemoveItem deletes a line by its ID. Removing an absent line is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) (*CartView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if itemID == "" {
		return nil, apperrors.InvalidInput("item id is required")
	}

	cart, err := s.loadOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}

	i := cart.FindLineIndex(itemID)
	if i < 0 {
		return &CartView{Cart: cart, IsOpen: s.isOpen(userID)}, nil
	}

	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	cart.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("user_id", userID),
		slog.String("item_id", itemID),
	)

	return &CartView{Cart: cart, IsOpen: s.isOpen(userID)}, nil
}

// ClearCart empties the line collection.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.InvalidInput("user id is required")
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	if err := s.producer.PublishCartCleared(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared", slog.String("user_id", userID))

	return nil
}

// Totals computes the derived monetary summary from the current lines,
// priced from the live catalog.
func (s *CartService) Totals(ctx context.Context, userID string) (*domain.Totals, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart, err := s.loadOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals := cart.ComputeTotals(s.catalog.PriceByID)
	return &totals, nil
}

// OpenCart sets the drawer visibility flag.
func (s *CartService) OpenCart(userID string) { s.setOpen(userID, true) }

// CloseCart clears the drawer visibility flag.
func (s *CartService) CloseCart(userID string) { s.setOpen(userID, false) }

// ToggleCart flips the drawer visibility flag and returns the new state.
func (s *CartService) ToggleCart(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawer[userID] = !s.drawer[userID]
	return s.drawer[userID]
}

// IsOpen reports the drawer visibility flag.
func (s *CartService) IsOpen(userID string) bool { return s.isOpen(userID) }

func (s *CartService) loadOrEmpty(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.Cart{
				UserID:    userID,
				Items:     []domain.CartItem{},
				UpdatedAt: time.Now().UTC(),
			}, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) publishUpdated(ctx context.Context, cart *domain.Cart) {
	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("user_id", cart.UserID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *CartService) isOpen(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawer[userID]
}

func (s *CartService) setOpen(userID string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawer[userID] = open
}
