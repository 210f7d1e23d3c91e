package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jorchsg/fashion-eccommerce/internal/domain"
	"github.com/jorchsg/fashion-eccommerce/internal/event"
	apperrors "github.com/jorchsg/fashion-eccommerce/pkg/errors"
)

// WishlistService tracks saved product IDs and transient UI overlay flags
// per user. Both live only in process memory: wishlist membership resets
// each session, matching the behavior of the storefront it mirrors.
type WishlistService struct {
	producer *event.Producer
	logger   *slog.Logger

	mu        sync.Mutex
	wishlists map[string]*domain.Wishlist
	ui        map[string]*domain.UIState
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(producer *event.Producer, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		producer:  producer,
		logger:    logger,
		wishlists: make(map[string]*domain.Wishlist),
		ui:        make(map[string]*domain.UIState),
	}
}

// Wishlist returns a snapshot of the user's wishlist.
func (s *WishlistService) Wishlist(userID string) (*domain.Wishlist, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.wishlist(userID)
	out := &domain.Wishlist{
		UserID:     w.UserID,
		ProductIDs: append([]string(nil), w.ProductIDs...),
	}
	return out, nil
}

// AddToWishlist saves a product ID. Adding an existing ID is a no-op.
func (s *WishlistService) AddToWishlist(ctx context.Context, userID, productID string) (*domain.Wishlist, error) {
	return s.mutate(ctx, userID, productID, func(w *domain.Wishlist) (bool, string) {
		return w.Add(productID), "added"
	})
}

// RemoveFromWishlist deletes a product ID. Removing an absent ID is a no-op.
func (s *WishlistService) RemoveFromWishlist(ctx context.Context, userID, productID string) (*domain.Wishlist, error) {
	return s.mutate(ctx, userID, productID, func(w *domain.Wishlist) (bool, string) {
		return w.Remove(productID), "removed"
	})
}

// ToggleWishlist flips membership for a product ID.
func (s *WishlistService) ToggleWishlist(ctx context.Context, userID, productID string) (*domain.Wishlist, error) {
	return s.mutate(ctx, userID, productID, func(w *domain.Wishlist) (bool, string) {
		if w.Toggle(productID) {
			return true, "added"
		}
		return true, "removed"
	})
}

// IsInWishlist is a pure membership query.
func (s *WishlistService) IsInWishlist(userID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist(userID).Contains(productID)
}

// UIState returns a snapshot of the user's overlay flags.
func (s *WishlistService) UIState(userID string) domain.UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.uiState(userID)
}

// UpdateUI applies an overlay mutation and returns the resulting flags.
func (s *WishlistService) UpdateUI(userID string, apply func(*domain.UIState)) domain.UIState {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.uiState(userID)
	apply(u)
	return *u
}

func (s *WishlistService) mutate(ctx context.Context, userID, productID string, op func(*domain.Wishlist) (bool, string)) (*domain.Wishlist, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	s.mu.Lock()
	w := s.wishlist(userID)
	changed, action := op(w)
	out := &domain.Wishlist{
		UserID:     w.UserID,
		ProductIDs: append([]string(nil), w.ProductIDs...),
	}
	s.mu.Unlock()

	if changed {
		if err := s.producer.PublishWishlistUpdated(ctx, out, action, productID); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish wishlist.updated event",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
		}
	}

	return out, nil
}

// wishlist returns the user's wishlist, creating it on first use.
// Callers must hold s.mu.
func (s *WishlistService) wishlist(userID string) *domain.Wishlist {
	w, ok := s.wishlists[userID]
	if !ok {
		w = &domain.Wishlist{UserID: userID}
		s.wishlists[userID] = w
	}
	return w
}

// uiState returns the user's overlay flags, creating them on first use.
// Callers must hold s.mu.
func (s *WishlistService) uiState(userID string) *domain.UIState {
	u, ok := s.ui[userID]
	if !ok {
		u = &domain.UIState{}
		s.ui[userID] = u
	}
	return u
}
