package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jorchsg/fashion-eccommerce/internal/auth"
	"github.com/jorchsg/fashion-eccommerce/internal/domain"
	"github.com/jorchsg/fashion-eccommerce/internal/event"
	"github.com/jorchsg/fashion-eccommerce/internal/service"
	"github.com/jorchsg/fashion-eccommerce/pkg/health"
	"github.com/jorchsg/fashion-eccommerce/pkg/middleware"
)

// RouterConfig bundles the collaborators the router needs.
type RouterConfig struct {
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	WishlistService *service.WishlistService
	AuthProvider    *auth.ProviderClient
	TokenValidator  *auth.TokenValidator
	Producer        *event.Producer
	HealthHandler   *health.Handler
	Logger          *slog.Logger
	CORS            middleware.CORSConfig
	PprofCIDRs      []string
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check endpoints
	r.Get("/health/live", cfg.HealthHandler.LivenessHandler())
	r.Get("/health/ready", cfg.HealthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, cfg.PprofCIDRs, cfg.Logger)

	productHandler := NewProductHandler(cfg.CatalogService, cfg.Logger)
	cartHandler := NewCartHandler(cfg.CartService, cfg.Logger)
	wishlistHandler := NewWishlistHandler(cfg.WishlistService, cfg.Logger)
	authHandler := NewAuthHandler(cfg.AuthProvider, cfg.Logger)
	checkoutHandler := NewCheckoutHandler(cfg.Producer, cfg.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		// Catalog endpoints are public.
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/featured", productHandler.Featured)
			r.Get("/new-arrivals", productHandler.NewArrivals)
			r.Get("/sale", productHandler.OnSale)
			r.Get("/{slug}", productHandler.GetBySlug)
		})
		r.Get("/categories", productHandler.Categories)

		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Post("/checkout/validate", checkoutHandler.ValidateCheckout)
		r.Post("/newsletter/subscribe", checkoutHandler.SubscribeNewsletter)

		// Cart, wishlist, and overlay state belong to a user or a guest
		// session; both resolve through the same middleware.
		r.Group(func(r chi.Router) {
			r.Use(ResolveUser(cfg.TokenValidator))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)
				r.Get("/totals", cartHandler.Totals)

				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{itemId}", cartHandler.UpdateQuantity)
				r.Delete("/items/{itemId}", cartHandler.RemoveItem)

				r.Post("/drawer/open", cartHandler.OpenDrawer)
				r.Post("/drawer/close", cartHandler.CloseDrawer)
				r.Post("/drawer/toggle", cartHandler.ToggleDrawer)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", wishlistHandler.Get)
				r.Put("/{productId}", wishlistHandler.Add)
				r.Delete("/{productId}", wishlistHandler.Remove)
				r.Post("/{productId}/toggle", wishlistHandler.Toggle)
			})

			r.Route("/ui", func(r chi.Router) {
				r.Get("/", wishlistHandler.GetUI)

				r.Post("/search/open", wishlistHandler.UpdateUI((*domain.UIState).OpenSearch))
				r.Post("/search/close", wishlistHandler.UpdateUI((*domain.UIState).CloseSearch))
				r.Post("/search/toggle", wishlistHandler.UpdateUI((*domain.UIState).ToggleSearch))

				r.Post("/mobile-menu/open", wishlistHandler.UpdateUI((*domain.UIState).OpenMobileMenu))
				r.Post("/mobile-menu/close", wishlistHandler.UpdateUI((*domain.UIState).CloseMobileMenu))
				r.Post("/mobile-menu/toggle", wishlistHandler.UpdateUI((*domain.UIState).ToggleMobileMenu))

				r.Post("/filter-drawer/open", wishlistHandler.UpdateUI((*domain.UIState).OpenFilterDrawer))
				r.Post("/filter-drawer/close", wishlistHandler.UpdateUI((*domain.UIState).CloseFilterDrawer))
				r.Post("/filter-drawer/toggle", wishlistHandler.UpdateUI((*domain.UIState).ToggleFilterDrawer))
			})
		})
	})

	return r
}
