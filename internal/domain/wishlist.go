package domain

// Wishlist holds a user's saved product IDs in insertion order.
type Wishlist struct {
	UserID     string   `json:"user_id"`
	ProductIDs []string `json:"product_ids"`
}

// Contains reports wishlist membership.
func (w *Wishlist) Contains(productID string) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// Add appends the product ID when not already present. Returns true when the
// wishlist changed.
func (w *Wishlist) Add(productID string) bool {
	if w.Contains(productID) {
		return false
	}
	w.ProductIDs = append(w.ProductIDs, productID)
	return true
}

// Remove deletes the product ID. Returns true when the wishlist changed.
func (w *Wishlist) Remove(productID string) bool {
	for i, id := range w.ProductIDs {
		if id == productID {
			w.ProductIDs = append(w.ProductIDs[:i], w.ProductIDs[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle flips membership and returns the new membership state.
func (w *Wishlist) Toggle(productID string) bool {
	if w.Remove(productID) {
		return false
	}
	w.ProductIDs = append(w.ProductIDs, productID)
	return true
}

// UIState holds transient overlay flags for a user's session. The search bar
// and the mobile menu are mutually exclusive overlays; the filter drawer is
// independent of both.
type UIState struct {
	SearchOpen       bool `json:"search_open"`
	MobileMenuOpen   bool `json:"mobile_menu_open"`
	FilterDrawerOpen bool `json:"filter_drawer_open"`
}

// OpenSearch opens the search overlay and closes the mobile menu.
func (u *UIState) OpenSearch() {
	u.SearchOpen = true
	u.MobileMenuOpen = false
}

// CloseSearch closes the search overlay only.
func (u *UIState) CloseSearch() { u.SearchOpen = false }

// ToggleSearch flips the search flag without touching the mobile menu.
func (u *UIState) ToggleSearch() { u.SearchOpen = !u.SearchOpen }

// OpenMobileMenu opens the mobile menu and closes the search overlay.
func (u *UIState) OpenMobileMenu() {
	u.MobileMenuOpen = true
	u.SearchOpen = false
}

// CloseMobileMenu closes the mobile menu only.
func (u *UIState) CloseMobileMenu() { u.MobileMenuOpen = false }

// ToggleMobileMenu flips the mobile menu flag without touching the search
// overlay.
func (u *UIState) ToggleMobileMenu() { u.MobileMenuOpen = !u.MobileMenuOpen }

// OpenFilterDrawer opens the filter drawer.
func (u *UIState) OpenFilterDrawer() { u.FilterDrawerOpen = true }

// CloseFilterDrawer closes the filter drawer.
func (u *UIState) CloseFilterDrawer() { u.FilterDrawerOpen = false }

// ToggleFilterDrawer flips the filter drawer flag.
func (u *UIState) ToggleFilterDrawer() { u.FilterDrawerOpen = !u.FilterDrawerOpen }
