// Package forms defines the validation schemas for the storefront's input
// shapes: login, registration, checkout (shipping and payment), newsletter,
// and search. Validation is synchronous and never panics on expected invalid
// input; callers get either the typed value back or a field-keyed map of
// human-readable messages.
package forms

// Login is the sign-in form.
type Login struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8,max=100"`
	RememberMe bool   `json:"rememberMe"`
}

// Registration is the account sign-up form. ConfirmPassword must equal
// Password; the mismatch error is keyed to confirmPassword.
type Registration struct {
	FirstName       string `json:"firstName" validate:"required,min=2,max=50,person_name"`
	LastName        string `json:"lastName" validate:"required,min=2,max=50,person_name"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=100,password_strength"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	AgreeToTerms    bool   `json:"agreeToTerms" validate:"eq=true"`
}

// ShippingAddress is the checkout shipping sub-form.
type ShippingAddress struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=10,phone"`
	Street    string `json:"street" validate:"required,min=5,max=100"`
	City      string `json:"city" validate:"required,min=2,max=50"`
	State     string `json:"state" validate:"required,min=2,max=50"`
	ZipCode   string `json:"zipCode" validate:"required,min=3,max=10,zip_code"`
	Country   string `json:"country" validate:"required,min=2"`
}

// Payment is the checkout payment sub-form.
type Payment struct {
	CardNumber string `json:"cardNumber" validate:"required,card_number"`
	CardHolder string `json:"cardHolder" validate:"required,min=2,max=100"`
	ExpiryDate string `json:"expiryDate" validate:"required,card_expiry"`
	CVV        string `json:"cvv" validate:"required,min=3,max=4,numeric"`
}

// Checkout combines the shipping and payment sub-forms.
type Checkout struct {
	Shipping    ShippingAddress `json:"shipping" validate:"required"`
	Payment     Payment         `json:"payment" validate:"required"`
	SaveAddress bool            `json:"saveAddress"`
	CouponCode  string          `json:"couponCode"`
}

// Newsletter is the newsletter sign-up form.
type Newsletter struct {
	Email string `json:"email" validate:"required,email"`
}

// Search is the search box form.
type Search struct {
	Query string `json:"query" validate:"required,min=1,max=100"`
}
