package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() Registration {
	return Registration{
		FirstName:       "Ada",
		LastName:        "O'Brien-Smith",
		Email:           "ada@example.com",
		Password:        "Abcdefgh1",
		ConfirmPassword: "Abcdefgh1",
		AgreeToTerms:    true,
	}
}

func validShipping() ShippingAddress {
	return ShippingAddress{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+1 (555) 123-4567",
		Street:    "10 Analytical Way",
		City:      "London",
		State:     "LDN",
		ZipCode:   "10001",
		Country:   "UK",
	}
}

func validPayment() Payment {
	return Payment{
		CardNumber: "4242 4242 4242 4242",
		CardHolder: "Ada Lovelace",
		ExpiryDate: "12/28",
		CVV:        "123",
	}
}

// --- Login ---

func TestLogin_Valid(t *testing.T) {
	assert.Nil(t, Validate(Login{Email: "a@b.com", Password: "Abcdefgh1"}))
}

func TestLogin_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		form      Login
		wantField string
	}{
		{"missing email", Login{Password: "Abcdefgh1"}, "email"},
		{"bad email", Login{Email: "not-an-email", Password: "Abcdefgh1"}, "email"},
		{"short password", Login{Email: "a@b.com", Password: "short"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.form)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

// --- Registration ---

func TestRegistration_Valid(t *testing.T) {
	assert.Nil(t, Validate(validRegistration()))
}

func TestRegistration_ConfirmPasswordMismatch(t *testing.T) {
	form := validRegistration()
	form.ConfirmPassword = "different"

	errs := Validate(form)
	require.NotNil(t, errs)

	// The mismatch is attached to the confirmation field, not to password.
	assert.Equal(t, "Passwords do not match", errs["confirmPassword"])
	assert.NotContains(t, errs, "password")
}

func TestRegistration_PasswordComplexity(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"upper lower digit", "Abcdefgh1", true},
		{"no uppercase", "abcdefgh1", false},
		{"no lowercase", "ABCDEFGH1", false},
		{"no digit", "Abcdefghi", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validRegistration()
			form.Password = tt.password
			form.ConfirmPassword = tt.password

			errs := Validate(form)
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Contains(t, errs["password"], "uppercase")
			}
		})
	}
}

func TestRegistration_NamePattern(t *testing.T) {
	tests := []struct {
		name  string
		first string
		valid bool
	}{
		{"plain letters", "Ada", true},
		{"apostrophe and hyphen", "Mary-Jane O'Hara", true},
		{"digits rejected", "Ada99", false},
		{"symbols rejected", "Ada!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validRegistration()
			form.FirstName = tt.first

			errs := Validate(form)
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Equal(t, "First name can only contain letters", errs["firstName"])
			}
		})
	}
}

func TestRegistration_MustAgreeToTerms(t *testing.T) {
	form := validRegistration()
	form.AgreeToTerms = false

	errs := Validate(form)
	require.NotNil(t, errs)
	assert.Equal(t, "You must agree to the terms and conditions", errs["agreeToTerms"])
}

// --- Checkout ---

func TestCheckout_Valid(t *testing.T) {
	form := Checkout{Shipping: validShipping(), Payment: validPayment()}
	assert.Nil(t, Validate(form))
}

func TestCheckout_NestedFieldKeys(t *testing.T) {
	form := Checkout{Shipping: validShipping(), Payment: validPayment()}
	form.Shipping.ZipCode = "!!"
	form.Payment.CardNumber = "1234"

	errs := Validate(form)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "shipping.zipCode")
	assert.Equal(t, "Please enter a valid card number", errs["payment.cardNumber"])
}

func TestShipping_Phone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"international", "+44 20 7946 0958", true},
		{"with parens", "(555) 123-4567", true},
		{"letters rejected", "555-CALL-NOW", false},
		{"too short", "12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validShipping()
			form.Phone = tt.phone

			errs := Validate(form)
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Contains(t, errs, "phone")
			}
		})
	}
}

func TestPayment_CardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{"16 digits", "4242424242424242", true},
		{"digits with spaces", "4242 4242 4242 4242", true},
		{"19 digits", "4242424242424242424", true},
		{"too short", "42424242", false},
		{"letters", "4242-4242-4242-4242", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validPayment()
			form.CardNumber = tt.number

			errs := Validate(form)
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Contains(t, errs, "cardNumber")
			}
		})
	}
}

func TestPayment_Expiry(t *testing.T) {
	tests := []struct {
		name   string
		expiry string
		valid  bool
	}{
		{"valid date", "01/26", true},
		{"december", "12/99", true},
		{"month zero", "00/26", false},
		{"month thirteen", "13/26", false},
		{"wrong format", "1/26", false},
		{"four digit year", "12/2026", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validPayment()
			form.ExpiryDate = tt.expiry

			errs := Validate(form)
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Equal(t, "Please enter a valid expiry date (MM/YY)", errs["expiryDate"])
			}
		})
	}
}

func TestPayment_CVV(t *testing.T) {
	tests := []struct {
		name  string
		cvv   string
		valid bool
	}{
		{"three digits", "123", true},
		{"four digits", "1234", true},
		{"two digits", "12", false},
		{"five digits", "12345", false},
		{"letters", "12a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validPayment()
			form.CVV = tt.cvv

			errs := Validate(form)
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Contains(t, errs, "cvv")
			}
		})
	}
}

// --- Newsletter / Search ---

func TestNewsletter(t *testing.T) {
	assert.Nil(t, Validate(Newsletter{Email: "a@b.com"}))

	errs := Validate(Newsletter{Email: "nope"})
	require.NotNil(t, errs)
	assert.Equal(t, "Please enter a valid email address", errs["email"])
}

func TestSearch(t *testing.T) {
	assert.Nil(t, Validate(Search{Query: "hoodie"}))

	errs := Validate(Search{})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "query")
}
