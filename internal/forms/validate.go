package forms

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	personNamePattern = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	phonePattern      = regexp.MustCompile(`^[+\d\s()-]+$`)
	cardNumberPattern = regexp.MustCompile(`^[\d\s]{16,19}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	zipCodePattern    = regexp.MustCompile(`^[\d\s-]+$`)

	hasLower = regexp.MustCompile(`[a-z]`)
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasDigit = regexp.MustCompile(`\d`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Error keys follow the forms' JSON field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	patterns := map[string]*regexp.Regexp{
		"person_name": personNamePattern,
		"phone":       phonePattern,
		"card_number": cardNumberPattern,
		"card_expiry": cardExpiryPattern,
		"zip_code":    zipCodePattern,
	}
	for tag, re := range patterns {
		re := re
		mustRegister(v, tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}

	mustRegister(v, "password_strength", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return hasLower.MatchString(s) && hasUpper.MatchString(s) && hasDigit.MatchString(s)
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks a form value. It returns nil when the value is valid, or a
// map keyed by field name (nested fields use dotted paths, e.g.
// "shipping.zipCode") with one human-readable message per failing field.
func Validate(form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation error (e.g. a nil form); report it unkeyed.
		return map[string]string{"": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fieldKey(fe)
		if _, exists := fields[key]; !exists {
			fields[key] = message(fe)
		}
	}
	return fields
}

// fieldKey strips the top-level struct name from the namespace, leaving
// "email" for flat forms and "shipping.email" for nested ones.
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		switch field {
		case "confirmPassword":
			return "Please confirm your password"
		case "cardNumber":
			return "Card number is required"
		}
		return "This field is required"
	case "email":
		return "Please enter a valid email address"
	case "min":
		switch field {
		case "password":
			return "Password must be at least 8 characters"
		case "firstName":
			return "First name must be at least 2 characters"
		case "lastName":
			return "Last name must be at least 2 characters"
		case "phone":
			return "Phone number must be at least 10 digits"
		case "street":
			return "Please enter a valid street address"
		case "zipCode":
			return "ZIP code is required"
		case "cvv":
			return "CVV must be 3-4 digits"
		}
		return "Must be at least " + fe.Param() + " characters"
	case "max":
		switch field {
		case "password":
			return "Password is too long"
		case "firstName":
			return "First name is too long"
		case "lastName":
			return "Last name is too long"
		case "cvv":
			return "CVV must be 3-4 digits"
		}
		return "Must be at most " + fe.Param() + " characters"
	case "person_name":
		switch field {
		case "firstName":
			return "First name can only contain letters"
		case "lastName":
			return "Last name can only contain letters"
		}
		return "Can only contain letters"
	case "password_strength":
		return "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	case "eqfield":
		return "Passwords do not match"
	case "eq":
		return "You must agree to the terms and conditions"
	case "phone":
		return "Please enter a valid phone number"
	case "card_number":
		return "Please enter a valid card number"
	case "card_expiry":
		return "Please enter a valid expiry date (MM/YY)"
	case "numeric":
		return "CVV must contain only numbers"
	case "zip_code":
		return "Please enter a valid ZIP code"
	}
	return "Invalid value"
}
