package domain

import (
	"net/url"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

func init() {
	_ = validatorInstance.RegisterValidation("httpurl", validateHTTPURL)
}

// validateHTTPURL accepts absolute http(s) URLs with a host.
func validateHTTPURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validator returns the shared validator so the HTTP layer validates with the
// same rules as the domain.
func Validator() *validator.Validate {
	return validatorInstance
}
