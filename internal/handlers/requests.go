package handlers

import (
	"errors"
	"strings"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts the domain validator to echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns a validator sharing the domain's rules, including
// httpurl.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: domain.Validator()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// SignupRequest is the signup form.
type SignupRequest struct {
	Name            string `form:"name" validate:"required,max=100"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=6"`
	PasswordConfirm string `form:"password_confirm" validate:"eqfield=Password"`
}

func (r *SignupRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Fixed messages for form validation failures.
const (
	MsgNameRequired     = "Please enter your name."
	MsgPasswordMismatch = "Passwords do not match."
	MsgProjectRequired  = "Title and description are required."
	MsgInvalidLink      = "Links must be valid http(s) URLs."
	MsgInvalidEmail     = "Please enter a valid email address."
	MsgInvalidTemplate  = "Please choose one of the available templates."
	MsgSelectImage      = "Please select an image file"
)

// firstFieldError returns the first failed field, if err came from the validator.
func firstFieldError(err error) (validator.FieldError, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0], true
	}
	return nil, false
}

// authFormMessage maps signup/login validation failures to the same strings
// the identity provider errors use.
func authFormMessage(err error) string {
	fe, ok := firstFieldError(err)
	if !ok {
		return domain.MsgIdentityUnknown
	}
	switch fe.Field() {
	case "Name":
		return MsgNameRequired
	case "Email":
		return domain.MsgInvalidEmail
	case "Password":
		if fe.Tag() == "min" {
			return domain.MsgWeakPassword
		}
		return domain.MsgInvalidCredential
	case "PasswordConfirm":
		return MsgPasswordMismatch
	default:
		return domain.MsgIdentityUnknown
	}
}

// inputMessage describes a dashboard validation failure.
func inputMessage(err error) string {
	fe, ok := firstFieldError(err)
	if !ok {
		return domain.Flatten(err)
	}
	switch fe.Tag() {
	case "required":
		return MsgProjectRequired
	case "httpurl":
		return MsgInvalidLink
	case "email":
		return MsgInvalidEmail
	default:
		return fe.Field() + " is invalid."
	}
}
