package domain

import (
	"context"
	"errors"
	"fmt"
)

// Identity is what the identity provider vouches for.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// Session is the result of a successful sign-up or sign-in.
type Session struct {
	Token    string
	Identity Identity
}

// IdentityCode classifies identity provider failures.
type IdentityCode string

const (
	CodeEmailInUse        IdentityCode = "email-already-in-use"
	CodeWeakPassword      IdentityCode = "weak-password"
	CodeInvalidEmail      IdentityCode = "invalid-email"
	CodeInvalidCredential IdentityCode = "invalid-credential"
	CodeUnknown           IdentityCode = "unknown"
)

// Fixed user-facing messages for identity failures.
const (
	MsgEmailInUse        = "Email already exists! Please login instead."
	MsgWeakPassword      = "Password should be at least 6 characters."
	MsgInvalidEmail      = "Invalid email address."
	MsgInvalidCredential = "Invalid email or password. Please check your credentials."
	MsgIdentityUnknown   = "Something went wrong. Please try again."
)

// MinPasswordLength mirrors the hosted identity provider's rule.
const MinPasswordLength = 6

// IdentityError is a coded failure from an identity provider.
type IdentityError struct {
	Code IdentityCode
	Err  error
}

// NewIdentityError wraps err with a code.
func NewIdentityError(code IdentityCode, err error) *IdentityError {
	return &IdentityError{Code: code, Err: err}
}

func (e *IdentityError) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *IdentityError) Unwrap() error {
	return e.Err
}

// Sentinel identity errors, one per code, for errors.Is checks.
var (
	ErrEmailInUse        = &IdentityError{Code: CodeEmailInUse}
	ErrWeakPassword      = &IdentityError{Code: CodeWeakPassword}
	ErrInvalidEmail      = &IdentityError{Code: CodeInvalidEmail}
	ErrInvalidCredential = &IdentityError{Code: CodeInvalidCredential}
)

// Is matches identity errors by code.
func (e *IdentityError) Is(target error) bool {
	t, ok := target.(*IdentityError)
	return ok && t.Code == e.Code
}

// IdentityCodeOf extracts the code from err, or CodeUnknown.
func IdentityCodeOf(err error) IdentityCode {
	var ie *IdentityError
	if errors.As(err, &ie) {
		return ie.Code
	}
	return CodeUnknown
}

// IdentityMessage maps an identity failure to its fixed user-facing string.
func IdentityMessage(err error) string {
	switch IdentityCodeOf(err) {
	case CodeEmailInUse:
		return MsgEmailInUse
	case CodeWeakPassword:
		return MsgWeakPassword
	case CodeInvalidEmail:
		return MsgInvalidEmail
	case CodeInvalidCredential:
		return MsgInvalidCredential
	default:
		return MsgIdentityUnknown
	}
}

// CheckCredentials returns a coded error for malformed credentials. Providers
// call it first so they all report the same codes for bad input.
func CheckCredentials(email, password string) error {
	if err := validatorInstance.Var(email, "required,email"); err != nil {
		return NewIdentityError(CodeInvalidEmail, err)
	}
	if len(password) < MinPasswordLength {
		return NewIdentityError(CodeWeakPassword, errors.New("password too short"))
	}
	return nil
}

// IdentityProvider is the boundary to the external identity service.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password, displayName string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// Authenticate resolves a session token. Invalid or expired tokens yield
	// ErrInvalidCredential.
	Authenticate(ctx context.Context, token string) (*Identity, error)
	SignOut(ctx context.Context, token string) error
}
