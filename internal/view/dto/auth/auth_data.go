package auth

// LoginData is a View Model (DTO) used specifically for the login page.
// It carries the previously submitted email back into the form.
type LoginData struct {
	Email string
}

// SignupData is used to refill the signup form after a failed attempt.
type SignupData struct {
	Name  string
	Email string
}
