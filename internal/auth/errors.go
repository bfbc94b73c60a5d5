package auth

import "github.com/samiksha-ambastha1205/round2-mechatron/internal/model"

const (
	// MsgAuthenticated is returned to the client on a successful login.
	MsgAuthenticated = "Authentication successful."
	// MsgRequired is returned when the identifier or codeword is missing.
	MsgRequired = "identifier and codeword are required."
	// MsgDenied is returned for well-formed but non-matching credentials.
	MsgDenied = "Access Denied. Incorrect Credentials."
)

// ValidationError reports a login attempt with a missing field. Maps to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return model.ErrValidation }

// AuthenticationError reports credentials that do not match the configuration. Maps to HTTP 401.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

func (e *AuthenticationError) Unwrap() error { return model.ErrUnauthorized }
