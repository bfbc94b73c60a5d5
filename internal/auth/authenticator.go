package auth

import (
	"context"
)

// Authenticator decides whether a submitted identifier/codeword pair is valid.
type Authenticator interface {
	// Authenticate returns nil on success, *ValidationError when a field is missing
	// and *AuthenticationError when the pair does not match.
	Authenticate(ctx context.Context, identifier, codeword string) error
}
