package auth

import (
	"errors"
	"strings"
)

var (
	ErrNoAuthHeader  = errors.New("authorization header missing")
	ErrBadScheme     = errors.New("invalid authentication scheme")
	ErrBadAuthHeader = errors.New("invalid authorization header")
)

// BearerToken extracts the token from an Authorization header value of the
// form "Bearer <token>". A missing header, a scheme other than Bearer, and a
// header that does not split into exactly scheme + token are distinct
// failures.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrNoAuthHeader
	}
	parts := strings.Fields(header)
	if len(parts) != 2 {
		return "", ErrBadAuthHeader
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrBadScheme
	}
	return parts[1], nil
}
