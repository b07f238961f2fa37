package auth

import "errors"

var (
	ErrInvalidPrincipal = errors.New("invalid principal")
	ErrMissingPrincipal = errors.New("missing client principal")
	ErrMalformedHeader  = errors.New("malformed client principal header")
	ErrMissingClaims    = errors.New("client principal has no claims")
)
