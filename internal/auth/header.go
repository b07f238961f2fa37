package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// HeaderName is the request header carrying the base64 encoded principal.
const HeaderName = "X-MS-CLIENT-PRINCIPAL"

// MaxHeaderBytes bounds the encoded header accepted by DecodeHeader.
const MaxHeaderBytes = 16 << 10

func EncodeHeader(principal ClientPrincipal) (string, error) {
	raw, err := json.Marshal(principal)
	if err != nil {
		return "", fmt.Errorf("marshal client principal: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeHeader parses a header value produced by the platform (or by
// EncodeHeader). The payload is trusted upstream; only its shape is checked.
func DecodeHeader(value string) (ClientPrincipal, error) {
	if len(value) > MaxHeaderBytes {
		return ClientPrincipal{}, fmt.Errorf("%w: header exceeds %d bytes", ErrMalformedHeader, MaxHeaderBytes)
	}

	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return ClientPrincipal{}, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	var principal ClientPrincipal
	if err := json.Unmarshal(raw, &principal); err != nil {
		return ClientPrincipal{}, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	if err := principal.Validate(); err != nil {
		return ClientPrincipal{}, err
	}
	return principal, nil
}
