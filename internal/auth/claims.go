package auth

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimIssuer            = "iss"
	ClaimName              = "name"
	ClaimObjectID          = "http://schemas.microsoft.com/identity/claims/objectidentifier"
	ClaimPreferredUsername = "preferred_username"
	ClaimNameIdentifier    = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimTenantID          = "http://schemas.microsoft.com/identity/claims/tenantid"
	ClaimVersion           = "ver"
)

const (
	RoleAnonymous     = "anonymous"
	RoleAuthenticated = "authenticated"
)

const ProviderAAD = "aad"

// Claim returns the value of the first claim of the given type.
func (p ClientPrincipal) Claim(typ string) (string, bool) {
	for _, claim := range p.Claims {
		if claim.Type == typ {
			return claim.Value, true
		}
	}
	return "", false
}

func (p ClientPrincipal) HasRole(role string) bool {
	return slices.Contains(p.UserRoles, role)
}

// MapClaims flattens the claim list into a jwt.MapClaims. When a type occurs
// more than once the first value wins, matching Claim.
func (p ClientPrincipal) MapClaims() jwt.MapClaims {
	claims := make(jwt.MapClaims, len(p.Claims))
	for _, claim := range p.Claims {
		if _, ok := claims[claim.Type]; ok {
			continue
		}
		claims[claim.Type] = claim.Value
	}
	return claims
}

func (p ClientPrincipal) Issuer() string {
	issuer, err := p.MapClaims().GetIssuer()
	if err != nil {
		return ""
	}
	return issuer
}

// RolesEqual reports whether a and b hold the same set of roles, ignoring
// order and duplicates.
func RolesEqual(a, b []string) bool {
	return slices.Equal(roleSet(a), roleSet(b))
}

func roleSet(roles []string) []string {
	set := slices.Clone(roles)
	slices.Sort(set)
	return slices.Compact(set)
}
