package auth

import "slices"

// Claim is a single asserted identity fact. Type is either a short token
// ("iss", "name") or a namespaced URI.
type Claim struct {
	Type  string `json:"typ"`
	Value string `json:"val"`
}

// ClientPrincipal mirrors the client principal payload attached to requests
// by the hosting platform's built-in authentication.
type ClientPrincipal struct {
	Claims           []Claim  `json:"claims"`
	IdentityProvider string   `json:"identityProvider"`
	UserDetails      string   `json:"userDetails"`
	UserID           string   `json:"userId"`
	UserRoles        []string `json:"userRoles"`
}

type AuthInfo struct {
	ClientPrincipal *ClientPrincipal `json:"clientPrincipal"`
}

// AuthContext is the top-level wrapper. It always carries a single principal.
type AuthContext struct {
	AuthInfo AuthInfo `json:"auth_info"`
}

func (p ClientPrincipal) Clone() ClientPrincipal {
	p.Claims = slices.Clone(p.Claims)
	p.UserRoles = slices.Clone(p.UserRoles)
	return p
}

func (a AuthInfo) Clone() AuthInfo {
	if a.ClientPrincipal == nil {
		return a
	}
	principal := a.ClientPrincipal.Clone()
	return AuthInfo{ClientPrincipal: &principal}
}

func (c AuthContext) Clone() AuthContext {
	return AuthContext{AuthInfo: c.AuthInfo.Clone()}
}
