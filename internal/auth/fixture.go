package auth

import "fmt"

// ExampleAuthInfo returns a mock authenticated-request context for tests and
// local development. Every call builds a new value, so callers may modify
// the result without affecting anyone else.
func ExampleAuthInfo() AuthContext {
	principal := examplePrincipal()
	return AuthContext{AuthInfo: AuthInfo{ClientPrincipal: &principal}}
}

func examplePrincipal() ClientPrincipal {
	return ClientPrincipal{
		Claims: []Claim{
			{Type: ClaimIssuer, Value: "https://login.microsoftonline.com/{SOME_TENANT_ID}/v2.0"},
			{Type: ClaimName, Value: "Test username"},
			{Type: ClaimObjectID, Value: "{SOME_USER_ID}"},
			{Type: ClaimPreferredUsername, Value: "test@testmail.eu"},
			{Type: ClaimNameIdentifier, Value: "yp7A9ctNvtDWYXMLCNS9qaokNoorgC3VQQPmpbwsqoM"},
			{Type: ClaimTenantID, Value: "{SOME_TENANT_ID}"},
			{Type: ClaimVersion, Value: "2.0"},
		},
		IdentityProvider: ProviderAAD,
		UserDetails:      "test@testmail.eu",
		UserID:           "{SOME_USER_ID}",
		UserRoles:        []string{RoleAuthenticated, RoleAnonymous},
	}
}

func init() {
	if err := ExampleAuthInfo().Validate(); err != nil {
		panic(fmt.Sprintf("auth: example auth info is malformed: %v", err))
	}
}
