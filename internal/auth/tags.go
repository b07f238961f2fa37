package auth

const (
	TagNone    = "None"
	TagInvalid = "Invalid"
)

// Tags are the identity columns attached to analytics records.
type Tags struct {
	TenantID string
	UserName string
	Email    string
}

// ExtractTags reads the tenant, display name and email from an optional auth
// info. Absent info or principal yields TagNone everywhere. A principal
// without a claims list yields TagInvalid everywhere together with
// ErrMissingClaims, so the caller can log it without failing the request.
func ExtractTags(info *AuthInfo) (Tags, error) {
	if info == nil || info.ClientPrincipal == nil {
		return Tags{TenantID: TagNone, UserName: TagNone, Email: TagNone}, nil
	}

	principal := info.ClientPrincipal
	if principal.Claims == nil {
		return Tags{TenantID: TagInvalid, UserName: TagInvalid, Email: TagInvalid}, ErrMissingClaims
	}

	return Tags{
		TenantID: claimOr(*principal, ClaimTenantID, TagNone),
		UserName: claimOr(*principal, ClaimName, TagNone),
		Email:    principal.UserDetails,
	}, nil
}

func claimOr(p ClientPrincipal, typ, fallback string) string {
	if value, ok := p.Claim(typ); ok {
		return value
	}
	return fallback
}
