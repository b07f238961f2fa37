package auth

import (
	"errors"
	"fmt"
	"slices"
)

// NewClientPrincipal builds a validated principal. Roles are deduplicated in
// first-seen order and the baseline roles are appended when missing.
func NewClientPrincipal(provider, userID, userDetails string, roles []string, claims ...Claim) (ClientPrincipal, error) {
	principal := ClientPrincipal{
		Claims:           append([]Claim{}, claims...),
		IdentityProvider: provider,
		UserDetails:      userDetails,
		UserID:           userID,
		UserRoles:        normalizeRoles(roles),
	}
	if err := principal.Validate(); err != nil {
		return ClientPrincipal{}, err
	}
	return principal, nil
}

func normalizeRoles(roles []string) []string {
	out := make([]string, 0, len(roles)+2)
	for _, role := range roles {
		if role == "" || slices.Contains(out, role) {
			continue
		}
		out = append(out, role)
	}
	for _, baseline := range []string{RoleAuthenticated, RoleAnonymous} {
		if !slices.Contains(out, baseline) {
			out = append(out, baseline)
		}
	}
	return out
}

func (p ClientPrincipal) Validate() error {
	var errs []error
	if p.UserID == "" {
		errs = append(errs, fmt.Errorf("%w: userId is empty", ErrInvalidPrincipal))
	}
	if p.UserDetails == "" {
		errs = append(errs, fmt.Errorf("%w: userDetails is empty", ErrInvalidPrincipal))
	}
	if !p.HasRole(RoleAnonymous) {
		errs = append(errs, fmt.Errorf("%w: userRoles must contain %q", ErrInvalidPrincipal, RoleAnonymous))
	}
	for i, claim := range p.Claims {
		if claim.Type == "" {
			errs = append(errs, fmt.Errorf("%w: claim %d has empty typ", ErrInvalidPrincipal, i))
		}
		if claim.Value == "" {
			errs = append(errs, fmt.Errorf("%w: claim %d (%s) has empty val", ErrInvalidPrincipal, i, claim.Type))
		}
	}
	return errors.Join(errs...)
}

func (a AuthInfo) Validate() error {
	if a.ClientPrincipal == nil {
		return ErrMissingPrincipal
	}
	return a.ClientPrincipal.Validate()
}

func (c AuthContext) Validate() error {
	return c.AuthInfo.Validate()
}
