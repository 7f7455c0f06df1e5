// Package authz is the authorization gate run ahead of every guarded
// service operation. It reads only the principal it is handed.
package authz

import (
	"community-watch/internal/core/domain"
	"community-watch/internal/pkg/metrics"
)

// Policy names the access requirement of an operation
type Policy int

const (
	// Public operations accept anonymous callers
	Public Policy = iota
	// LoginRequired operations need any authenticated session
	LoginRequired
	// AdminRequired operations need a session whose role is admin
	AdminRequired
)

func (p Policy) String() string {
	switch p {
	case Public:
		return "public"
	case LoginRequired:
		return "login_required"
	case AdminRequired:
		return "admin_required"
	}
	return "unknown"
}

// Check returns nil when p satisfies policy, domain.ErrUnauthenticated when
// there is no session, and domain.ErrForbidden when the role is insufficient.
func Check(p domain.Principal, policy Policy) error {
	switch policy {
	case Public:
		return nil
	case LoginRequired:
		return RequireLogin(p)
	case AdminRequired:
		return RequireRole(p, domain.RoleAdmin)
	}
	return domain.ErrForbidden
}

// RequireLogin rejects anonymous principals
func RequireLogin(p domain.Principal) error {
	if !p.Authenticated() {
		metrics.Default().ObserveDenial("unauthenticated")
		return domain.ErrUnauthenticated
	}
	return nil
}

// RequireRole rejects principals whose role is not among roles
func RequireRole(p domain.Principal, roles ...domain.Role) error {
	if err := RequireLogin(p); err != nil {
		return err
	}
	for _, role := range roles {
		if p.Role == role {
			return nil
		}
	}
	metrics.Default().ObserveDenial("forbidden")
	return domain.ErrForbidden
}

// RequireSelfOrAdmin lets admins act on any officer and officers act only on themselves
func RequireSelfOrAdmin(p domain.Principal, officerID uint) error {
	if err := RequireLogin(p); err != nil {
		return err
	}
	if p.IsAdmin() || p.OfficerID == officerID {
		return nil
	}
	metrics.Default().ObserveDenial("not_owner")
	return domain.ErrForbidden
}
