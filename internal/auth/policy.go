package auth

import "strings"

// Decision is the result of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// AdminPolicy grants admin access to the single configured email. There is
// no role table: exactly one static identity is privileged.
type AdminPolicy struct {
	adminEmail string
}

func NewAdminPolicy(adminEmail string) *AdminPolicy {
	return &AdminPolicy{
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
	}
}

// Authorize compares the identity's verified email against the configured
// admin email, case-insensitively. An unset admin email denies everyone.
func (p *AdminPolicy) Authorize(ident Identity) Decision {
	if p.adminEmail == "" {
		return Deny("no admin email configured")
	}

	email := strings.ToLower(strings.TrimSpace(ident.Email))
	if email == "" {
		return Deny("identity has no verified email")
	}

	if email != p.adminEmail {
		return Deny("email does not match configured admin")
	}

	return Allow()
}
