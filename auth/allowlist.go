// Package auth gates admin access: a static email allow-list, the Google
// OAuth client used for sign-in, and the middleware protecting /admin.
package auth

import "strings"

// Allowlist is the static set of emails allowed into the admin panel.
// It is built once at startup from configuration.
type Allowlist struct {
	emails map[string]struct{}
}

// NewAllowlist parses a comma-separated email list. Entries are trimmed
// and empty entries dropped. Matching is exact, including case.
func NewAllowlist(raw string) Allowlist {
	emails := make(map[string]struct{})
	for _, entry := range strings.Split(raw, ",") {
		email := strings.TrimSpace(entry)
		if email == "" {
			continue
		}
		emails[email] = struct{}{}
	}
	return Allowlist{emails: emails}
}

// Allow reports whether an email may access the admin panel. An empty
// configured list denies everyone.
func (a Allowlist) Allow(email string) bool {
	if len(a.emails) == 0 || email == "" {
		return false
	}
	_, ok := a.emails[email]
	return ok
}

// Empty reports whether no emails are configured.
func (a Allowlist) Empty() bool {
	return len(a.emails) == 0
}
