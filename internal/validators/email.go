package validators

import (
	"net"
	"strings"

	"github.com/smartque/smartque-api/internal/httperr"
)

// ValidateEmail rejects malformed addresses outright and addresses whose
// domain resolves to neither an MX nor an A record.
func ValidateEmail(email string) error {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return httperr.ErrValidation("Invalid email format")
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return httperr.ErrValidation("Invalid email format")
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return nil
	}
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return nil
	}

	return httperr.ErrValidation("Email domain does not appear to be valid")
}
