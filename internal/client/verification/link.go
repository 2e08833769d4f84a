package verification

import (
	"net/url"
	"strings"
)

// TokenFromLink extracts the verification token from user input. A full
// verification URL yields its "token" query parameter (possibly empty when
// the link is malformed); any other input is treated as the raw token.
func TokenFromLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Query().Get("token")
}
