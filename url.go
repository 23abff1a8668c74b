package unlocked

import (
	"net/url"
	"strings"
)

// ValidateURL checks that raw is a well-formed Medium article URL
// (scheme://[subdomain.]medium.com/...). Anything else is rejected with
// EINVALID before any network access happens.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return Errorf(EINVALID, "invalid article URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "article URL must use http or https")
	}
	host := u.Hostname()
	if host != "medium.com" && !strings.HasSuffix(host, ".medium.com") {
		return Errorf(EINVALID, "not a medium.com article URL")
	}
	return nil
}

// Domain returns the host portion of a URL, used as the reliability
// record key. Returns an empty string for unparseable input.
func Domain(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
