// Package webnorm canonicalizes user-entered web data: URL-shaped profile
// fields are forced to https and skill lists are accepted in either of the
// two wire shapes the API tolerates.
package webnorm

import (
	"net/url"
	"strings"
)

// NormalizeURL brings a user-entered URL to canonical https form.
// Empty input stays empty; input without a scheme gets https:// prepended;
// http is upgraded to https; the host is lowercased and a bare trailing
// slash is dropped.
func NormalizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return s
	}
	if u.Scheme == "http" || u.Scheme == "" {
		u.Scheme = "https"
	}
	u.Host = strings.ToLower(u.Host)
	if u.Path == "/" && u.RawQuery == "" && u.Fragment == "" {
		u.Path = ""
	}
	return u.String()
}
