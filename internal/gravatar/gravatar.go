// Package gravatar derives a deterministic avatar URL from an email
// address, so every account gets a stable picture without any upload.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar"

// URL returns the avatar URL for the email: 200px, pg rating, "mm"
// silhouette fallback. The same email always yields the same URL.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("%s/%s?s=200&r=pg&d=mm", baseURL, hex.EncodeToString(sum[:]))
}
