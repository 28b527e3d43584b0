package webnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"whitespace only", "   ", ""},
		{"bare domain gets https", "example.com", "https://example.com"},
		{"http upgraded to https", "http://example.com", "https://example.com"},
		{"https untouched", "https://example.com", "https://example.com"},
		{"host lowercased", "https://EXAMPLE.COM/Path", "https://example.com/Path"},
		{"bare trailing slash dropped", "https://example.com/", "https://example.com"},
		{"path slash kept", "https://example.com/me/", "https://example.com/me/"},
		{"query survives", "example.com/?q=1", "https://example.com/?q=1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeURL(tc.in))
		})
	}
}
