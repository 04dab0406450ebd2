package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		denyPrivateIPs bool
		wantErr        bool
	}{
		{
			name:           "public https endpoint",
			url:            "https://newsapi.org/v2/top-headlines?country=us",
			denyPrivateIPs: false,
			wantErr:        false,
		},
		{
			name:           "public http endpoint",
			url:            "http://news.example.com/feed",
			denyPrivateIPs: false,
			wantErr:        false,
		},
		{
			name:           "ftp scheme rejected",
			url:            "ftp://news.example.com/feed",
			denyPrivateIPs: false,
			wantErr:        true,
		},
		{
			name:           "file scheme rejected",
			url:            "file:///etc/passwd",
			denyPrivateIPs: false,
			wantErr:        true,
		},
		{
			name:           "empty hostname rejected",
			url:            "https://",
			denyPrivateIPs: false,
			wantErr:        true,
		},
		{
			name:           "loopback blocked when denied",
			url:            "http://127.0.0.1:8080/admin",
			denyPrivateIPs: true,
			wantErr:        true,
		},
		{
			name:           "loopback allowed when not denied",
			url:            "http://127.0.0.1:8080/feed",
			denyPrivateIPs: false,
			wantErr:        false,
		},
		{
			name:           "rfc1918 address blocked",
			url:            "http://10.0.0.5/feed",
			denyPrivateIPs: true,
			wantErr:        true,
		},
		{
			name:           "link-local metadata address blocked",
			url:            "http://169.254.169.254/latest/meta-data/",
			denyPrivateIPs: true,
			wantErr:        true,
		},
		{
			name:           "ipv6 loopback blocked",
			url:            "http://[::1]/feed",
			denyPrivateIPs: true,
			wantErr:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURL(tt.url, tt.denyPrivateIPs)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
