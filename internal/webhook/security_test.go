package webhook

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGitHubSignature(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{Secret: testSecret})
	payload := []byte(`{"zen":"Keep it logically awesome."}`)

	assert.NoError(t, v.ValidateGitHubSignature(payload, sign(payload)))
	assert.ErrorIs(t, v.ValidateGitHubSignature(payload, "sha1=abc"), ErrInvalidSignature)
	assert.ErrorIs(t, v.ValidateGitHubSignature(payload, "sha256=zz"), ErrInvalidSignature)
	assert.ErrorIs(t, v.ValidateGitHubSignature([]byte("tampered"), sign(payload)), ErrInvalidSignature)

	unset := NewSecurityValidator(SecurityConfig{})
	assert.ErrorIs(t, unset.ValidateGitHubSignature(payload, sign(payload)), ErrSecretNotConfigured)
}

func TestValidateIPAddress(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{AllowedIPs: []string{"140.82.112.0/20", "127.0.0.1"}})

	tests := []struct {
		name    string
		remote  string
		xff     string
		wantErr bool
	}{
		{name: "exact match", remote: "127.0.0.1:1234"},
		{name: "cidr match", remote: "140.82.115.3:443"},
		{name: "forwarded header wins", remote: "127.0.0.1:1", xff: "8.8.8.8, 127.0.0.1", wantErr: true},
		{name: "outside", remote: "10.1.1.1:80", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			err := v.ValidateIPAddress(r)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIPNotAllowed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRateLimiterBurstIsAtLeastOne(t *testing.T) {
	rl := newRateLimiter(5)
	assert.Equal(t, 1, rl.burst)
	assert.NoError(t, rl.Allow("octo/hello"))
	assert.ErrorIs(t, rl.Allow("octo/hello"), ErrRateLimited)
	assert.NoError(t, rl.Allow("octo/other"))
}
