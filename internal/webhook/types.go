package webhook

import "errors"

var (
	ErrSecretNotConfigured = errors.New("webhook secret not configured")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrIPNotAllowed        = errors.New("ip not whitelisted")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrMissingNumber       = errors.New("missing issue number")
)

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute and repository
}
