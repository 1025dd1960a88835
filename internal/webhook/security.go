package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	signaturePrefix   = "sha256="
	limiterCacheSize  = 1000
	limiterCacheTTL   = 5 * time.Minute
	defaultRatePerMin = 60
)

// SecurityValidator validates webhook requests
type SecurityValidator struct {
	config      SecurityConfig
	rateLimiter *rateLimiter
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	return &SecurityValidator{
		config:      config,
		rateLimiter: newRateLimiter(config.RateLimitPerMin),
	}
}

// ValidateGitHubSignature verifies the X-Hub-Signature-256 header.
func (v *SecurityValidator) ValidateGitHubSignature(payload []byte, signature string) error {
	if v.config.Secret == "" {
		return ErrSecretNotConfigured
	}

	if !strings.HasPrefix(signature, signaturePrefix) {
		return fmt.Errorf("%w: bad format", ErrInvalidSignature)
	}

	expectedSig, err := hex.DecodeString(strings.TrimPrefix(signature, signaturePrefix))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	mac := hmac.New(sha256.New, []byte(v.config.Secret))
	mac.Write(payload)

	if !hmac.Equal(expectedSig, mac.Sum(nil)) {
		return fmt.Errorf("%w: verification failed", ErrInvalidSignature)
	}

	return nil
}

// ValidateIPAddress checks if request IP is whitelisted
func (v *SecurityValidator) ValidateIPAddress(r *http.Request) error {
	if len(v.config.AllowedIPs) == 0 {
		return nil
	}

	ip := extractIP(r)
	parsed := net.ParseIP(ip)

	for _, allowedIP := range v.config.AllowedIPs {
		if ip == allowedIP {
			return nil
		}

		if strings.Contains(allowedIP, "/") && parsed != nil {
			_, ipNet, err := net.ParseCIDR(allowedIP)
			if err != nil {
				continue
			}
			if ipNet.Contains(parsed) {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: %s", ErrIPNotAllowed, ip)
}

// CheckRateLimit enforces rate limiting per key, usually a repository.
func (v *SecurityValidator) CheckRateLimit(key string) error {
	return v.rateLimiter.Allow(key)
}

// extractIP extracts client IP from request
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// rateLimiter keeps one token bucket per key, dropping idle keys.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = defaultRatePerMin
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}
