package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv("WEBHOOK_SECRET", "from-env")
	t.Setenv("GH_PAT", "pat-123")

	path := writeConfig(t, `
environment:
  name: production
http_server:
  port: 9090
  mode: release
github:
  token: ${GH_PAT}
checklist:
  require_checklist: false
  skip_comments: true
  skip_description_regex: "^\\(optional\\)"
  skip_description_regex_flags: i
cache:
  size: 64
  ttl: 30s
webhook:
  allowed_ips: ["140.82.112.0/20", "127.0.0.1"]
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment.Name)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "release", cfg.HTTPServer.Mode)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.APIURL)
	assert.Equal(t, "pat-123", cfg.GitHub.Token)
	assert.Equal(t, ChecklistConfig{
		RequireChecklist:          false,
		SkipComments:              true,
		SkipDescriptionRegex:      `^\(optional\)`,
		SkipDescriptionRegexFlags: "i",
	}, cfg.Checklist)
	assert.Equal(t, CacheConfig{Size: 64, TTL: 30 * time.Second}, cfg.Cache)
	assert.Equal(t, "from-env", cfg.Webhook.Secret)
	assert.Equal(t, []string{"140.82.112.0/20", "127.0.0.1"}, cfg.Webhook.AllowedIPs)
	assert.Equal(t, 60, cfg.Webhook.RateLimitPerMin)
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.True(t, cfg.Checklist.RequireChecklist)
	assert.False(t, cfg.Checklist.SkipComments)
	assert.Equal(t, 512, cfg.Cache.Size)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Webhook.Enabled)
}

func TestLoadFile_Invalid(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "http_server:\n  port: 70000\n"))
	assert.Error(t, err)

	_, err = LoadFile(writeConfig(t, "http_server: [unclosed\n"))
	assert.Error(t, err)
}

func TestLoadAction(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ActionConfig
	}{
		{
			name: "defaults",
			env:  map[string]string{"GITHUB_TOKEN": "ghs_fallback"},
			want: ActionConfig{Token: "ghs_fallback", RequireChecklist: true, APIURL: "https://api.github.com"},
		},
		{
			name: "all inputs",
			env: map[string]string{
				"INPUT_TOKEN":                     " tok ",
				"INPUT_ISSUENUMBER":               "42",
				"INPUT_REQUIRECHECKLIST":          "FALSE",
				"INPUT_SKIPCOMMENTS":              "true",
				"INPUT_SKIPDESCRIPTIONREGEX":      "^skip",
				"INPUT_SKIPDESCRIPTIONREGEXFLAGS": "i",
				"GITHUB_REPOSITORY":               "octo/hello",
				"GITHUB_EVENT_PATH":               "/tmp/event.json",
				"GITHUB_EVENT_NAME":               "pull_request",
				"GITHUB_API_URL":                  "https://ghe.example.com/api/v3",
				"GITHUB_OUTPUT":                   "/tmp/out",
				"GITHUB_TOKEN":                    "unused",
			},
			want: ActionConfig{
				Token:                     "tok",
				IssueNumber:               42,
				RequireChecklist:          false,
				SkipComments:              true,
				SkipDescriptionRegex:      "^skip",
				SkipDescriptionRegexFlags: "i",
				Repository:                "octo/hello",
				EventPath:                 "/tmp/event.json",
				EventName:                 "pull_request",
				APIURL:                    "https://ghe.example.com/api/v3",
				OutputPath:                "/tmp/out",
			},
		},
		{
			name: "only literal values toggle",
			env: map[string]string{
				"INPUT_REQUIRECHECKLIST": "no",
				"INPUT_SKIPCOMMENTS":     "yes",
				"INPUT_ISSUENUMBER":      "abc",
			},
			want: ActionConfig{RequireChecklist: true, APIURL: "https://api.github.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, env := range actionEnv {
				t.Setenv(env, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadAction()
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestParseLeadingInt(t *testing.T) {
	tests := map[string]int{
		"":             0,
		"7":            7,
		"12abc":        12,
		"+5":           5,
		"-3":           0,
		"#9":           0,
		"  ":           0,
		"007":          7,
		"999999999999": 0,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLeadingInt(in), in)
	}
}
