package config

import (
	"strings"

	"github.com/spf13/viper"
)

// ActionConfig is the GitHub Actions runtime configuration: the action inputs
// plus the variables the runner provides.
type ActionConfig struct {
	// Inputs
	Token                     string
	IssueNumber               int // 0 when the input is empty or not a number
	RequireChecklist          bool
	SkipComments              bool
	SkipDescriptionRegex      string
	SkipDescriptionRegexFlags string

	// Runner
	Repository string
	EventPath  string
	EventName  string
	APIURL     string
	OutputPath string
}

// actionEnv maps config keys to the env vars the runner sets.
var actionEnv = map[string]string{
	"token":                        "INPUT_TOKEN",
	"issue_number":                 "INPUT_ISSUENUMBER",
	"require_checklist":            "INPUT_REQUIRECHECKLIST",
	"skip_comments":                "INPUT_SKIPCOMMENTS",
	"skip_description_regex":       "INPUT_SKIPDESCRIPTIONREGEX",
	"skip_description_regex_flags": "INPUT_SKIPDESCRIPTIONREGEXFLAGS",
	"repository":                   "GITHUB_REPOSITORY",
	"event_path":                   "GITHUB_EVENT_PATH",
	"event_name":                   "GITHUB_EVENT_NAME",
	"api_url":                      "GITHUB_API_URL",
	"output_path":                  "GITHUB_OUTPUT",
	"github_token":                 "GITHUB_TOKEN",
}

// LoadAction reads the action configuration from the environment. Inputs are
// trimmed like the runner toolkit does.
func LoadAction() (*ActionConfig, error) {
	v := viper.New()
	for key, env := range actionEnv {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}
	v.SetDefault("api_url", "https://api.github.com")

	get := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg := &ActionConfig{
		Token:                     get("token"),
		IssueNumber:               parseLeadingInt(get("issue_number")),
		RequireChecklist:          !strings.EqualFold(get("require_checklist"), "false"),
		SkipComments:              strings.EqualFold(get("skip_comments"), "true"),
		SkipDescriptionRegex:      get("skip_description_regex"),
		SkipDescriptionRegexFlags: get("skip_description_regex_flags"),
		Repository:                get("repository"),
		EventPath:                 get("event_path"),
		EventName:                 get("event_name"),
		APIURL:                    get("api_url"),
		OutputPath:                get("output_path"),
	}
	if cfg.Token == "" {
		cfg.Token = get("github_token")
	}

	return cfg, nil
}

// parseLeadingInt reads the leading decimal digits of s, so "12abc" is 12.
// Anything without leading digits, or not positive, is 0.
func parseLeadingInt(s string) int {
	n := 0
	for i, r := range s {
		if r == '+' && i == 0 {
			continue
		}
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > 1<<31 {
			return 0
		}
	}
	return n
}
