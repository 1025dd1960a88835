package checklist

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// skipOptions maps JavaScript RegExp flags onto regexp2 options. Flags that
// only affect iteration state (g, y, d) or set notation (v) map to zero.
var skipOptions = map[rune]regexp2.RegexOptions{
	'i': regexp2.IgnoreCase,
	'm': regexp2.Multiline,
	's': regexp2.Singleline,
	'u': regexp2.Unicode,
	'g': 0,
	'y': 0,
	'd': 0,
	'v': 0,
}

// compileSkip builds the skip matcher with ECMAScript semantics. An empty
// pattern yields nil.
func compileSkip(pattern, flags string) (*regexp2.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}

	var opts regexp2.RegexOptions = regexp2.ECMAScript
	for i, f := range flags {
		opt, ok := skipOptions[f]
		if !ok {
			return nil, flagError(flags, fmt.Errorf("%w: unsupported flag %q", ErrInvalidSkipFlags, f))
		}
		if strings.ContainsRune(flags[:i], f) {
			return nil, flagError(flags, fmt.Errorf("%w: duplicate flag %q", ErrInvalidSkipFlags, f))
		}
		opts |= opt
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, &ConfigError{
			Field: "skipDescriptionRegex",
			Value: pattern,
			Err:   fmt.Errorf("%w: %v", ErrInvalidSkipPattern, err),
		}
	}
	return re, nil
}

func flagError(flags string, err error) *ConfigError {
	return &ConfigError{Field: "skipDescriptionRegexFlags", Value: flags, Err: err}
}

// skips reports whether re matches text. A match that fails at runtime
// keeps the item.
func skips(re *regexp2.Regexp, text string) bool {
	if re == nil {
		return false
	}
	ok, err := re.MatchString(text)
	return err == nil && ok
}
