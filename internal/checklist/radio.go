package checklist

import "regexp"

var radioTagPattern = regexp.MustCompile(`<!-- TaskRadio ([^` + jsSpace + `]+) -->`)

// parseRadioTags returns every TaskRadio tag in text, in order.
func parseRadioTags(text string) []string {
	matches := radioTagPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		if m[1] != "" {
			tags = append(tags, m[1])
		}
	}
	return tags
}
