package checklist

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// jsSpace is the ECMAScript \s class.
const jsSpace = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var taskItemPattern = regexp.MustCompile(`^[` + jsSpace + `]*-[` + jsSpace + `]+\[([ xX])\]([` + jsSpace + `]+)(.*)`)

// extractLine returns the item on line, if any. The "label must not start
// with ~" rule and backtracking over the whitespace run are done by hand.
func extractLine(line string) (Item, bool) {
	m := taskItemPattern.FindStringSubmatch(line)
	if m == nil {
		return Item{}, false
	}
	mark, gap, rest := m[1], m[2], m[3]

	label := rest
	if strings.HasPrefix(rest, string(strikeThroughGlyph)) {
		last, size := utf8.DecodeLastRuneInString(gap)
		if size == len(gap) {
			return Item{}, false
		}
		label = string(last) + rest
	}

	text := untilLineTerminator(label)
	return Item{
		Text:        text,
		RadioGroups: parseRadioTags(text),
		Complete:    mark == "x" || mark == "X",
	}, true
}

// untilLineTerminator cuts s where an ECMAScript "." would stop matching.
func untilLineTerminator(s string) string {
	if i := strings.IndexAny(s, "\r\u2028\u2029"); i >= 0 {
		return s[:i]
	}
	return s
}

// ExtractItems scans lines in order and returns every item found.
func ExtractItems(lines []string) []Item {
	var items []Item
	for _, line := range lines {
		if item, ok := extractLine(line); ok {
			items = append(items, item)
		}
	}
	return items
}

// ParseItems returns the items of body that sit outside comment blocks.
func ParseItems(body string) []Item {
	return ExtractItems(visibleLines(body))
}
